package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/importer"
	"github.com/Treylong00/DND-Companion/internal/services/character"
	charactermock "github.com/Treylong00/DND-Companion/internal/services/character/mock"
	"github.com/Treylong00/DND-Companion/internal/testutils"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	server      *Server
	ctx         context.Context
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	srv, err := NewServer(&ServerConfig{
		Service: s.mockService,
		Name:    "dnd-companion",
		Version: "test",
	})
	s.Require().NoError(err)
	s.server = srv
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
		if text, ok := content.(*mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func (s *ServerTestSuite) TestNewServerValidatesConfig() {
	_, err := NewServer(&ServerConfig{Name: "dnd-companion"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ServerTestSuite) TestImportCharacter() {
	wizard := testutils.CreateTestWizard(testutils.TestCharacterID)
	s.mockService.EXPECT().
		ImportCharacter(s.ctx, &character.ImportCharacterInput{Path: "/sheets/elara.pdf"}).
		Return(&character.ImportCharacterOutput{
			Character: wizard,
			Source:    importer.SourceFormFields,
		}, nil)

	result, err := s.server.handleImportCharacter(s.ctx, callRequest(map[string]interface{}{
		"path": "/sheets/elara.pdf",
	}))
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	var payload importResult
	s.Require().NoError(json.Unmarshal([]byte(resultText(result)), &payload))
	s.Assert().Equal(wizard, payload.Character)
	s.Assert().Equal("form_fields", payload.Source)
	s.Assert().False(payload.FellBack)
	s.Assert().Equal([]string{}, payload.Notices)
}

func (s *ServerTestSuite) TestImportCharacterMissingPath() {
	result, err := s.server.handleImportCharacter(s.ctx, callRequest(map[string]interface{}{}))
	s.Require().NoError(err)
	s.Assert().True(result.IsError)
}

func (s *ServerTestSuite) TestImportCharacterFailureCarriesCode() {
	s.mockService.EXPECT().
		ImportCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.ExtractionFailed("no source produced a character").
			WithMeta(importer.MetaFormReason, "no_form_fields").
			WithMeta(importer.MetaOCRReason, "ocr_command_failed"))

	result, err := s.server.handleImportCharacter(s.ctx, callRequest(map[string]interface{}{
		"path": "/sheets/scan.pdf",
	}))
	s.Require().NoError(err)
	s.Require().True(result.IsError)

	var payload struct {
		Code string                 `json:"code"`
		Meta map[string]interface{} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal([]byte(resultText(result)), &payload))
	s.Assert().Equal("EXTRACTION_FAILED", payload.Code)
	s.Assert().Equal("ocr_command_failed", payload.Meta[importer.MetaOCRReason])
}

func (s *ServerTestSuite) TestUnavailableStoreIsRetryable() {
	s.mockService.EXPECT().
		ListCharacters(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailablef("redis ping failed: %v", "connection refused"))

	result, err := s.server.handleListCharacters(s.ctx, callRequest(nil))
	s.Require().NoError(err)
	s.Require().True(result.IsError)

	var payload struct {
		Code      string `json:"code"`
		Retryable bool   `json:"retryable"`
	}
	s.Require().NoError(json.Unmarshal([]byte(resultText(result)), &payload))
	s.Assert().Equal("UNAVAILABLE", payload.Code)
	s.Assert().True(payload.Retryable)
}

func (s *ServerTestSuite) TestGetCharacterNotFound() {
	s.mockService.EXPECT().
		GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char_missing"}).
		Return(nil, errors.NotFound("character not found"))

	result, err := s.server.handleGetCharacter(s.ctx, callRequest(map[string]interface{}{
		"id": "char_missing",
	}))
	s.Require().NoError(err)
	s.Assert().True(result.IsError)
	s.Assert().Contains(resultText(result), "NOT_FOUND")
}

func (s *ServerTestSuite) TestListCharacters() {
	s.mockService.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{}).
		Return(&character.ListCharactersOutput{Characters: []*entities.Character{
			testutils.CreateTestWizard("char_a"),
			testutils.CreateTestFighter("char_b"),
		}}, nil)

	result, err := s.server.handleListCharacters(s.ctx, callRequest(nil))
	s.Require().NoError(err)

	var summaries []characterSummary
	s.Require().NoError(json.Unmarshal([]byte(resultText(result)), &summaries))
	s.Assert().Equal([]characterSummary{
		{ID: "char_a", Name: testutils.TestCharacterName, Class: "Wizard", Level: 5},
		{ID: "char_b", Name: "Brom Ironfist", Class: "Fighter", Level: 3},
	}, summaries)
}

func (s *ServerTestSuite) TestDeleteCharacter() {
	s.mockService.EXPECT().
		DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char_a"}).
		Return(&character.DeleteCharacterOutput{}, nil)

	result, err := s.server.handleDeleteCharacter(s.ctx, callRequest(map[string]interface{}{
		"id": "char_a",
	}))
	s.Require().NoError(err)
	s.Assert().False(result.IsError)
	s.Assert().Equal("deleted char_a", resultText(result))
}

func (s *ServerTestSuite) TestUpdateSpellSlots() {
	wizard := testutils.CreateTestWizard(testutils.TestCharacterID)
	wizard.Spellcasting.SpellSlots["2"] = entities.SlotUsage{Total: 3, Used: 2}
	s.mockService.EXPECT().
		UpdateSpellSlots(s.ctx, &character.UpdateSpellSlotsInput{
			CharacterID: wizard.ID,
			Level:       2,
			Used:        2,
		}).
		Return(&character.UpdateSpellSlotsOutput{Character: wizard}, nil)

	result, err := s.server.handleUpdateSpellSlots(s.ctx, callRequest(map[string]interface{}{
		"id":    wizard.ID,
		"level": float64(2),
		"used":  float64(2),
	}))
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	var slots entities.SpellSlots
	s.Require().NoError(json.Unmarshal([]byte(resultText(result)), &slots))
	s.Assert().Equal(entities.SlotUsage{Total: 3, Used: 2}, slots["2"])
}

func (s *ServerTestSuite) TestUpdateSpellSlotsRequiresNumbers() {
	result, err := s.server.handleUpdateSpellSlots(s.ctx, callRequest(map[string]interface{}{
		"id": "char_a",
	}))
	s.Require().NoError(err)
	s.Assert().True(result.IsError)
}
