// Package mcp exposes the character service as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/services/character"
)

// Tool names
const (
	ToolImportCharacter  = "import_character"
	ToolGetCharacter     = "get_character"
	ToolListCharacters   = "list_characters"
	ToolDeleteCharacter  = "delete_character"
	ToolUpdateSpellSlots = "update_spell_slots"
)

// ServerConfig holds the dependencies for the tool server
type ServerConfig struct {
	Service character.Service
	Name    string
	Version string
}

// Validate validates the config
func (c *ServerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	errors.ValidateRequired("Name", c.Name, vb)
	return vb.Build()
}

// Server registers the character tools on an MCP server
type Server struct {
	service   character.Service
	mcpServer *server.MCPServer
}

// NewServer creates the tool server
func NewServer(cfg *ServerConfig) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Server{
		service: cfg.Service,
		mcpServer: server.NewMCPServer(
			cfg.Name,
			cfg.Version,
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s, nil
}

// Run serves tools on stdin and stdout until the input closes
func (s *Server) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "serving mcp tools on stdio")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return errors.Wrap(err, "failed to serve stdio")
	}
	return nil
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		ToolImportCharacter,
		mcp.WithDescription("Import a D&D 5e character sheet PDF. Fillable form fields are read first; scanned sheets fall back to OCR."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the character sheet PDF"),
		),
	), s.handleImportCharacter)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolGetCharacter,
		mcp.WithDescription("Get a stored character record as JSON"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Character ID"),
		),
	), s.handleGetCharacter)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolListCharacters,
		mcp.WithDescription("List stored characters with their class and level"),
	), s.handleListCharacters)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolDeleteCharacter,
		mcp.WithDescription("Delete a stored character"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Character ID"),
		),
	), s.handleDeleteCharacter)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolUpdateSpellSlots,
		mcp.WithDescription("Set how many spell slots of one level are expended"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Character ID"),
		),
		mcp.WithNumber("level",
			mcp.Required(),
			mcp.Description("Slot level, 1 to 9"),
		),
		mcp.WithNumber("used",
			mcp.Required(),
			mcp.Description("Expended slots, between 0 and the level's total"),
		),
	), s.handleUpdateSpellSlots)
}

// importResult is the import tool's JSON payload
type importResult struct {
	Character *entities.Character `json:"character"`
	Source    string              `json:"source"`
	FellBack  bool                `json:"fell_back"`
	Notices   []string            `json:"notices"`
}

// characterSummary is one list tool entry
type characterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
}

func (s *Server) handleImportCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.service.ImportCharacter(ctx, &character.ImportCharacterInput{Path: path})
	if err != nil {
		return toolError(ctx, err), nil
	}

	notices := out.Notices
	if notices == nil {
		notices = []string{}
	}
	return jsonResult(importResult{
		Character: out.Character,
		Source:    string(out.Source),
		FellBack:  out.FellBack,
		Notices:   notices,
	})
}

func (s *Server) handleGetCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.service.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		return toolError(ctx, err), nil
	}
	return jsonResult(out.Character)
}

func (s *Server) handleListCharacters(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.service.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return toolError(ctx, err), nil
	}

	summaries := make([]characterSummary, 0, len(out.Characters))
	for _, c := range out.Characters {
		summaries = append(summaries, characterSummary{ID: c.ID, Name: c.Name, Class: c.Class, Level: c.Level})
	}
	return jsonResult(summaries)
}

func (s *Server) handleDeleteCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.service.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: id}); err != nil {
		return toolError(ctx, err), nil
	}
	return mcp.NewToolResultText("deleted " + id), nil
}

func (s *Server) handleUpdateSpellSlots(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	level, err := request.RequireInt("level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	used, err := request.RequireInt("used")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.service.UpdateSpellSlots(ctx, &character.UpdateSpellSlotsInput{
		CharacterID: id,
		Level:       level,
		Used:        used,
	})
	if err != nil {
		return toolError(ctx, err), nil
	}
	return jsonResult(out.Character.Spellcasting.SpellSlots)
}

// toolError reports failures as code-prefixed tool errors so clients can
// branch on the code. Unavailable backends are flagged retryable.
func toolError(ctx context.Context, err error) *mcp.CallToolResult {
	code := errors.GetCode(err)
	if errors.IsInternal(err) || errors.IsUnavailable(err) {
		slog.ErrorContext(ctx, "tool call failed",
			"code", code,
			"error", err.Error())
	} else {
		slog.WarnContext(ctx, "tool call failed",
			"code", code,
			"error", err.Error())
	}

	payload, marshalErr := json.Marshal(map[string]interface{}{
		"code":      code,
		"message":   errors.GetMessage(err),
		"meta":      errors.GetMeta(err),
		"retryable": errors.IsUnavailable(err),
	})
	if marshalErr != nil {
		return mcp.NewToolResultError(code.String() + ": " + errors.GetMessage(err))
	}
	return mcp.NewToolResultError(string(payload))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tool result")
	}
	return mcp.NewToolResultText(string(data)), nil
}
