package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Treylong00/DND-Companion/internal/engine"
	enginemock "github.com/Treylong00/DND-Companion/internal/engine/mock"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/character"
	importermock "github.com/Treylong00/DND-Companion/internal/orchestrators/importer/mock"
	idgenmock "github.com/Treylong00/DND-Companion/internal/pkg/idgen/mock"
	characterrepomock "github.com/Treylong00/DND-Companion/internal/repositories/character/mock"
	charactersvc "github.com/Treylong00/DND-Companion/internal/services/character"
	"github.com/Treylong00/DND-Companion/internal/testutils"
	"github.com/Treylong00/DND-Companion/internal/testutils/mocks"
)

// EngineFailureTestSuite drives the orchestrator with a mocked engine so
// rule failures can be forced.
type EngineFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCharRepo *characterrepomock.MockRepository
	mockEngine   *enginemock.MockEngine
	orchestrator *character.Orchestrator
	ctx          context.Context
}

func TestEngineFailureSuite(t *testing.T) {
	suite.Run(t, new(EngineFailureTestSuite))
}

func (s *EngineFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
		Importer:      importermock.NewMockImporter(s.ctrl),
		Engine:        s.mockEngine,
		IDGenerator:   idgenmock.NewMockGenerator(s.ctrl),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *EngineFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EngineFailureTestSuite) TestUpdateSpellSlots_RejectionIsNotSaved() {
	wizard := testutils.CreateTestWizard(testutils.TestCharacterID)
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, wizard.ID, wizard, nil)
	s.mockEngine.EXPECT().
		ValidateSlotUpdate(&engine.ValidateSlotUpdateInput{
			Spellcasting: wizard.Spellcasting,
			Level:        2,
			Used:         9,
		}).
		Return(errors.InvalidArgument("used exceeds total"))

	_, err := s.orchestrator.UpdateSpellSlots(s.ctx, &charactersvc.UpdateSpellSlotsInput{
		CharacterID: wizard.ID,
		Level:       2,
		Used:        9,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineFailureTestSuite) TestUpdateCharacter_RecomputeFailureKeepsCode() {
	wizard := testutils.CreateTestWizard(testutils.TestCharacterID)
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, wizard.ID, wizard, nil)
	s.mockEngine.EXPECT().
		Recompute(gomock.Any()).
		Return(nil, errors.New(errors.CodeInternal, "rules unavailable"))

	name := "Elara the Wise"
	_, err := s.orchestrator.UpdateCharacter(s.ctx, &charactersvc.UpdateCharacterInput{
		CharacterID: wizard.ID,
		Edit:        &charactersvc.CharacterEdit{Name: &name},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "failed to derive character")
}
