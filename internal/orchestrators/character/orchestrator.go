// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/importer"
	"github.com/Treylong00/DND-Companion/internal/pkg/idgen"
	characterrepo "github.com/Treylong00/DND-Companion/internal/repositories/character"
	"github.com/Treylong00/DND-Companion/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Importer      importer.Importer
	Engine        engine.Engine
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Importer == nil {
		vb.RequiredField("Importer")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	importer      importer.Importer
	engine        engine.Engine
	idGenerator   idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		importer:      cfg.Importer,
		engine:        cfg.Engine,
		idGenerator:   cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// ImportCharacter extracts a record from a sheet and stores it
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *character.ImportCharacterInput) (*character.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	imported, err := o.importer.Import(ctx, &importer.ImportInput{Path: input.Path})
	if err != nil {
		return nil, err
	}

	if err := o.create(ctx, imported.Character); err != nil {
		return nil, errors.Wrapf(err, "failed to save imported character")
	}

	slog.InfoContext(ctx, "character imported",
		"character_id", imported.Character.ID,
		"source", imported.Source,
		"fell_back", imported.FellBack)

	return &character.ImportCharacterOutput{
		Character: imported.Character,
		Source:    imported.Source,
		FellBack:  imported.FellBack,
		Notices:   imported.Notices,
	}, nil
}

// CreateCharacter stores a manually entered record after deriving its
// computed fields
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	draft := *input.Character
	draft.ID = o.idGenerator.Generate()
	if strings.TrimSpace(draft.Name) == "" {
		draft.Name = entities.PlaceholderName
	}
	draft.Equipment = trimLines(draft.Equipment)
	if draft.Spells != nil {
		draft.Spells = trimLines(draft.Spells)
	}
	proficient := input.ProficientSkills
	if proficient == nil {
		proficient = []string{}
	}

	recomputed, err := o.engine.Recompute(&engine.RecomputeInput{
		Character:        &draft,
		ProficientSkills: proficient,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive character")
	}

	if err := o.create(ctx, recomputed.Character); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &character.CreateCharacterOutput{Character: recomputed.Character}, nil
}

// maxCreateAttempts bounds how many generated IDs one save tries
const maxCreateAttempts = 3

// create stores c, drawing a fresh ID while the generated one is taken.
// Sequential IDs restart with the process, so a file store can already
// hold the next one.
func (o *Orchestrator) create(ctx context.Context, c *entities.Character) error {
	for attempt := 1; ; attempt++ {
		_, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
		if err == nil || !errors.IsAlreadyExists(err) || attempt == maxCreateAttempts {
			return err
		}
		slog.WarnContext(ctx, "generated character ID already taken",
			"character_id", c.ID,
			"attempt", attempt)
		c.ID = o.idGenerator.Generate()
	}
}

// GetCharacter retrieves a record by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &character.GetCharacterOutput{Character: c}, nil
}

// ListCharacters returns every stored record
func (o *Orchestrator) ListCharacters(ctx context.Context, _ *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a record
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}
	return &character.DeleteCharacterOutput{}, nil
}

// UpdateSpellSlots records how many slots of one level are expended
func (o *Orchestrator) UpdateSpellSlots(ctx context.Context, input *character.UpdateSpellSlotsInput) (*character.UpdateSpellSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	err = o.engine.ValidateSlotUpdate(&engine.ValidateSlotUpdateInput{
		Spellcasting: c.Spellcasting,
		Level:        input.Level,
		Used:         input.Used,
	})
	if err != nil {
		return nil, err
	}

	key := entities.SlotKey(input.Level)
	usage := c.Spellcasting.SpellSlots[key]
	usage.Used = input.Used
	c.Spellcasting.SpellSlots[key] = usage

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c}); err != nil {
		return nil, errors.Wrapf(err, "failed to save spell slots")
	}

	slog.DebugContext(ctx, "spell slots updated",
		"character_id", c.ID,
		"level", input.Level,
		"used", input.Used)

	return &character.UpdateSpellSlotsOutput{Character: c}, nil
}

// UpdateCharacter applies an edit and derives the computed fields again
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *character.UpdateCharacterInput) (*character.UpdateCharacterOutput, error) {
	if input == nil || input.Edit == nil {
		return nil, errors.InvalidArgument("edit is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	edited := applyEdit(c, input.Edit)
	recomputed, err := o.engine.Recompute(&engine.RecomputeInput{
		Character:        edited,
		ProficientSkills: input.Edit.ProficientSkills,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive character")
	}

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recomputed.Character}); err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", c.ID)
	}
	return &character.UpdateCharacterOutput{Character: recomputed.Character}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*entities.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", id, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return out.Character, nil
}
