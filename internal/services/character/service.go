// Package character defines the interface for character record operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/Treylong00/DND-Companion/internal/services/character Service

import (
	"context"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/importer"
)

// Service defines the interface for character operations
type Service interface {
	// Record creation
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// Record access
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Play-time and edit updates
	UpdateSpellSlots(ctx context.Context, input *UpdateSpellSlotsInput) (*UpdateSpellSlotsOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
}

// Record creation types

// ImportCharacterInput defines the request for importing a sheet
type ImportCharacterInput struct {
	Path string
}

// ImportCharacterOutput defines the response for importing a sheet
type ImportCharacterOutput struct {
	Character *entities.Character
	Source    importer.Source
	FellBack  bool
	Notices   []string
}

// CreateCharacterInput defines the request for a manually entered record.
// Derived fields on Character are ignored and computed again.
type CreateCharacterInput struct {
	Character        *entities.Character
	ProficientSkills []string
}

// CreateCharacterOutput defines the response for creating a record
type CreateCharacterOutput struct {
	Character *entities.Character
}

// Record access types

// GetCharacterInput defines the request for getting a record
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a record
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing records
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing records
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for deleting a record
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a record
type DeleteCharacterOutput struct{}

// Update types

// UpdateSpellSlotsInput sets the expended count for one slot level
type UpdateSpellSlotsInput struct {
	CharacterID string
	Level       int
	Used        int
}

// UpdateSpellSlotsOutput defines the response for a slot update
type UpdateSpellSlotsOutput struct {
	Character *entities.Character
}

// UpdateCharacterInput applies an edit to a stored record
type UpdateCharacterInput struct {
	CharacterID string
	Edit        *CharacterEdit
}

// UpdateCharacterOutput defines the response for an edit
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// CharacterEdit lists the fields an edit form submits. Nil pointers and nil
// slices leave the stored value alone.
type CharacterEdit struct {
	Name             *string
	Race             *string
	Class            *string
	Level            *int
	Background       *string
	Traits           *string
	Abilities        *entities.AbilityScores
	HPMax            *int
	HPCurrent        *int
	ArmorClass       *int
	ProficiencyBonus *int
	ProficientSkills []string
	Equipment        []string
	Spellcasting     *SpellcastingEdit
}

// SpellcastingEdit replaces the editable parts of a spellcasting block.
// Spells are given as edit form buckets keyed "1", "2", "3" and "4+".
type SpellcastingEdit struct {
	Class        string
	Ability      string
	Cantrips     []string
	SpellBuckets map[string][]string
}
