// Package character provides the interface for character record persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/Treylong00/DND-Companion/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
)

// Repository stores whole character records by id. Every implementation
// reads records through Decode, so legacy documents come back upgraded.
type Repository interface {
	// Create stores a new record
	// Returns errors.InvalidArgument for a nil record or empty ID
	// Returns errors.AlreadyExists if a record with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the record doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing record
	// Returns errors.NotFound if the record doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a record by ID
	// Returns errors.NotFound if the record doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored record, oldest first. Unreadable documents
	// are skipped and logged.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a record
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a record
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

// ListInput defines the input for listing records
type ListInput struct{}

// ListOutput defines the output for listing records
type ListOutput struct {
	Characters []*entities.Character
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// EntityKey is the storage key of an entity, "<type>:<id>"
func EntityKey(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

func validateRecord(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	return validateEntity(c)
}

func validateEntity(e core.Entity) error {
	if e.GetType() != entities.EntityTypeCharacter {
		return errors.InvalidArgumentf("unexpected entity type %q", e.GetType())
	}
	if e.GetID() == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}
