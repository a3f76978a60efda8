// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/Treylong00/DND-Companion/internal/entities"
	characterrepo "github.com/Treylong00/DND-Companion/internal/repositories/character"
	characterrepomock "github.com/Treylong00/DND-Companion/internal/repositories/character/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character.
// A non-nil err is returned in place of the record.
func ExpectCharacterGet(
	ctx context.Context, mockRepo *characterrepomock.MockRepository,
	characterID string, character *entities.Character, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&characterrepo.GetOutput{Character: character}, nil)
}

// ExpectCharacterCreate echoes back whatever record the caller stores
func ExpectCharacterCreate(ctx context.Context, mockRepo *characterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterUpdate echoes back whatever record the caller stores
func ExpectCharacterUpdate(ctx context.Context, mockRepo *characterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterDelete sets up a mock expectation for deleting a character
func ExpectCharacterDelete(
	ctx context.Context, mockRepo *characterrepomock.MockRepository, characterID string, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Delete(ctx, characterrepo.DeleteInput{ID: characterID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&characterrepo.DeleteOutput{}, nil)
}
