package character_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	character "github.com/Treylong00/DND-Companion/internal/repositories/character"
	"github.com/Treylong00/DND-Companion/internal/testutils"
)

func TestDecodeLegacyRecord(t *testing.T) {
	c, upgraded, err := character.Decode([]byte(testutils.LegacyRecordJSON))
	require.NoError(t, err)
	assert.True(t, upgraded)

	assert.Equal(t, 3, c.AbilityModifiers.Dexterity)
	assert.Equal(t, 2, c.AbilityModifiers.Charisma)
	require.Len(t, c.Skills, 18)

	byName := make(map[string]int)
	for i, skill := range c.Skills {
		byName[skill.Name] = i
	}
	stealth := c.Skills[byName["Stealth"]]
	assert.True(t, stealth.Proficient)
	assert.Equal(t, 5, stealth.Bonus)
	deception := c.Skills[byName["Deception"]]
	assert.True(t, deception.Proficient)
	assert.Equal(t, 4, deception.Bonus)
	assert.False(t, c.Skills[byName["Acrobatics"]].Proficient)
	assert.Equal(t, 3, c.Skills[byName["Acrobatics"]].Bonus)

	assert.Equal(t, []string{"Shortsword", "Thieves' tools"}, c.Equipment)
	assert.Empty(t, c.Spells)
}

func TestDecodeCurrentRecordIsUnchanged(t *testing.T) {
	wizard := testutils.CreateTestWizard(testutils.TestCharacterID)
	data, err := character.Encode(wizard)
	require.NoError(t, err)

	c, upgraded, err := character.Decode(data)
	require.NoError(t, err)
	assert.False(t, upgraded)
	assert.Equal(t, wizard, c)
}

func TestDecodeMalformed(t *testing.T) {
	_, _, err := character.Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestFileRepositoryReadsLegacyDocuments(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/20240101120000.json", []byte(testutils.LegacyRecordJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/broken.json", []byte("{"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/notes.txt", []byte("ignore me"), 0o644))

	repo, err := character.NewFile(&character.FileConfig{Fs: fs, Dir: "/data"})
	require.NoError(t, err)

	out, err := repo.List(context.Background(), character.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Characters, 1)
	assert.Equal(t, "Old Timer", out.Characters[0].Name)
	assert.Len(t, out.Characters[0].Skills, 18)
}
