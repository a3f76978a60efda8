package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Treylong00/DND-Companion/internal/pkg/clock"
	character "github.com/Treylong00/DND-Companion/internal/repositories/character"
	"github.com/Treylong00/DND-Companion/internal/testutils"
)

func TestRedisListDropsStaleIndexEntries(t *testing.T) {
	ctx := context.Background()
	client, _ := testutils.NewTestRedis(t)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  clock.NewStepping(time.Unix(1700000000, 0), time.Second),
	})
	require.NoError(t, err)

	for _, id := range []string{"char_a", "char_b"} {
		_, err := repo.Create(ctx, character.CreateInput{Character: testutils.CreateTestFighter(id)})
		require.NoError(t, err)
	}
	require.NoError(t, client.Del(ctx, character.Key("char_a")).Err())

	out, err := repo.List(ctx, character.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Characters, 1)
	assert.Equal(t, "char_b", out.Characters[0].ID)

	members, err := client.ZRange(ctx, character.IndexKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"char_b"}, members)
}

func TestRedisGetUpgradesLegacyRecord(t *testing.T) {
	ctx := context.Background()
	client, _ := testutils.NewTestRedis(t)

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	require.NoError(t, err)

	require.NoError(t, client.Set(ctx, character.Key("20240101120000"), testutils.LegacyRecordJSON, 0).Err())

	out, err := repo.Get(ctx, character.GetInput{ID: "20240101120000"})
	require.NoError(t, err)
	assert.Equal(t, "Old Timer", out.Character.Name)
	assert.Len(t, out.Character.Skills, 18)
	assert.Equal(t, []string{"Shortsword", "Thieves' tools"}, out.Character.Equipment)
}

func TestRedisStoresRecordUnderEntityKey(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.NewTestRedis(t)

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	require.NoError(t, err)

	fighter := testutils.CreateTestFighter("char_key")
	_, err = repo.Create(ctx, character.CreateInput{Character: fighter})
	require.NoError(t, err)

	assert.Equal(t, "character:char_key", character.EntityKey(fighter))
	assert.Equal(t, character.Key("char_key"), character.EntityKey(fighter))
	assert.True(t, mr.Exists(character.EntityKey(fighter)))
}

func TestRedisCreateRemovesRecordWhenIndexFails(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.NewTestRedis(t)

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	require.NoError(t, err)

	// a string under the index key makes ZADD fail with WRONGTYPE
	require.NoError(t, mr.Set(character.IndexKey, "not a sorted set"))

	_, err = repo.Create(ctx, character.CreateInput{Character: testutils.CreateTestFighter("char_orphan")})
	require.Error(t, err)
	assert.False(t, mr.Exists(character.Key("char_orphan")))

	mr.Del(character.IndexKey)
	_, err = repo.Create(ctx, character.CreateInput{Character: testutils.CreateTestFighter("char_orphan")})
	require.NoError(t, err)
}
