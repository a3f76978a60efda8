package character

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/pkg/clock"
	redisclient "github.com/Treylong00/DND-Companion/internal/redis"
)

const (
	// IndexKey is a sorted set of record IDs scored by creation time
	IndexKey = "character:index"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Key returns the Redis key holding the record with the given id. It is
// the same key EntityKey derives from the record itself.
func Key(id string) string {
	return entities.EntityTypeCharacter + ":" + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	data, err := Encode(input.Character)
	if err != nil {
		return nil, err
	}

	key := EntityKey(input.Character)
	id := input.Character.GetID()

	// SETNX keeps two concurrent imports of the same id from both winning
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", id)
	}

	err = r.client.ZAdd(ctx, IndexKey, redis.Z{
		Score:  float64(r.clock.Now().UnixNano()),
		Member: id,
	}).Err()
	if err != nil {
		// an unindexed record would never show up in List
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			slog.ErrorContext(ctx, "failed to roll back unindexed character",
				"character_id", id, "error", delErr)
		}
		return nil, errors.Wrapf(err, "failed to index character %s", id)
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.ID)).Bytes()
	if errors.Is(err, redisclient.Nil) {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	c, err := r.decode(ctx, input.ID, result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) decode(ctx context.Context, id string, data []byte) (*entities.Character, error) {
	c, upgraded, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode character %s", id)
	}
	if upgraded {
		slog.DebugContext(ctx, "upgraded legacy character record", "character_id", id)
	}
	return c, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	data, err := Encode(input.Character)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.SetXX(ctx, EntityKey(input.Character), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if !updated {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.GetID())
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, Key(input.ID))
	pipe.ZRem(ctx, IndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRange(ctx, IndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", IndexKey)
	}
	if len(ids) == 0 {
		return &ListOutput{Characters: []*entities.Character{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %d characters", len(ids))
	}

	slog.DebugContext(ctx, "listing characters from index",
		"index_key", IndexKey,
		"count", len(ids))

	characters := make([]*entities.Character, 0, len(ids))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		c, err := r.decode(ctx, ids[i], []byte(raw))
		if err != nil {
			slog.ErrorContext(ctx, "skipping unreadable character",
				"character_id", ids[i],
				"error", err.Error())
			continue
		}
		characters = append(characters, c)
	}

	if len(stale) > 0 {
		slog.WarnContext(ctx, "characters missing, cleaning up index",
			"index_key", IndexKey,
			"count", len(stale))
		if err := r.client.ZRem(ctx, IndexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to clean index", "error", err.Error())
		}
	}

	return &ListOutput{Characters: characters}, nil
}
