package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/redis"
	"github.com/Treylong00/DND-Companion/internal/testutils"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	client, mr := testutils.NewTestRedis(t)

	require.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	err := redis.Ping(context.Background(), client)
	assert.True(t, errors.IsUnavailable(err))
}
