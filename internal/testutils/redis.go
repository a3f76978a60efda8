// Package testutils holds fixtures and helpers shared by package tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Treylong00/DND-Companion/internal/redis"
)

// NewTestRedis starts an in-memory Redis server and a client connected to it.
// Both are closed when the test ends. The server is returned so tests can
// seed keys or stop it to simulate an outage.
func NewTestRedis(t testing.TB) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: 1})
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
