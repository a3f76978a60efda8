package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the character store is written against.
// It embeds redis.UniversalClient so the real client satisfies it directly.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
