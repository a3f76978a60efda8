// Package redis wraps the go-redis client so stores depend on a narrow,
// mockable interface.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// Options configures the connection used by the redis character store
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	MaxRetries   int
	DialTimeout  time.Duration
	UseTLS       bool
	ServerName   string
	MinIdleConns int
}

// NewClient creates a client for a single Redis instance. The connection is
// lazy; call Ping to verify the endpoint.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:         endpoint,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: opts.ServerName,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks that the endpoint answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Unavailablef("redis ping failed: %v", err)
	}
	return nil
}
