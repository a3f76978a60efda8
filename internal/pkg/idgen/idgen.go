// Package idgen provides record identifier generation.
//
// Imported characters are keyed by collision-resistant identifiers; two
// imports finishing in the same instant must never share an id.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/Treylong00/DND-Companion/internal/pkg/idgen Generator

// Generator hands out record identifiers. Implementations must be safe for
// concurrent use.
type Generator interface {
	Generate() string
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// UUIDGenerator produces "<prefix>_<uuid v4>" identifiers
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator. An empty prefix yields bare UUIDs.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a fresh identifier
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// SequentialGenerator produces "<prefix>_1", "<prefix>_2", ... and exists so
// tests can predict ids.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next identifier in sequence
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}
