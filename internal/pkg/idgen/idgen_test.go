package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Treylong00/DND-Companion/internal/pkg/idgen"
)

func TestUUIDGeneratorConcurrentUnique(t *testing.T) {
	gen := idgen.NewUUID("")

	const workers = 16
	const perWorker = 250

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDGeneratorPrefix(t *testing.T) {
	id := idgen.NewUUID("char").Generate()
	require.True(t, len(id) > len("char_"))
	assert.Equal(t, "char_", id[:5])
	_, err := uuid.Parse(id[5:])
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
