package embedding

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces correlation ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 correlation ids.
// It is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewCorrelationID returns a fresh UUIDv7 correlation id.
func NewCorrelationID() string {
	return UUIDv7Generator{}.Generate()
}

// FixedGenerator returns predetermined ids in order, for deterministic tests.
// Once they are used up it falls back to UUIDv7 ids.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator returns a generator yielding ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next fixed id, or a fresh UUIDv7 when none are left.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		return UUIDv7Generator{}.Generate()
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
