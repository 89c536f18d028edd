package identity

import (
	"strconv"
	"sync/atomic"

	"github.com/presskit/blockdoc/internal/ulid"
)

// Generator produces unique block ids. Implementations must return a
// fresh value on every call; ids are never reused within a store, even
// after the block they named is removed.
type Generator interface {
	NewBlockID() string
}

// NewULID returns the default generator backed by monotonic ULIDs.
func NewULID() Generator {
	return ulidGenerator{}
}

type ulidGenerator struct{}

func (ulidGenerator) NewBlockID() string {
	return ulid.GenerateID()
}

// NewSequence returns a deterministic generator that yields
// "<prefix>-1", "<prefix>-2", and so on. Intended for tests and
// reproducible fixtures.
func NewSequence(prefix string) Generator {
	return &sequenceGenerator{prefix: prefix}
}

type sequenceGenerator struct {
	prefix string
	n      atomic.Int64
}

func (g *sequenceGenerator) NewBlockID() string {
	return g.prefix + "-" + strconv.FormatInt(g.n.Add(1), 10)
}
