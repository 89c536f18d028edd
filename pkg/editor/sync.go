package editor

import (
	"go.uber.org/zap"

	"github.com/presskit/blockdoc/internal/log"
	"github.com/presskit/blockdoc/pkg/document"
)

// Guard reconciles externally supplied document content against the
// store without discarding in-progress local edits unnecessarily. A
// refresh that carries the same content as the store is a no-op, so
// hidden flags and selection survive it; genuinely different content
// replaces the blocks wholesale.
type Guard struct {
	store  *Store
	logger *zap.Logger
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store, logger: log.Named("sync")}
}

// Reconcile parses html into a candidate block list and compares its
// content sequence against the store's, ignoring ids, hidden flags, and
// attributes. It reports whether the store was replaced. Calling it
// twice with the same input replaces at most once.
func (g *Guard) Reconcile(html string) (bool, error) {
	candidate, err := g.store.parser.Parse(html)
	if err != nil {
		return false, err
	}

	if sequencesEqual(document.ContentSequence(candidate), document.ContentSequence(g.store.blocks)) {
		g.logger.Debug("external content unchanged, keeping local state")
		return false, nil
	}

	g.logger.Debug("external content differs, replacing blocks",
		zap.Int("current", len(g.store.blocks)),
		zap.Int("candidate", len(candidate)),
	)
	g.store.replace(candidate)
	return true, nil
}

func sequencesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
