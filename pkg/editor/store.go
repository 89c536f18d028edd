// Package editor owns the authoritative in-memory block list for one
// open document and exposes its mutation API. A Store is driven by one
// logical sequence of operations at a time; embedding it under
// concurrent editors requires external serialization (one mutation
// queue per document).
package editor

import (
	"go.uber.org/zap"

	"github.com/presskit/blockdoc/internal/log"
	"github.com/presskit/blockdoc/pkg/catalog"
	"github.com/presskit/blockdoc/pkg/document"
	"github.com/presskit/blockdoc/pkg/document/identity"
)

// Outcome reports whether a mutation found its target. NotFound is a
// recoverable condition, not an error: the block may have been removed
// by another in-flight UI action.
type Outcome int

const (
	Applied Outcome = iota + 1
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Observer receives the canonical serialized HTML after every
// successful mutation.
type Observer func(html string)

// Store holds the ordered block list of one open document.
type Store struct {
	blocks    []*document.Block
	parser    *document.Parser
	idgen     identity.Generator
	cat       *catalog.Catalog
	logger    *zap.Logger
	observers []Observer
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithGenerator sets the id generation strategy for blocks created by
// the store and its parser.
func WithGenerator(gen identity.Generator) StoreOption {
	return func(s *Store) { s.idgen = gen }
}

// WithCatalog sets the template catalog used by InsertTemplate.
func WithCatalog(cat *catalog.Catalog) StoreOption {
	return func(s *Store) { s.cat = cat }
}

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore returns an empty store. Defaults: ULID ids, the built-in
// catalog, and the process logger.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		blocks: []*document.Block{},
		logger: log.Named("editor"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.idgen == nil {
		s.idgen = identity.NewULID()
	}
	if s.cat == nil {
		s.cat = catalog.Default()
	}
	s.parser = document.NewParser(s.idgen)
	return s
}

// Subscribe registers fn to be called with the canonical HTML after
// every successful mutation. Observers cannot veto a mutation.
func (s *Store) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

// LoadDocument parses html and replaces the store's contents with the
// result, notifying observers.
func (s *Store) LoadDocument(html string) error {
	blocks, err := s.parser.Parse(html)
	if err != nil {
		return err
	}
	s.replace(blocks)
	return nil
}

// Blocks returns the current block list. The slice is a copy; the
// blocks are live and must only be mutated through the store.
func (s *Store) Blocks() []*document.Block {
	out := make([]*document.Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// HTML returns the canonical serialized form of the visible blocks.
func (s *Store) HTML() string {
	return document.Serialize(s.blocks)
}

// AddBlock inserts a new custom block built from templateContent at
// afterIndex+1. Pass -1 to insert at the head; out-of-range indices are
// clamped. Returns the new block's id and the updated HTML.
func (s *Store) AddBlock(templateContent string, afterIndex int) (string, string) {
	if afterIndex < -1 {
		afterIndex = -1
	}
	if afterIndex > len(s.blocks)-1 {
		afterIndex = len(s.blocks) - 1
	}

	block := &document.Block{
		ID:      s.idgen.NewBlockID(),
		Kind:    document.KindCustom,
		Content: templateContent,
	}
	s.insertAt(afterIndex+1, block)
	s.logger.Debug("block added", zap.String("id", block.ID), zap.Int("index", afterIndex+1))
	return block.ID, s.notify()
}

// InsertTemplate resolves a catalog template and inserts it like
// AddBlock. An unknown template id is a caller bug and returns an error
// wrapping catalog.ErrUnknownTemplate.
func (s *Store) InsertTemplate(templateID string, afterIndex int) (string, string, error) {
	entry, err := s.cat.Get(templateID)
	if err != nil {
		return "", "", err
	}
	id, html := s.AddBlock(entry.Template, afterIndex)
	return id, html, nil
}

// EditBlock replaces the content of the block matching id; kind, tag,
// and position are untouched.
func (s *Store) EditBlock(id, newContent string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	s.blocks[i].Content = newContent
	s.logger.Debug("block edited", zap.String("id", id))
	return Applied, s.notify()
}

// DuplicateBlock clones the block matching id under a fresh id and
// inserts the clone immediately after the original.
func (s *Store) DuplicateBlock(id string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	clone := s.blocks[i].Clone(s.idgen.NewBlockID())
	s.insertAt(i+1, clone)
	s.logger.Debug("block duplicated", zap.String("id", id), zap.String("clone", clone.ID))
	return Applied, s.notify()
}

// RemoveBlock deletes the block matching id.
func (s *Store) RemoveBlock(id string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
	s.logger.Debug("block removed", zap.String("id", id))
	return Applied, s.notify()
}

// ToggleHide flips the hidden flag of the block matching id. Hidden
// blocks stay in the list but are excluded from serialized output.
func (s *Store) ToggleHide(id string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	s.blocks[i].Hidden = !s.blocks[i].Hidden
	s.logger.Debug("block visibility toggled", zap.String("id", id), zap.Bool("hidden", s.blocks[i].Hidden))
	return Applied, s.notify()
}

// MoveUp swaps the block matching id with its predecessor. Already
// first is a no-op, not an error.
func (s *Store) MoveUp(id string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	if i == 0 {
		return Applied, s.HTML()
	}
	s.blocks[i-1], s.blocks[i] = s.blocks[i], s.blocks[i-1]
	return Applied, s.notify()
}

// MoveDown swaps the block matching id with its successor. Already last
// is a no-op.
func (s *Store) MoveDown(id string) (Outcome, string) {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML()
	}
	if i == len(s.blocks)-1 {
		return Applied, s.HTML()
	}
	s.blocks[i], s.blocks[i+1] = s.blocks[i+1], s.blocks[i]
	return Applied, s.notify()
}

// Stats returns document statistics over the current blocks.
func (s *Store) Stats() document.Stats {
	return document.CollectStats(s.blocks)
}

func (s *Store) indexOf(id string) int {
	for i, b := range s.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) insertAt(i int, block *document.Block) {
	s.blocks = append(s.blocks, nil)
	copy(s.blocks[i+1:], s.blocks[i:])
	s.blocks[i] = block
}

// replace swaps in a new block list wholesale and notifies observers.
func (s *Store) replace(blocks []*document.Block) {
	s.blocks = blocks
	s.notify()
}

func (s *Store) notify() string {
	html := s.HTML()
	for _, fn := range s.observers {
		fn(html)
	}
	return html
}
