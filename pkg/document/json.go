package document

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/presskit/blockdoc/pkg/document/identity"
)

// MarshalBlocks encodes blocks as JSON for persistence by the
// surrounding shell. The transient Selected flag is not carried.
func MarshalBlocks(blocks []*Block) ([]byte, error) {
	data, err := json.Marshal(blocks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal blocks")
	}
	return data, nil
}

// UnmarshalBlocks decodes a block list previously produced by
// MarshalBlocks. Blocks with a missing or malformed id get a fresh one
// from gen; a nil gen falls back to the default ULID generator.
func UnmarshalBlocks(data []byte, gen identity.Generator) ([]*Block, error) {
	if gen == nil {
		gen = identity.NewULID()
	}

	var blocks []*Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal blocks")
	}

	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if b.ID == "" || seen[b.ID] {
			b.ID = gen.NewBlockID()
		}
		seen[b.ID] = true
		if b.Kind == "" {
			b.Kind = KindForTag(b.Tag)
		}
	}
	return blocks, nil
}
