package editor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presskit/blockdoc/pkg/catalog"
	"github.com/presskit/blockdoc/pkg/document"
	"github.com/presskit/blockdoc/pkg/document/identity"
)

func newTestStore(t *testing.T, html string) *Store {
	t.Helper()
	s := NewStore(WithGenerator(identity.NewSequence("blk")))
	require.NoError(t, s.LoadDocument(html))
	return s
}

func ids(blocks []*document.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func TestStore_LoadDocument(t *testing.T) {
	s := newTestStore(t, "<h1>Title</h1><p>Hello</p>")

	blocks := s.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, document.KindHeading, blocks[0].Kind)
	assert.Equal(t, "<h1>Title</h1>\n<p>Hello</p>", s.HTML())
}

func TestStore_AddBlock(t *testing.T) {
	t.Run("AtHead", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p>")
		id, html := s.AddBlock("<p>new</p>", -1)
		assert.NotEmpty(t, id)
		assert.Equal(t, "<p>new</p>\n<p>A</p>", html)
	})

	t.Run("AfterIndex", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p><p>B</p>")
		_, html := s.AddBlock("<p>mid</p>", 0)
		assert.Equal(t, "<p>A</p>\n<p>mid</p>\n<p>B</p>", html)
	})

	t.Run("IndexClamped", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p>")
		_, html := s.AddBlock("<p>tail</p>", 99)
		assert.Equal(t, "<p>A</p>\n<p>tail</p>", html)

		_, html = s.AddBlock("<p>head</p>", -42)
		assert.Equal(t, "<p>head</p>\n<p>A</p>\n<p>tail</p>", html)
	})

	t.Run("FreshCustomBlock", func(t *testing.T) {
		s := newTestStore(t, "")
		id, _ := s.AddBlock("<p>x</p>", -1)
		blocks := s.Blocks()
		require.Len(t, blocks, 1)
		assert.Equal(t, id, blocks[0].ID)
		assert.Equal(t, document.KindCustom, blocks[0].Kind)
	})
}

func TestStore_InsertTemplate(t *testing.T) {
	t.Run("KnownTemplate", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p>")
		entry, err := catalog.Default().Get("heading-1")
		require.NoError(t, err)

		_, html, err := s.InsertTemplate("heading-1", 0)
		require.NoError(t, err)
		assert.Equal(t, "<p>A</p>\n"+entry.Template, html)
	})

	t.Run("UnknownTemplateFailsLoudly", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p>")
		_, _, err := s.InsertTemplate("no-such-template", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, catalog.ErrUnknownTemplate))
		// The document is untouched.
		assert.Equal(t, "<p>A</p>", s.HTML())
	})
}

func TestStore_EditBlock(t *testing.T) {
	s := newTestStore(t, "<h1>Title</h1><p>Hello</p>")
	before := s.Blocks()
	target := before[1]

	outcome, html := s.EditBlock(target.ID, "<p>Edited</p>")
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "<h1>Title</h1>\n<p>Edited</p>", html)

	after := s.Blocks()
	// Exactly one content changed; ids, kinds, and order are stable.
	assert.Equal(t, ids(before), ids(after))
	assert.Equal(t, before[0].Content, after[0].Content)
	assert.Equal(t, target.Kind, after[1].Kind)
	assert.False(t, after[1].Hidden)

	outcome, html = s.EditBlock("missing", "<p>x</p>")
	assert.Equal(t, NotFound, outcome)
	assert.Equal(t, "<h1>Title</h1>\n<p>Edited</p>", html)
}

func TestStore_DuplicateBlock(t *testing.T) {
	s := newTestStore(t, "<p>A</p><p>B</p>")
	first := s.Blocks()[0]

	outcome, html := s.DuplicateBlock(first.ID)
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "<p>A</p>\n<p>A</p>\n<p>B</p>", html)

	blocks := s.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, first.ID, blocks[0].ID)
	assert.NotEqual(t, blocks[0].ID, blocks[1].ID)
	assert.NotEqual(t, blocks[1].ID, blocks[2].ID)
	assert.Equal(t, first.Content, blocks[1].Content)

	outcome, _ = s.DuplicateBlock("missing")
	assert.Equal(t, NotFound, outcome)
}

func TestStore_RemoveBlock(t *testing.T) {
	s := newTestStore(t, "<p>A</p><p>B</p>")
	first := s.Blocks()[0]

	outcome, html := s.RemoveBlock(first.ID)
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "<p>B</p>", html)

	outcome, html = s.RemoveBlock(first.ID)
	assert.Equal(t, NotFound, outcome)
	assert.Equal(t, "<p>B</p>", html)
}

func TestStore_ToggleHide(t *testing.T) {
	s := newTestStore(t, "<h1>Title</h1><p>Hello</p>")
	original := s.HTML()
	first := s.Blocks()[0]

	outcome, html := s.ToggleHide(first.ID)
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "<p>Hello</p>", html)

	// Hidden blocks stay in the model.
	assert.Len(t, s.Blocks(), 2)

	// Toggling back reproduces the original output exactly.
	_, html = s.ToggleHide(first.ID)
	assert.Equal(t, original, html)

	outcome, _ = s.ToggleHide("missing")
	assert.Equal(t, NotFound, outcome)
}

func TestStore_Move(t *testing.T) {
	t.Run("UpThenDownRestoresOrder", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p><p>B</p><p>C</p>")
		mid := s.Blocks()[1]
		original := s.HTML()

		outcome, html := s.MoveUp(mid.ID)
		assert.Equal(t, Applied, outcome)
		assert.Equal(t, "<p>B</p>\n<p>A</p>\n<p>C</p>", html)

		outcome, html = s.MoveDown(mid.ID)
		assert.Equal(t, Applied, outcome)
		assert.Equal(t, original, html)
	})

	t.Run("BoundaryMovesAreNoOps", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p><p>B</p>")
		blocks := s.Blocks()
		original := s.HTML()

		outcome, html := s.MoveUp(blocks[0].ID)
		assert.Equal(t, Applied, outcome)
		assert.Equal(t, original, html)

		outcome, html = s.MoveDown(blocks[1].ID)
		assert.Equal(t, Applied, outcome)
		assert.Equal(t, original, html)
	})

	t.Run("MissingID", func(t *testing.T) {
		s := newTestStore(t, "<p>A</p>")
		outcome, _ := s.MoveUp("missing")
		assert.Equal(t, NotFound, outcome)
		outcome, _ = s.MoveDown("missing")
		assert.Equal(t, NotFound, outcome)
	})
}

func TestStore_Observers(t *testing.T) {
	s := newTestStore(t, "")

	var emitted []string
	s.Subscribe(func(html string) {
		emitted = append(emitted, html)
	})

	_, _ = s.AddBlock("<p>A</p>", -1)
	require.NoError(t, s.LoadDocument("<p>B</p>"))
	id := s.Blocks()[0].ID
	_, _ = s.EditBlock(id, "<p>C</p>")
	_, _ = s.EditBlock("missing", "<p>x</p>") // no emission on NotFound

	assert.Equal(t, []string{"<p>A</p>", "<p>B</p>", "<p>C</p>"}, emitted)
}

func TestStore_IDUniqueness(t *testing.T) {
	s := newTestStore(t, "<p>A</p><p>B</p>")

	_, _ = s.AddBlock("<p>C</p>", 1)
	_, _ = s.DuplicateBlock(s.Blocks()[0].ID)

	seen := map[string]bool{}
	for _, b := range s.Blocks() {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestStore_Stats(t *testing.T) {
	s := newTestStore(t, "<h1>One two</h1><p>three</p>")
	stats := s.Stats()
	assert.Equal(t, 2, stats.Blocks)
	assert.Equal(t, 3, stats.Words)
}
