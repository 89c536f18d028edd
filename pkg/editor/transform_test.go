package editor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presskit/blockdoc/pkg/document"
)

func TestStore_TransformBlock(t *testing.T) {
	t.Run("ParagraphToHeading", func(t *testing.T) {
		s := newTestStore(t, "<p>Hello</p>")
		id := s.Blocks()[0].ID

		outcome, html, err := s.TransformBlock(id, document.KindHeading)
		require.NoError(t, err)
		assert.Equal(t, Applied, outcome)
		assert.Equal(t, "<h2>Hello</h2>", html)

		b := s.Blocks()[0]
		assert.Equal(t, id, b.ID)
		assert.Equal(t, document.KindHeading, b.Kind)
		assert.Equal(t, "h2", b.Tag)
	})

	t.Run("HeadingToQuote", func(t *testing.T) {
		s := newTestStore(t, "<h1>Words</h1>")
		id := s.Blocks()[0].ID

		_, html, err := s.TransformBlock(id, document.KindQuote)
		require.NoError(t, err)
		assert.Equal(t, "<blockquote>Words</blockquote>", html)
	})

	t.Run("InnerMarkupPreserved", func(t *testing.T) {
		s := newTestStore(t, "<p>keep <em>this</em></p>")
		id := s.Blocks()[0].ID

		_, html, err := s.TransformBlock(id, document.KindHeading)
		require.NoError(t, err)
		assert.Equal(t, "<h2>keep <em>this</em></h2>", html)
	})

	t.Run("UnsupportedKind", func(t *testing.T) {
		s := newTestStore(t, "<p>Hello</p>")
		id := s.Blocks()[0].ID

		_, _, err := s.TransformBlock(id, document.KindImage)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedTransform))
	})

	t.Run("MissingID", func(t *testing.T) {
		s := newTestStore(t, "<p>Hello</p>")
		outcome, _, err := s.TransformBlock("missing", document.KindHeading)
		require.NoError(t, err)
		assert.Equal(t, NotFound, outcome)
	})
}
