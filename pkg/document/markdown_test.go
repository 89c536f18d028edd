package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseMarkdown(t *testing.T) {
	source := []byte("# Title\n\nHello *world*\n\n- one\n- two\n")

	p := newTestParser()
	blocks, err := p.ParseMarkdown(source)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, KindHeading, blocks[0].Kind)
	assert.Equal(t, "h1", blocks[0].Tag)
	assert.Equal(t, KindParagraph, blocks[1].Kind)
	assert.Equal(t, KindList, blocks[2].Kind)
	assert.Equal(t, "ul", blocks[2].Tag)

	// Imported content serializes and re-parses stably.
	reparsed, err := p.Parse(Serialize(blocks))
	require.NoError(t, err)
	assert.Equal(t, ContentSequence(blocks), ContentSequence(reparsed))
}
