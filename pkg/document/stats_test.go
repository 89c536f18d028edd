package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	blocks, err := newTestParser().Parse("<h1>Post Title</h1><p>Hello world again</p><p>hidden text</p>")
	require.NoError(t, err)
	blocks[2].Hidden = true

	stats := CollectStats(blocks)

	assert.Equal(t, 2, stats.Blocks)
	assert.Equal(t, 1, stats.Hidden)
	assert.Equal(t, 5, stats.Words)
	assert.Equal(t, len([]rune("Post Title"))+len([]rune("Hello world again")), stats.Characters)
}

func TestCollectStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, CollectStats(nil))
}
