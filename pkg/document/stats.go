package document

import "strings"

// Stats summarizes a block list for the dashboard's word-count and
// reading-time panels.
type Stats struct {
	Blocks     int `json:"blocks"`
	Hidden     int `json:"hidden"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// CollectStats computes document statistics over the visible blocks.
func CollectStats(blocks []*Block) Stats {
	var stats Stats
	for _, b := range blocks {
		if b.Hidden {
			stats.Hidden++
			continue
		}
		stats.Blocks++
		text := b.Text()
		stats.Characters += len([]rune(text))
		stats.Words += len(strings.Fields(text))
	}
	return stats
}
