package document

import "strings"

// Serialize folds blocks back into a single HTML fragment. Hidden
// blocks are skipped; the rest contribute their content in list order,
// separated by a newline. Pure; blocks are not modified.
func Serialize(blocks []*Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Hidden {
			continue
		}
		parts = append(parts, b.Content)
	}
	return strings.Join(parts, "\n")
}

// ContentSequence returns every block's content in list order,
// including hidden blocks. It is the comparison key used to decide
// whether two block lists carry the same document.
func ContentSequence(blocks []*Block) []string {
	seq := make([]string, len(blocks))
	for i, b := range blocks {
		seq[i] = b.Content
	}
	return seq
}
