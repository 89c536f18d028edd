package document

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

// ParseMarkdown converts a markdown document into blocks by rendering
// it to HTML first and parsing the result. Headings, paragraphs, lists,
// and code fences come out as their corresponding block kinds.
func (p *Parser) ParseMarkdown(source []byte) ([]*Block, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render markdown")
	}
	return p.Parse(buf.String())
}
