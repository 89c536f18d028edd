package editor

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/presskit/blockdoc/pkg/document"
)

// ErrUnsupportedTransform is returned for kinds TransformBlock cannot
// rewrap into.
var ErrUnsupportedTransform = errors.New("unsupported block transform")

// transformTags maps a target kind to the wrapper markup it produces.
// Only text-shaped kinds can be transformed into; media and custom
// blocks keep their markup as-is.
var transformTags = map[document.Kind][2]string{
	document.KindParagraph: {"<p>", "</p>"},
	document.KindHeading:   {"<h2>", "</h2>"},
	document.KindQuote:     {"<blockquote>", "</blockquote>"},
	document.KindCode:      {"<pre><code>", "</code></pre>"},
	document.KindList:      {"<ul><li>", "</li></ul>"},
}

var transformKindTag = map[document.Kind]string{
	document.KindParagraph: "p",
	document.KindHeading:   "h2",
	document.KindQuote:     "blockquote",
	document.KindCode:      "pre",
	document.KindList:      "ul",
}

// TransformBlock rewraps the inner content of the block matching id in
// the canonical markup of the target kind. The block keeps its id,
// position, and hidden flag.
func (s *Store) TransformBlock(id string, kind document.Kind) (Outcome, string, error) {
	wrap, ok := transformTags[kind]
	if !ok {
		return NotFound, s.HTML(), errors.Wrapf(ErrUnsupportedTransform, "kind %q", kind)
	}

	i := s.indexOf(id)
	if i < 0 {
		return NotFound, s.HTML(), nil
	}

	inner, err := document.InnerHTML(s.blocks[i].Content)
	if err != nil {
		return NotFound, s.HTML(), err
	}

	b := s.blocks[i]
	b.Kind = kind
	b.Tag = transformKindTag[kind]
	b.Content = wrap[0] + inner + wrap[1]
	s.logger.Debug("block transformed", zap.String("id", id), zap.String("kind", string(kind)))
	return Applied, s.notify(), nil
}
