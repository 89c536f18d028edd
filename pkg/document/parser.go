package document

import (
	"html"
	"strings"

	"github.com/presskit/blockdoc/pkg/document/identity"
)

// maxContainerDepth bounds recursion into nested transparent
// containers. Past the bound a container is kept as an opaque block
// instead of being flattened.
const maxContainerDepth = 64

// transparentContainers are layout wrappers that do not become blocks
// themselves: their child elements are lifted up one level. Nesting is
// deliberately lossy; downstream serialization depends on the flattened
// shape.
var transparentContainers = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
	"main":    true,
	"header":  true,
	"footer":  true,
}

// Parser converts HTML fragments into ordered block lists.
type Parser struct {
	idgen identity.Generator
}

// NewParser returns a parser that assigns ids from gen. A nil gen falls
// back to the default ULID generator.
func NewParser(gen identity.Generator) *Parser {
	if gen == nil {
		gen = identity.NewULID()
	}
	return &Parser{idgen: gen}
}

// Parse converts fragment into an ordered list of blocks, one per
// top-level element or non-whitespace text run. Empty and
// whitespace-only input yields an empty list. Malformed markup is
// tolerated with the backend parser's leniency.
func (p *Parser) Parse(fragment string) ([]*Block, error) {
	blocks := []*Block{}
	if strings.TrimSpace(fragment) == "" {
		return blocks, nil
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	if err := p.collect(nodes, &blocks, 0); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (p *Parser) collect(nodes []Node, blocks *[]*Block, depth int) error {
	for _, node := range nodes {
		tag := node.Tag()

		if tag == "" {
			text := strings.TrimSpace(node.Text())
			if text == "" {
				continue
			}
			// Loose text is normalized to a paragraph so every block
			// carries self-contained markup.
			*blocks = append(*blocks, &Block{
				ID:      p.idgen.NewBlockID(),
				Kind:    KindParagraph,
				Tag:     "p",
				Content: "<p>" + html.EscapeString(text) + "</p>",
			})
			continue
		}

		if transparentContainers[tag] && depth < maxContainerDepth && hasElementChild(node) {
			if err := p.collect(node.Children(), blocks, depth+1); err != nil {
				return err
			}
			continue
		}

		outer, err := node.OuterHTML()
		if err != nil {
			return err
		}
		*blocks = append(*blocks, &Block{
			ID:         p.idgen.NewBlockID(),
			Kind:       KindForTag(tag),
			Tag:        tag,
			Attributes: node.Attributes(),
			Content:    outer,
		})
	}
	return nil
}

func hasElementChild(node Node) bool {
	for _, child := range node.Children() {
		if child.Tag() != "" {
			return true
		}
	}
	return false
}
