package document

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is the minimal view of a parsed HTML tree the parser walks. It
// decouples block extraction from the concrete HTML parsing backend.
type Node interface {
	// Tag returns the lowercase tag name, or "" for text nodes.
	Tag() string
	// Text returns the raw text of a text node, "" for elements.
	Text() string
	// Attributes returns the element's attributes, nil for text nodes.
	Attributes() map[string]string
	// Children returns the node's child nodes in document order.
	Children() []Node
	// OuterHTML returns the complete, self-contained markup for the
	// node, including the node itself.
	OuterHTML() (string, error)
}

// parseFragment parses an HTML fragment as if it appeared inside <body>
// and returns its top-level nodes. Comments, doctypes, and other
// non-content nodes are dropped.
func parseFragment(fragment string) ([]Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}

	parsed, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML fragment")
	}

	nodes := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		if n.Type == html.ElementNode || n.Type == html.TextNode {
			nodes = append(nodes, &htmlNode{inner: n})
		}
	}
	return nodes, nil
}

// htmlNode adapts golang.org/x/net/html nodes to the Node interface.
type htmlNode struct {
	inner *html.Node
}

var _ Node = (*htmlNode)(nil)

func (n *htmlNode) Tag() string {
	if n.inner.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.inner.Data)
}

func (n *htmlNode) Text() string {
	if n.inner.Type != html.TextNode {
		return ""
	}
	return n.inner.Data
}

func (n *htmlNode) Attributes() map[string]string {
	if n.inner.Type != html.ElementNode || len(n.inner.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(n.inner.Attr))
	for _, a := range n.inner.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func (n *htmlNode) Children() []Node {
	var children []Node
	for c := n.inner.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			children = append(children, &htmlNode{inner: c})
		}
	}
	return children
}

func (n *htmlNode) OuterHTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n.inner); err != nil {
		return "", errors.Wrap(err, "failed to render node")
	}
	return sb.String(), nil
}

// InnerHTML returns the markup of content's children with the
// outermost element stripped. When content is not a single element, it
// is returned unchanged.
func InnerHTML(content string) (string, error) {
	nodes, err := parseFragment(content)
	if err != nil {
		return "", err
	}
	if len(nodes) != 1 || nodes[0].Tag() == "" {
		return content, nil
	}

	var sb strings.Builder
	for _, child := range nodes[0].Children() {
		outer, err := child.OuterHTML()
		if err != nil {
			return "", err
		}
		sb.WriteString(outer)
	}
	return sb.String(), nil
}
