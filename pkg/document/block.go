package document

import (
	"html"
	"strings"
	"unicode"
)

// Kind classifies a block by the role its originating element plays in
// the document. The set is closed; tags without a mapping fall back to
// KindCustom.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindImage     Kind = "image"
	KindList      Kind = "list"
	KindQuote     Kind = "quote"
	KindCode      Kind = "code"
	KindTable     Kind = "table"
	KindVideo     Kind = "video"
	KindEmbed     Kind = "embed"
	KindContainer Kind = "container"
	KindCustom    Kind = "custom"
)

var tagKinds = map[string]Kind{
	"h1":         KindHeading,
	"h2":         KindHeading,
	"h3":         KindHeading,
	"h4":         KindHeading,
	"h5":         KindHeading,
	"h6":         KindHeading,
	"p":          KindParagraph,
	"img":        KindImage,
	"ul":         KindList,
	"ol":         KindList,
	"blockquote": KindQuote,
	"pre":        KindCode,
	"code":       KindCode,
	"table":      KindTable,
	"video":      KindVideo,
	"iframe":     KindVideo,
	"a":          KindEmbed,
	"div":        KindContainer,
	"section":    KindContainer,
	"article":    KindContainer,
	"main":       KindContainer,
	"header":     KindContainer,
	"footer":     KindContainer,
}

// KindForTag maps a lowercase tag name to its Kind.
func KindForTag(tag string) Kind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}
	return KindCustom
}

// Block is one independently editable unit of document content. Content
// holds the complete outer markup of the originating element and is the
// single source of truth for serialization; Attributes are captured at
// parse time for informational use only.
type Block struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"kind"`
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Content    string            `json:"content"`
	Hidden     bool              `json:"hidden,omitempty"`
	Selected   bool              `json:"-"`
}

// Clone returns a deep copy of the block under a new id. The copy is
// never selected.
func (b *Block) Clone(id string) *Block {
	clone := &Block{
		ID:      id,
		Kind:    b.Kind,
		Tag:     b.Tag,
		Content: b.Content,
		Hidden:  b.Hidden,
	}
	if b.Attributes != nil {
		clone.Attributes = make(map[string]string, len(b.Attributes))
		for k, v := range b.Attributes {
			clone.Attributes[k] = v
		}
	}
	return clone
}

// Text returns the block's content with markup stripped and entities
// decoded, suitable for word counts and search indexing.
func (b *Block) Text() string {
	var sb strings.Builder
	inTag := false
	for _, r := range b.Content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			sb.WriteRune(' ')
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.FieldsFunc(html.UnescapeString(sb.String()), unicode.IsSpace), " ")
}
