// Package catalog holds the static registry of block templates offered
// by the editor's insertion menu. The catalog is immutable after
// construction and safe for concurrent reads across any number of open
// documents.
package catalog

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Category groups related templates in the insertion menu.
type Category string

const (
	CategoryText        Category = "Text"
	CategoryMedia       Category = "Media"
	CategoryLayout      Category = "Layout"
	CategoryDesign      Category = "Design"
	CategoryInteractive Category = "Interactive"
	CategoryWidgets     Category = "Widgets"
	CategoryEmbeds      Category = "Embeds"
	CategoryForm        Category = "Form"
	CategoryAdvanced    Category = "Advanced"
	CategoryTheme       Category = "Theme"
)

// categoryOrder fixes the menu order; Entries and search results follow
// it.
var categoryOrder = []Category{
	CategoryText,
	CategoryMedia,
	CategoryLayout,
	CategoryDesign,
	CategoryInteractive,
	CategoryWidgets,
	CategoryEmbeds,
	CategoryForm,
	CategoryAdvanced,
	CategoryTheme,
}

var knownCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(categoryOrder))
	for _, c := range categoryOrder {
		m[c] = true
	}
	return m
}()

// Entry is one immutable block template. Shortcuts are short tokens
// ("h1", "ul") that resolve the entry by exact match in search.
type Entry struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Category  Category `json:"category"`
	Template  string   `json:"template"`
	Shortcuts []string `json:"shortcuts,omitempty"`
}

// ErrUnknownTemplate is returned by Get for template ids that are not
// registered. Inserting an unknown template is a caller bug, not a
// runtime condition, so it surfaces as an error rather than a no-op.
var ErrUnknownTemplate = errors.New("unknown block template")

// Catalog is a read-only, category-ordered collection of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New builds a catalog from entries, reordering them into category
// order while preserving relative order within a category. All defects
// are reported together.
func New(entries []Entry) (*Catalog, error) {
	var err error
	byID := make(map[string]int, len(entries))

	for i, e := range entries {
		switch {
		case e.ID == "":
			err = multierr.Append(err, errors.Errorf("entry %d: empty id", i))
			continue
		case e.Label == "":
			err = multierr.Append(err, errors.Errorf("entry %q: empty label", e.ID))
		case e.Template == "":
			err = multierr.Append(err, errors.Errorf("entry %q: empty template", e.ID))
		case !knownCategories[e.Category]:
			err = multierr.Append(err, errors.Errorf("entry %q: unknown category %q", e.ID, e.Category))
		}
		if _, dup := byID[e.ID]; dup {
			err = multierr.Append(err, errors.Errorf("entry %q: duplicate id", e.ID))
		}
		byID[e.ID] = i
	}
	if err != nil {
		return nil, err
	}

	ordered := make([]Entry, 0, len(entries))
	for _, cat := range categoryOrder {
		for _, e := range entries {
			if e.Category == cat {
				ordered = append(ordered, e)
			}
		}
	}
	for i, e := range ordered {
		byID[e.ID] = i
	}

	return &Catalog{entries: ordered, byID: byID}, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in catalog shared by all stores.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := New(builtinEntries)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Entries returns all entries in category order. The returned slice is
// a copy; entries themselves are shared and must not be mutated.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Categories returns the categories that have at least one entry, in
// menu order.
func (c *Catalog) Categories() []Category {
	present := make(map[Category]bool, len(categoryOrder))
	for _, e := range c.entries {
		present[e.Category] = true
	}
	out := make([]Category, 0, len(present))
	for _, cat := range categoryOrder {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Get resolves a template id, returning ErrUnknownTemplate on a miss.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownTemplate, "id %q", id)
	}
	return c.entries[i], nil
}
