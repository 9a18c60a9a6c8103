// Package catalog holds the static, read-only tutorial dataset.
//
// The dataset is decoded once at startup, either from the embedded
// catalog.yaml or from a file supplied on the command line. Nothing in the
// process mutates it afterwards; accessors hand out copies.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// ErrNotFound is returned by Lookup for unknown identifiers.
var ErrNotFound = errors.New("tutorial not found")

// AllCategory is the category identifier that matches every item.
const AllCategory = "all"

// Catalog is the immutable item and category list.
type Catalog struct {
	items      []Item
	categories []Category
	byID       map[string]int
}

type document struct {
	Categories []Category `yaml:"categories"`
	Tutorials  []Item     `yaml:"tutorials"`
}

// Load decodes a YAML dataset. The input is trusted: beyond decoding there
// is no validation, and unknown content types are kept as-is.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil, nil), nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Tutorials, doc.Categories), nil
}

// LoadFile decodes the dataset at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the dataset compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embedded))
}

// New builds a catalog from already-decoded records. Later duplicates of an
// ID stay in the list but Lookup resolves to the first occurrence.
func New(items []Item, categories []Category) *Catalog {
	c := &Catalog{
		items:      make([]Item, 0, len(items)),
		categories: make([]Category, len(categories)),
		byID:       make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.byID[it.ID]; !dup {
			c.byID[it.ID] = len(c.items)
		}
		c.items = append(c.items, it.clone())
	}
	copy(c.categories, categories)
	return c
}

// Items returns the items in dataset order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

// Categories returns the categories in dataset order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds an item by identifier.
func (c *Catalog) Lookup(id string) (Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.items[i].clone(), nil
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// LiveCount counts items that actually carry the category tag. It is a
// diagnostic and never replaces Category.Count.
func (c *Catalog) LiveCount(categoryID string) int {
	if categoryID == AllCategory {
		return len(c.items)
	}
	n := 0
	for _, it := range c.items {
		if it.HasTag(categoryID) {
			n++
		}
	}
	return n
}
