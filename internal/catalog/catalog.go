// Package catalog holds the word pairs the rounds are played with.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/bloops-games/undercover/internal/undercover/match"
	"gopkg.in/yaml.v2"
)

//go:embed words.yaml
var defaultWords []byte

var (
	ErrEmpty       = fmt.Errorf("catalog has no categories")
	ErrInvalidPair = fmt.Errorf("invalid word pair")
	ErrCategory    = fmt.Errorf("invalid category")
)

type document struct {
	Categories []struct {
		Name  string     `yaml:"name"`
		Pairs [][]string `yaml:"pairs"`
	} `yaml:"categories"`
}

type Category struct {
	Name  string
	Pairs []match.WordPair
}

var _ match.Catalog = (*Catalog)(nil)

// Catalog is immutable once parsed and safe for concurrent reads.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	c, err := Parse(defaultWords)
	if err != nil {
		return nil, fmt.Errorf("parse embedded words: %w", err)
	}
	return c, nil
}

func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(doc.Categories) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{index: make(map[string]int, len(doc.Categories))}
	for _, dc := range doc.Categories {
		name := strings.TrimSpace(dc.Name)
		switch {
		case name == "":
			return nil, fmt.Errorf("%w: empty name", ErrCategory)
		case strings.EqualFold(name, match.CategoryAll):
			return nil, fmt.Errorf("%w: %q is reserved", ErrCategory, name)
		}
		if _, ok := c.index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate %q", ErrCategory, name)
		}

		category := Category{Name: name, Pairs: make([]match.WordPair, 0, len(dc.Pairs))}
		for i, p := range dc.Pairs {
			if len(p) != 2 || strings.TrimSpace(p[0]) == "" || strings.TrimSpace(p[1]) == "" {
				return nil, fmt.Errorf("%w: %s #%d", ErrInvalidPair, name, i+1)
			}
			category.Pairs = append(category.Pairs, match.WordPair{
				Civilian:   strings.TrimSpace(p[0]),
				Undercover: strings.TrimSpace(p[1]),
			})
		}

		c.index[name] = len(c.categories)
		c.categories = append(c.categories, category)
	}

	return c, nil
}

// Categories lists the category names in file order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, category := range c.categories {
		names[i] = category.Name
	}
	return names
}

func (c *Catalog) Pairs(category string) ([]match.WordPair, bool) {
	i, ok := c.index[category]
	if !ok {
		return nil, false
	}

	pairs := make([]match.WordPair, len(c.categories[i].Pairs))
	copy(pairs, c.categories[i].Pairs)
	return pairs, true
}

// Lookup finds a category ignoring case, for names typed by the players.
func (c *Catalog) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, category := range c.categories {
		if strings.EqualFold(category.Name, name) {
			return category.Name, true
		}
	}
	return "", false
}

func (c *Catalog) Len() int {
	var n int
	for _, category := range c.categories {
		n += len(category.Pairs)
	}
	return n
}
