// Package categories manages the category-definitions file: an ordered
// mapping from category name to substring match patterns, stored as YAML.
package categories

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Category is one named group of match patterns.
type Category struct {
	Name     string
	Patterns []string
}

// Definitions holds the categories from the definitions file, in file
// order. Order is observable: KategorieIdx filters index into it, and
// duplicate-pattern resolution depends on it, so a plain Go map with its
// random iteration order is not an option.
type Definitions struct {
	categories []Category
}

// UnmarshalYAML decodes a top-level mapping of category name to pattern
// list, preserving the key order of the document.
func (d *Definitions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("category definitions: expected a mapping at line %d", node.Line)
	}
	d.categories = nil
	for i := 0; i < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var patterns []string
		if err := val.Decode(&patterns); err != nil {
			return fmt.Errorf("category %q: %w", key.Value, err)
		}
		d.categories = append(d.categories, Category{Name: key.Value, Patterns: patterns})
	}
	return nil
}

// MarshalYAML encodes the definitions as a mapping in insertion order.
func (d Definitions) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range d.categories {
		var key yaml.Node
		key.SetString(c.Name)
		var val yaml.Node
		if err := val.Encode(c.Patterns); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// Load reads a category-definitions YAML file from disk.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	return &defs, nil
}

// Store writes the definitions back to disk. The write is a whole-file
// atomic replacement so an interrupted run never leaves a truncated
// definitions file behind.
func (d *Definitions) Store(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".categories-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing categories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing categories: %w", err)
	}
	return nil
}

// Len returns the number of categories.
func (d *Definitions) Len() int {
	return len(d.categories)
}

// Names returns the category names in definition order.
func (d *Definitions) Names() []string {
	names := make([]string, len(d.categories))
	for i, c := range d.categories {
		names[i] = c.Name
	}
	return names
}

// Name returns the category name at position idx of the definition order.
func (d *Definitions) Name(idx int) (string, bool) {
	if idx < 0 || idx >= len(d.categories) {
		return "", false
	}
	return d.categories[idx].Name, true
}

// Has reports whether a category of that name exists.
func (d *Definitions) Has(name string) bool {
	for _, c := range d.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Append adds a pattern under a category, creating the category at the end
// of the definition order if it does not exist yet.
func (d *Definitions) Append(category, pattern string) {
	for i, c := range d.categories {
		if c.Name == category {
			d.categories[i].Patterns = append(d.categories[i].Patterns, pattern)
			return
		}
	}
	d.categories = append(d.categories, Category{Name: category, Patterns: []string{pattern}})
}
