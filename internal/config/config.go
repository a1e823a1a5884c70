// Package config loads named layouts from TOML files.
//
// A file declares one table per layout; element splits nest through
// children tables keyed by element index:
//
//	[layout.main]
//	direction = "vertical"
//	constraints = ["len:3", "fill:1", "len:1"]
//	labels = ["header", "body", "footer"]
//
//	[layout.main.children.1]
//	direction = "horizontal"
//	spacing = 1
//	constraints = ["pct:30", "fill:1"]
//	labels = ["sidebar", "content"]
package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

// ErrUnknownKey is returned when a file contains keys the schema does not define.
var ErrUnknownKey = errors.New("unknown key")

type fileSchema struct {
	Layouts map[string]*nodeSchema `toml:"layout"`
}

type nodeSchema struct {
	Direction   string                 `toml:"direction"`
	Flex        string                 `toml:"flex"`
	Spacing     int                    `toml:"spacing"`
	Margin      int                    `toml:"margin"`
	Constraints []string               `toml:"constraints"`
	Labels      []string               `toml:"labels"`
	Children    map[string]*nodeSchema `toml:"children"`
}

// Config is a set of named layout trees.
type Config struct {
	trees map[string]*Tree
}

// Tree is a layout whose elements may be split further.
type Tree struct {
	Layout   layout.Layout
	Flex     layout.Flex
	Spacing  int
	Labels   []string
	Children map[int]*Tree
}

// NewTree creates a single-level tree.
func NewTree(dir layout.Direction, flex layout.Flex, spacing, margin int, constraints []layout.Constraint, labels []string) *Tree {
	return &Tree{
		Layout: layout.New(dir, constraints...).
			Flex(flex).
			Spacing(spacing).
			Margin(margin),
		Flex:    flex,
		Spacing: spacing,
		Labels:  labels,
	}
}

// Region is one element of a resolved tree.
type Region struct {
	Label string
	Rect  layout.Rect
	Depth int
	Leaf  bool
}

// Load reads and validates the TOML layout file at path.
func Load(path string) (*Config, error) {
	var raw fileSchema
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	cfg, err := build(raw, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML layout text.
func Parse(data string) (*Config, error) {
	var raw fileSchema
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	return build(raw, meta)
}

func build(raw fileSchema, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg := &Config{trees: make(map[string]*Tree, len(raw.Layouts))}
	for name, node := range raw.Layouts {
		tree, err := buildTree(node)
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
		cfg.trees[name] = tree
	}
	return cfg, nil
}

func buildTree(node *nodeSchema) (*Tree, error) {
	dir := layout.Horizontal
	if node.Direction != "" {
		d, err := layout.ParseDirection(node.Direction)
		if err != nil {
			return nil, err
		}
		dir = d
	}
	flex, err := layout.ParseFlex(node.Flex)
	if err != nil {
		return nil, err
	}
	if len(node.Constraints) == 0 {
		return nil, fmt.Errorf("%w: no constraints", layout.ErrInvalidConstraint)
	}
	constraints := make([]layout.Constraint, len(node.Constraints))
	for i, text := range node.Constraints {
		c, err := layout.ParseConstraint(text)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		constraints[i] = c
	}
	if len(node.Labels) > len(constraints) {
		return nil, fmt.Errorf("%d labels for %d constraints", len(node.Labels), len(constraints))
	}

	tree := NewTree(dir, flex, node.Spacing, node.Margin, constraints, node.Labels)
	for key, child := range node.Children {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(constraints) {
			return nil, fmt.Errorf("children.%s: not an element index (0-%d)", key, len(constraints)-1)
		}
		sub, err := buildTree(child)
		if err != nil {
			return nil, fmt.Errorf("children.%s: %w", key, err)
		}
		if tree.Children == nil {
			tree.Children = make(map[int]*Tree)
		}
		tree.Children[idx] = sub
	}
	return tree, nil
}

// Names returns the layout names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.trees))
	for name := range c.trees {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the named layout tree.
func (c *Config) Get(name string) (*Tree, bool) {
	t, ok := c.trees[name]
	return t, ok
}

// Label returns the label of element i, or its index when unlabeled.
func (t *Tree) Label(i int) string {
	if i < len(t.Labels) && t.Labels[i] != "" {
		return t.Labels[i]
	}
	return strconv.Itoa(i)
}

// WithCache returns a copy of the tree whose layouts all use c.
func (t *Tree) WithCache(c *layout.Cache) *Tree {
	out := &Tree{
		Layout:  t.Layout.WithCache(c),
		Flex:    t.Flex,
		Spacing: t.Spacing,
		Labels:  t.Labels,
	}
	if t.Children != nil {
		out.Children = make(map[int]*Tree, len(t.Children))
		for i, child := range t.Children {
			out.Children[i] = child.WithCache(c)
		}
	}
	return out
}

// Resolve splits area through the whole tree and returns every element in
// depth-first order. Nested labels are joined with '/'.
func (t *Tree) Resolve(area layout.Rect) []Region {
	var out []Region
	t.resolve(area, "", 0, &out)
	return out
}

func (t *Tree) resolve(area layout.Rect, prefix string, depth int, out *[]Region) {
	for i, rect := range t.Layout.Split(area) {
		label := t.Label(i)
		if prefix != "" {
			label = prefix + "/" + label
		}
		child := t.Children[i]
		*out = append(*out, Region{Label: label, Rect: rect, Depth: depth, Leaf: child == nil})
		if child != nil {
			child.resolve(rect, label, depth+1, out)
		}
	}
}

// Count returns the number of elements in the tree, nested ones included.
func (t *Tree) Count() int {
	n := t.Layout.Len()
	for _, child := range t.Children {
		n += child.Count()
	}
	return n
}
