package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

const dashboard = `
[layout.main]
direction = "vertical"
constraints = ["len:3", "fill:1", "len:1"]
labels = ["header", "body", "footer"]

[layout.main.children.1]
direction = "horizontal"
spacing = 1
constraints = ["pct:30", "fill:1"]
labels = ["sidebar", "content"]

[layout.bar]
flex = "space-between"
constraints = ["len:4", "len:4"]
`

func TestParse_Resolve(t *testing.T) {
	cfg, err := Parse(dashboard)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "main"}, cfg.Names())

	main, ok := cfg.Get("main")
	require.True(t, ok)
	assert.Equal(t, 5, main.Count())

	regions := main.WithCache(layout.NewCache(8)).Resolve(layout.NewRect(0, 0, 80, 24))
	want := []Region{
		{Label: "header", Rect: layout.NewRect(0, 0, 80, 3), Depth: 0, Leaf: true},
		{Label: "body", Rect: layout.NewRect(0, 3, 80, 20), Depth: 0, Leaf: false},
		{Label: "body/sidebar", Rect: layout.NewRect(0, 3, 24, 20), Depth: 1, Leaf: true},
		{Label: "body/content", Rect: layout.NewRect(25, 3, 55, 20), Depth: 1, Leaf: true},
		{Label: "footer", Rect: layout.NewRect(0, 23, 80, 1), Depth: 0, Leaf: true},
	}
	assert.Equal(t, want, regions)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(dashboard)
	require.NoError(t, err)

	bar, ok := cfg.Get("bar")
	require.True(t, ok)
	assert.Equal(t, layout.FlexSpaceBetween, bar.Flex)
	assert.Equal(t, "0", bar.Label(0))
	assert.Equal(t, "1", bar.Label(1))

	regions := bar.Resolve(layout.NewRect(0, 0, 20, 1))
	require.Len(t, regions, 2)
	assert.Equal(t, layout.NewRect(0, 0, 4, 1), regions[0].Rect)
	assert.Equal(t, layout.NewRect(16, 0, 4, 1), regions[1].Rect)

	_, ok = cfg.Get("missing")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		input  string
		target error
		msg    string
	}

	tests := map[string]tc{
		"unknown key": {
			input:  "[layout.a]\nconstraints = [\"fill\"]\ncolour = \"red\"\n",
			target: ErrUnknownKey,
		},
		"bad constraint": {
			input:  "[layout.a]\nconstraints = [\"fill\", \"grow:2\"]\n",
			target: layout.ErrInvalidConstraint,
			msg:    "constraint 1",
		},
		"no constraints": {
			input:  "[layout.a]\ndirection = \"v\"\n",
			target: layout.ErrInvalidConstraint,
		},
		"bad direction": {
			input:  "[layout.a]\ndirection = \"up\"\nconstraints = [\"fill\"]\n",
			target: layout.ErrInvalidConstraint,
		},
		"bad flex": {
			input:  "[layout.a]\nflex = \"wobble\"\nconstraints = [\"fill\"]\n",
			target: layout.ErrInvalidConstraint,
		},
		"too many labels": {
			input: "[layout.a]\nconstraints = [\"fill\"]\nlabels = [\"x\", \"y\"]\n",
			msg:   "2 labels for 1 constraints",
		},
		"child index out of range": {
			input: "[layout.a]\nconstraints = [\"fill\"]\n[layout.a.children.3]\nconstraints = [\"fill\"]\n",
			msg:   "children.3",
		},
		"child index not a number": {
			input: "[layout.a]\nconstraints = [\"fill\"]\n[layout.a.children.x]\nconstraints = [\"fill\"]\n",
			msg:   "children.x",
		},
		"invalid toml": {
			input: "[layout.a\n",
			msg:   "failed to decode layout",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layouts.toml")
	require.NoError(t, os.WriteFile(path, []byte(dashboard), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Names(), 2)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "failed to read layout file")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[layout.a]\nconstraints = [\"nope:1\"]\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, layout.ErrInvalidConstraint)
	assert.ErrorContains(t, err, bad)
}

func TestNewTree(t *testing.T) {
	tree := NewTree(layout.Horizontal, layout.FlexCenter, 1, 0,
		[]layout.Constraint{layout.Length(2), layout.Length(2)}, []string{"a"})

	assert.Equal(t, "a", tree.Label(0))
	assert.Equal(t, "1", tree.Label(1))
	assert.Equal(t, 2, tree.Count())

	regions := tree.WithCache(nil).Resolve(layout.NewRect(0, 0, 11, 1))
	require.Len(t, regions, 2)
	assert.Equal(t, 3, regions[0].Rect.X)
	assert.Equal(t, 6, regions[1].Rect.X)
}

func TestLoad_Examples(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "layouts.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "dialog", "panes", "toolbar"}, cfg.Names())

	dash, ok := cfg.Get("dashboard")
	require.True(t, ok)
	assert.Equal(t, 8, dash.Count())

	area := layout.NewRect(0, 0, 100, 30)
	for _, name := range cfg.Names() {
		tree, _ := cfg.Get(name)
		for _, r := range tree.Resolve(area) {
			assert.Equal(t, r.Rect, r.Rect.Intersect(area), "%s: %s escapes the area", name, r.Label)
		}
	}

	labels := make([]string, 0, 8)
	for _, r := range dash.Resolve(area) {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{
		"header", "body", "body/sidebar", "body/main", "body/main/editor",
		"body/main/terminal", "body/inspector", "status",
	}, labels)
}
