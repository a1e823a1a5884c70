package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/internal/config"
	"github.com/grindlemire/go-tui-layout/internal/layout"
)

// layoutFlags are the flags shared by every command that builds a layout.
type layoutFlags struct {
	width, height int
	direction     string
	flex          string
	spacing       int
	margin        int
	labels        []string
	file          string
	name          string
}

func (f *layoutFlags) register(cmd *cobra.Command, withSize bool) {
	fs := cmd.Flags()
	if withSize {
		fs.IntVarP(&f.width, "width", "w", 80, "area width in cells")
		fs.IntVarP(&f.height, "height", "H", 24, "area height in cells")
	}
	fs.StringVarP(&f.direction, "direction", "d", "horizontal", "split direction: horizontal, vertical")
	fs.StringVar(&f.flex, "flex", "stretch", "flex mode: stretch, legacy, start, end, center, space-between, space-around")
	fs.IntVarP(&f.spacing, "spacing", "s", 0, "cells between elements (negative overlaps)")
	fs.IntVarP(&f.margin, "margin", "m", 0, "cells of margin on every side")
	fs.StringSliceVar(&f.labels, "labels", nil, "comma separated element labels")
	fs.StringVarP(&f.file, "file", "f", "", "TOML layout file (replaces constraint arguments)")
	fs.StringVarP(&f.name, "layout", "l", "", "layout name within --file")
}

// tree builds the layout tree from --file or from constraint arguments.
func (f *layoutFlags) tree(args []string) (*config.Tree, error) {
	if f.file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("constraint arguments cannot be combined with --file")
		}
		cfg, err := config.Load(f.file)
		if err != nil {
			return nil, err
		}
		return pickLayout(cfg, f.name)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no constraints given")
	}
	constraints, err := layout.ParseConstraints(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	dir, err := layout.ParseDirection(f.direction)
	if err != nil {
		return nil, err
	}
	flex, err := layout.ParseFlex(f.flex)
	if err != nil {
		return nil, err
	}
	if len(f.labels) > len(constraints) {
		return nil, fmt.Errorf("%d labels for %d constraints", len(f.labels), len(constraints))
	}
	return config.NewTree(dir, flex, f.spacing, f.margin, constraints, f.labels), nil
}

func (f *layoutFlags) area() layout.Rect {
	return layout.NewRect(0, 0, max(f.width, 0), max(f.height, 0))
}

func pickLayout(cfg *config.Config, name string) (*config.Tree, error) {
	names := cfg.Names()
	if name == "" {
		if len(names) != 1 {
			return nil, fmt.Errorf("--layout is required, file defines: %s", strings.Join(names, ", "))
		}
		name = names[0]
	}
	tree, ok := cfg.Get(name)
	if !ok {
		return nil, fmt.Errorf("layout %q not found, file defines: %s", name, strings.Join(names, ", "))
	}
	return tree, nil
}
