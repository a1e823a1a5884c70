package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

func (c *cli) splitCommand() *cobra.Command {
	var (
		f       layoutFlags
		spacers bool
		draw    bool
	)

	cmd := &cobra.Command{
		Use:   "split [constraints...]",
		Short: "Print the rectangles a layout produces",
		Long: `Split an area with the given constraints and print the resulting rectangles.

With --file, the named layout from a TOML layout file is split instead, including
its nested children.`,
		Example: `  tuilayout split -w 80 len:10 fill:1 pct:25
  tuilayout split -d vertical -H 10 --flex space-between len:2 len:2 len:2
  tuilayout split --draw -w 40 -H 5 -s 1 fill:1 fill:2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := f.tree(args)
			if err != nil {
				return err
			}
			area := f.area()
			regions := tree.Resolve(area)
			c.logger.Debug("split", "layout", tree.Layout, "area", area, "regions", len(regions))

			out := cmd.OutOrStdout()
			if draw {
				writeGrid(out, area, regions)
				return nil
			}
			writeRegions(out, regions)
			if spacers {
				_, sp := tree.Layout.SplitWithSpacers(area)
				writeSpacers(out, sp)
			}

			stats := layout.DefaultCache().Stats()
			c.logger.Debug("layout cache", "entries", stats.Len, "hits", stats.Hits, "misses", stats.Misses)
			return nil
		},
	}

	f.register(cmd, true)
	cmd.Flags().BoolVar(&spacers, "spacers", false, "also print the spacer rectangles of the root layout")
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the layout as a character grid")
	return cmd
}
