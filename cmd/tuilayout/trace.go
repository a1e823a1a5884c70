package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/internal/config"
	"github.com/grindlemire/go-tui-layout/internal/layout"
)

func (c *cli) traceCommand() *cobra.Command {
	var f layoutFlags

	cmd := &cobra.Command{
		Use:   "trace [constraints...]",
		Short: "Print every step the solver takes",
		Long: `Solve a layout with a step recorder attached and print each growth step:
the phase, the segment index (separators included), its size before and after,
and the shared step size in 1/32 cell units. Only the root layout is traced.`,
		Example: `  tuilayout trace -w 15 min:3 fill:2
  tuilayout trace -w 20 -s 2 --flex center max:4 max:4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := f.tree(args)
			if err != nil {
				return err
			}
			if len(tree.Children) > 0 {
				c.logger.Info("tracing the root layout only", "nested", len(tree.Children))
			}

			var steps layout.StepLog
			traced := tree.Layout.WithRecorder(layout.MultiRecorder(&steps, layout.LogRecorder(c.logger)))
			rects := traced.Split(f.area())

			out := cmd.OutOrStdout()
			writeSteps(out, steps.Steps())
			fmt.Fprintln(out)
			regions := make([]config.Region, len(rects))
			for i, r := range rects {
				regions[i] = config.Region{Label: tree.Label(i), Rect: r, Leaf: true}
			}
			writeRegions(out, regions)
			return nil
		},
	}

	f.register(cmd, true)
	return cmd
}
