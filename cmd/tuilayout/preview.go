package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/internal/debug"
	"github.com/grindlemire/go-tui-layout/internal/layout"
	"github.com/grindlemire/go-tui-layout/internal/preview"
)

func (c *cli) previewCommand() *cobra.Command {
	var (
		f         layoutFlags
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "preview [constraints...]",
		Short: "Draw a layout on the terminal and follow resizes",
		Long: `Draw every element of a layout as a bordered box filling the terminal.

Keys: f cycles the flex mode, + and - change the spacing, b cycles border
styles, q or Esc quits. Set TUI_DEBUG=<path> to log frames to a file.`,
		Example: `  tuilayout preview len:3 fill:1 len:1 -d vertical
  tuilayout preview -f layouts.toml -l dashboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := f.tree(args)
			if err != nil {
				return err
			}
			layout.InitCache(cacheSize)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize terminal: %w", err)
			}
			defer screen.Fini()

			if debug.Enabled() {
				c.logger.Debug("debug log enabled", "env", debug.EnvVar)
			}
			v := preview.New(tree,
				preview.WithCache(layout.DefaultCache()),
				preview.WithLogger(debug.Logger()),
			)
			return v.Run(cmd.Context(), screen)
		},
	}

	f.register(cmd, false)
	cmd.Flags().IntVar(&cacheSize, "cache-size", layout.DefaultCacheSize, "layout cache capacity")
	return cmd
}
