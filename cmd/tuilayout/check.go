package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/internal/config"
)

func (c *cli) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.toml>",
		Short: "Validate a TOML layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			names := cfg.Names()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s: %d layouts", args[0], len(names))))
			for _, name := range names {
				tree, _ := cfg.Get(name)
				fmt.Fprintf(out, "  %s %s\n", styleValue.Render(name),
					styleDim.Render(fmt.Sprintf("(%d elements) %s", tree.Count(), tree.Layout)))
			}
			c.logger.Debug("checked layout file", "path", args[0], "layouts", len(names))
			return nil
		},
	}
}
