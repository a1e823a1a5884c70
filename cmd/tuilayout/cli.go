package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "0.2.0"

const (
	logDebug = log.DebugLevel
	logInfo  = log.InfoLevel
)

// cli holds state shared by all commands.
type cli struct {
	logger *log.Logger
}

func newCLI(w io.Writer, level log.Level) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

func (c *cli) setLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tuilayout",
		Short: "Explore the terminal constraint layout solver",
		Long: `tuilayout splits terminal areas with the go-tui-layout constraint solver.

Constraints are written as kind:value pairs:

  len:10     exactly 10 cells          (also: 10)
  pct:25     25% of the axis           (also: 25%)
  ratio:1/3  a third of the axis       (also: 1/3)
  min:5      at least 5 cells, grows when nothing else fills
  max:8      at most 8 cells
  fill:2     twice the share of fill:1 in leftover space`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.splitCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.previewCommand())
	return root
}
