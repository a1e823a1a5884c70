// Package main provides tuilayout, a command-line tool for exploring the
// constraint layout solver.
//
// Usage:
//
//	tuilayout split [constraints...]    Print the rects a layout produces
//	tuilayout trace [constraints...]    Print every solver step
//	tuilayout check <file.toml>         Validate a layout file
//	tuilayout preview [constraints...]  Draw a layout on the terminal
//
// Examples:
//
//	tuilayout split -w 80 len:10 fill:1 pct:25
//	tuilayout split -d vertical -H 24 --flex center max:5 max:5
//	tuilayout trace -w 15 min:3 fill:2
//	tuilayout preview -f layouts.toml -l main
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := newCLI(os.Stderr, logInfo)
	root := c.rootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.setLogLevel(logDebug)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
