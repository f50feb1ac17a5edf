// Package main starts the portfolio site or exports it as static files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	portfoliocmd "github.com/paul-wang1/portfolio/internal/cmd/portfolio"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Flags are parsed by the internal command packages so env defaults apply
// before flag overrides.
var serveCmd = &cobra.Command{
	Use:                "serve [flags]",
	Short:              "Serve the portfolio over HTTP",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfoliocmd.ParseConfig(flag.NewFlagSet("serve", flag.ContinueOnError), args)
		if err != nil {
			return flagError(err)
		}
		return portfoliocmd.Run(cmd.Context(), cfg)
	},
}

var exportCmd = &cobra.Command{
	Use:                "export [flags]",
	Short:              "Render the portfolio into a directory of static files",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfoliocmd.ParseExportConfig(flag.NewFlagSet("export", flag.ContinueOnError), args)
		if err != nil {
			return flagError(err)
		}
		return portfoliocmd.Export(cmd.Context(), cfg)
	},
}

// flagError treats a help request as success; usage is already printed.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return fmt.Errorf("parse flags: %w", err)
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
