package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/annex7/internal/cli"
	"github.com/example/annex7/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "annex7",
		Short:   "annex7 - green-list waste export declarations",
		Version: version.String(),
		Long: `annex7 is a CLI tool for preparing and submitting green-list waste
export declarations: drafting section by section, validating tabular
uploads, and inspecting finalised submissions.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DraftCmd())
	rootCmd.AddCommand(cli.SubmissionCmd())
	rootCmd.AddCommand(cli.BatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
