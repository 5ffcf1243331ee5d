package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/annex7/internal/wire"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate tabular declaration uploads",
	Long:  "Validate a CSV upload of declarations. The whole file is accepted or rejected as one unit.",
}

var batchValidateCmd = &cobra.Command{
	Use:   "validate [file.csv]",
	Short: "Validate an upload file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open upload: %w", err)
		}
		defer f.Close()

		return wire.BatchAdapter().Validate(cmd.Context(), account, f)
	},
}

// BatchCmd returns the batch command tree.
func BatchCmd() *cobra.Command {
	batchCmd.PersistentFlags().StringP("account", "a", "", "Acting account ID")

	batchCmd.AddCommand(batchValidateCmd)

	return batchCmd
}
