package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/annex7/internal/config"
	"github.com/example/annex7/internal/wire"
)

var submissionCmd = &cobra.Command{
	Use:   "submission",
	Short: "Inspect finalised declarations",
	Long:  "List and show submitted waste-export declarations. Submissions are read-only.",
}

var submissionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}
		pageSize, _ := cmd.Flags().GetInt("page-size")
		pageToken, _ := cmd.Flags().GetString("page-token")
		if pageSize <= 0 {
			pageSize = config.DefaultPageSize
		}

		return wire.SubmissionAdapter().List(cmd.Context(), account, pageSize, pageToken)
	},
}

var submissionShowCmd = &cobra.Command{
	Use:   "show [submission-id]",
	Short: "Show submission details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.SubmissionAdapter().Show(cmd.Context(), account, args[0])
	},
}

// SubmissionCmd returns the submission command tree.
func SubmissionCmd() *cobra.Command {
	submissionCmd.PersistentFlags().StringP("account", "a", "", "Acting account ID")
	submissionListCmd.Flags().Int("page-size", 0, "Page size")
	submissionListCmd.Flags().String("page-token", "", "Page token from a previous listing")

	submissionCmd.AddCommand(submissionListCmd)
	submissionCmd.AddCommand(submissionShowCmd)

	return submissionCmd
}
