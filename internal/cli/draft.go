// Package cli defines the cobra command tree. Commands stay thin: flag
// parsing and account resolution here, formatting in the CLI adapters,
// business logic in the services.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/annex7/internal/config"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/wire"
)

// resolveAccount resolves the acting account: --account flag first, then
// the configured default.
func resolveAccount(cmd *cobra.Command) (string, error) {
	account, _ := cmd.Flags().GetString("account")
	if account != "" {
		return account, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil && cfg.AccountID != "" {
			return cfg.AccountID, nil
		}
	}
	return "", fmt.Errorf("no account: pass --account or set account_id in config")
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage draft waste-export declarations",
	Long:  "Create, inspect and progress draft green-list waste export declarations",
}

var draftCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new draft declaration",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}
		reference, _ := cmd.Flags().GetString("reference")

		return wire.DraftAdapter().Create(cmd.Context(), account, reference)
	},
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List in-progress drafts",
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

		return wire.DraftAdapter().List(cmd.Context(), account, pageSize, pageToken)
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show [draft-id]",
	Short: "Show a draft's section statuses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.DraftAdapter().Show(cmd.Context(), account, args[0])
	},
}

var draftReferenceCmd = &cobra.Command{
	Use:   "reference [draft-id] [reference]",
	Short: "Set the customer reference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.DraftAdapter().SetReference(cmd.Context(), account, args[0], args[1])
	},
}

var draftConfirmCmd = &cobra.Command{
	Use:   "confirm [draft-id]",
	Short: "Confirm the declaration details are correct",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.DraftAdapter().Confirm(cmd.Context(), account, args[0])
	},
}

var draftDeclareCmd = &cobra.Command{
	Use:   "declare [draft-id]",
	Short: "Sign the declaration and submit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.DraftAdapter().Declare(cmd.Context(), account, args[0])
	},
}

var draftCancelCmd = &cobra.Command{
	Use:   "cancel [draft-id]",
	Short: "Cancel a draft declaration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}
		typeFlag, _ := cmd.Flags().GetString("type")
		reason, _ := cmd.Flags().GetString("reason")

		cancelType := models.CancellationType(typeFlag)
		switch cancelType {
		case models.CancelChangeOfRecovery, models.CancelNoLongerExporting, models.CancelOther:
		default:
			return fmt.Errorf("invalid cancellation type %q", typeFlag)
		}
		if cancelType == models.CancelOther && reason == "" {
			return fmt.Errorf("--reason is required when type is %s", models.CancelOther)
		}

		return wire.DraftAdapter().Cancel(cmd.Context(), account, args[0], cancelType, reason)
	},
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete [draft-id]",
	Short: "Delete a draft declaration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := resolveAccount(cmd)
		if err != nil {
			return err
		}

		return wire.DraftAdapter().Delete(cmd.Context(), account, args[0])
	},
}

// DraftCmd returns the draft command tree.
func DraftCmd() *cobra.Command {
	draftCmd.PersistentFlags().StringP("account", "a", "", "Acting account ID")
	draftCreateCmd.Flags().StringP("reference", "r", "", "Customer reference")
	draftListCmd.Flags().Int("page-size", 0, "Page size")
	draftListCmd.Flags().String("page-token", "", "Page token from a previous listing")
	draftCancelCmd.Flags().StringP("type", "t", "", "Cancellation type (ChangeOfRecoveryFacilityOrLaboratory, NoLongerExportingWaste, Other)")
	draftCancelCmd.Flags().String("reason", "", "Free-text reason (required for type Other)")

	draftCmd.AddCommand(draftCreateCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftReferenceCmd)
	draftCmd.AddCommand(draftConfirmCmd)
	draftCmd.AddCommand(draftDeclareCmd)
	draftCmd.AddCommand(draftCancelCmd)
	draftCmd.AddCommand(draftDeleteCmd)

	return draftCmd
}
