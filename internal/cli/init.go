package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/annex7/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise local configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, _ := cmd.Flags().GetString("account")
		dbPath, _ := cmd.Flags().GetString("database")
		if account == "" {
			return fmt.Errorf("--account is required")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg := &config.Config{
			Version:      "1",
			AccountID:    account,
			DatabasePath: dbPath,
		}
		if err := config.SaveConfig(cwd, cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Wrote .annex7/config.json for account %s\n", account)
		return nil
	},
}

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	initCmd.Flags().StringP("account", "a", "", "Default account ID")
	initCmd.Flags().StringP("database", "d", "", "Database file override")

	return initCmd
}
