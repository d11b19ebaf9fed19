// cmd/client/cmd/configure.go
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the service API key",
	Long: `Prompts for the LabSync service API key and stores it in the
credentials file, readable only by the current user. The key is sent with
every request; ask the service operator for it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if app.IsConfigured() {
			fmt.Println("An API key is already stored; it will be replaced.")
		}

		fmt.Print("API key: ")
		key, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}

		trimmed := strings.TrimSpace(string(key))
		if trimmed == "" {
			return fmt.Errorf("API key must not be empty")
		}

		if err := app.SaveAPIKey(trimmed); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}
		color.Green("API key saved to %s", cfg.CredentialsPath)

		fmt.Println("Checking server connection...")
		if err := app.CheckConnection(cmd.Context()); err != nil {
			color.Yellow("Warning: server not reachable: %v", err)
			return nil
		}
		color.Green("Server connection OK")

		return nil
	},
}
