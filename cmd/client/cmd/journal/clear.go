package journal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every journal entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		n, err := app.Journal().Clear()
		if err != nil {
			return fmt.Errorf("failed to clear journal: %w", err)
		}

		fmt.Printf("Removed %d journal entries.\n", n)
		return nil
	},
}
