package sync

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var StatusCmd = &cobra.Command{
	Use:   "status <sample-id>",
	Short: "Show the sync state of a sample",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		status, err := app.SyncStatus(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get sync status: %w", err)
		}

		fmt.Printf("Sample:   %s\n", status.SampleID)
		fmt.Printf("Status:   %s\n", status.Status)
		fmt.Printf("LIMS:     %s\n", formatSynced(status.LIMSSynced))
		fmt.Printf("ELN:      %s\n", formatSynced(status.ELNSynced))
		fmt.Printf("Created:  %s\n", status.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:  %s\n", status.UpdatedAt.Local().Format("2006-01-02 15:04:05"))

		return nil
	},
}

func formatSynced(t *time.Time) string {
	if t == nil {
		return color.YellowString("never synced")
	}
	return color.GreenString("synced %s", t.Local().Format("2006-01-02 15:04:05"))
}
