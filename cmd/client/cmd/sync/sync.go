package sync

import (
	"fmt"

	"labsync/cmd/client/cmd/types"
	"labsync/internal/app/client"

	"github.com/spf13/cobra"
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push samples and inspect sync state",
	Long: `Sample reconciliation between LIMS and ELN.

'sync push' sends a sample payload (or a batch of sample ids) through the
server; 'sync status' shows the per-system sync timestamps of one sample.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
