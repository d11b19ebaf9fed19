package journal

import (
	"fmt"

	"labsync/cmd/client/cmd/types"
	"labsync/internal/app/client"

	"github.com/spf13/cobra"
)

var JournalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the local push journal",
	Long: `The journal records every push this workstation sent: sample id,
direction, outcome and change count. It is local bookkeeping; the
authoritative audit trail lives on the server.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
