// cmd/client/cmd/init.go
package cmd

import (
	"labsync/cmd/client/cmd/journal"
	"labsync/cmd/client/cmd/sync"
	"labsync/cmd/client/cmd/validate"
)

func init() {
	rootCmd.AddCommand(configureCmd)

	rootCmd.AddCommand(sync.SyncCmd)
	sync.SyncCmd.AddCommand(sync.PushCmd)
	sync.SyncCmd.AddCommand(sync.StatusCmd)

	rootCmd.AddCommand(validate.ValidateCmd)

	rootCmd.AddCommand(journal.JournalCmd)
	journal.JournalCmd.AddCommand(journal.ListCmd)
	journal.JournalCmd.AddCommand(journal.ClearCmd)
}
