package journal

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listLimit int

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent push outcomes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		entries, err := app.Journal().List(listLimit)
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Journal is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tSAMPLE\tDIRECTION\tOUTCOME\tCHANGES\tMESSAGE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s->%s\t%s\t%d\t%s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.SampleID, e.Source, e.Target, e.Outcome, e.Changes, e.Message)
		}
		return w.Flush()
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "maximum entries to show")
}
