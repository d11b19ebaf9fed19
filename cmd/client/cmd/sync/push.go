package sync

import (
	"encoding/json"
	"fmt"
	"os"

	"labsync/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	pushFile   string
	pushIDs    []string
	pushSource string
	pushTarget string
	pushForce  bool
)

var PushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push a sample payload into the target system",
	Long: `Pushes one sample payload from a JSON file, or a batch of sample ids,
from the source system into the target system.

Examples:
  labsync-cli sync push --file sample.json --source lims --target eln
  labsync-cli sync push --ids LAB-001,LAB-002 --source lims --target eln --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if pushSource == pushTarget {
			return fmt.Errorf("source and target systems must be different")
		}
		if (pushFile == "") == (len(pushIDs) == 0) {
			return fmt.Errorf("provide exactly one of --file or --ids")
		}

		if len(pushIDs) > 0 {
			return pushBatch(cmd, app)
		}
		return pushSingle(cmd, app)
	},
}

func pushSingle(cmd *cobra.Command, app *client.App) error {
	raw, err := os.ReadFile(pushFile)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("payload file is not a JSON object: %w", err)
	}

	sampleID, _ := data["sample_id"].(string)

	resp, err := app.SyncSample(cmd.Context(), client.SyncRequest{
		SampleID:     sampleID,
		SourceSystem: pushSource,
		TargetSystem: pushTarget,
		Data:         data,
		ForceSync:    pushForce,
	})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printResult(*resp)
	return nil
}

func pushBatch(cmd *cobra.Command, app *client.App) error {
	resp, err := app.BatchSync(cmd.Context(), client.BatchSyncRequest{
		SampleIDs:    pushIDs,
		SourceSystem: pushSource,
		TargetSystem: pushTarget,
		ForceSync:    pushForce,
	})
	if err != nil {
		return fmt.Errorf("batch sync failed: %w", err)
	}

	fmt.Printf("Batch: %d total, %d successful, %d failed\n\n", resp.Total, resp.Successful, resp.Failed)
	for _, r := range resp.Results {
		printResult(r)
	}
	return nil
}

func printResult(r client.SyncResponse) {
	mark := color.GreenString("+")
	if !r.Success {
		mark = color.RedString("x")
	}

	fmt.Printf("%s %s  %s -> %s  [%s]  %s", mark, r.SampleID, r.SourceSystem, r.TargetSystem, r.Outcome, r.Message)
	if r.ChangesApplied > 0 {
		fmt.Printf(" (%d changes)", r.ChangesApplied)
	}
	fmt.Println()

	for _, w := range r.Warnings {
		color.Yellow("  warning: %s", w)
	}
}

func init() {
	PushCmd.Flags().StringVarP(&pushFile, "file", "f", "", "JSON file with the sample payload")
	PushCmd.Flags().StringSliceVar(&pushIDs, "ids", nil, "sample ids to sync as a batch")
	PushCmd.Flags().StringVar(&pushSource, "source", "lims", "source system (lims or eln)")
	PushCmd.Flags().StringVar(&pushTarget, "target", "eln", "target system (lims or eln)")
	PushCmd.Flags().BoolVar(&pushForce, "force", false, "sync even if the target already saw the sample")
}
