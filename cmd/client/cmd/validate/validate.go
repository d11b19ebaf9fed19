package validate

import (
	"encoding/json"
	"fmt"
	"os"

	"labsync/cmd/client/cmd/types"
	"labsync/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	validateFile  string
	validateLevel string
	noAnomalies   bool
	noCompliance  bool
)

var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run server-side validation on a sample payload",
	Long: `Sends a sample payload from a JSON file through the server's tiered
validation pipeline, including the anomaly and compliance scorers unless
disabled.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		if validateFile == "" {
			return fmt.Errorf("--file is required")
		}

		raw, err := os.ReadFile(validateFile)
		if err != nil {
			return fmt.Errorf("failed to read payload file: %w", err)
		}

		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("payload file is not a JSON object: %w", err)
		}

		resp, err := app.Validate(cmd.Context(), client.ValidationRequest{
			SampleData:      data,
			ValidationLevel: validateLevel,
			CheckAnomalies:  !noAnomalies,
			CheckCompliance: !noCompliance,
		})
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		printReport(resp)
		return nil
	},
}

func printReport(r *client.ValidationResponse) {
	if r.Valid {
		color.Green("VALID (%s)", r.Level)
	} else {
		color.Red("INVALID (%s)", r.Level)
	}

	for _, issue := range r.Issues {
		line := issue.Message
		if issue.Field != "" {
			line = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
		}
		switch issue.Severity {
		case "error":
			color.Red("  [error]   %s", line)
		case "warning":
			color.Yellow("  [warning] %s", line)
		default:
			fmt.Printf("  [info]    %s\n", line)
		}
		if issue.Suggestion != "" {
			fmt.Printf("            hint: %s\n", issue.Suggestion)
		}
	}

	if r.AnomalyScore != nil {
		fmt.Printf("Anomaly score:    %.3f\n", *r.AnomalyScore)
	}
	if r.ComplianceScore != nil {
		fmt.Printf("Compliance score: %.3f\n", *r.ComplianceScore)
	}
	for _, rec := range r.Recommendations {
		fmt.Printf("Recommendation: %s\n", rec)
	}
}

func init() {
	ValidateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "JSON file with the sample payload")
	ValidateCmd.Flags().StringVar(&validateLevel, "level", "standard", "validation level (basic, standard or full)")
	ValidateCmd.Flags().BoolVar(&noAnomalies, "no-anomalies", false, "skip the anomaly scorer")
	ValidateCmd.Flags().BoolVar(&noCompliance, "no-compliance", false, "skip the compliance scorer")
}
