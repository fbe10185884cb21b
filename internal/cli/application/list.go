package application

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"huntboard/internal/cli"
	"huntboard/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long: `List applications in board order, grouped by pipeline stage.

Examples:
  # Whole board
  huntboard list

  # One column
  huntboard list --status interview

  # IDs only, for scripting
  huntboard list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only list one pipeline stage")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	statusInput, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Which columns to show
	statuses := models.AllStatuses()
	if statusInput != "" {
		status, err := cli.ParseStatusFlag(statusInput)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS", err.Error(),
				cli.StatusSuggestion()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		statuses = []models.Status{status}
	}

	// Initialize CLI
	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	columns, err := cliInstance.App.ApplicationService.Board(ctx)
	if err != nil {
		if fmtErr := formatter.Error("FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output in appropriate format
	if quietMode {
		for _, status := range statuses {
			for _, app := range columns[status] {
				fmt.Printf("%d\n", app.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		apps := make([]map[string]interface{}, 0)
		for _, status := range statuses {
			for _, app := range columns[status] {
				apps = append(apps, applicationJSON(app))
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":      true,
			"applications": apps,
		})
	}

	total := 0
	for _, status := range statuses {
		total += len(columns[status])
	}
	if total == 0 {
		fmt.Println("No applications found")
		return nil
	}

	// Human-readable output, column by column in board order
	for _, status := range statuses {
		apps := columns[status]
		if len(apps) == 0 && statusInput == "" {
			continue
		}
		fmt.Printf("%s (%d)\n", status.Display(), len(apps))
		for _, app := range apps {
			line := fmt.Sprintf("  [%d] %s - %s", app.ID, app.Company, app.Role)
			if app.Location != "" {
				line += fmt.Sprintf(" (%s)", app.Location)
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	return nil
}
