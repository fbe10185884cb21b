package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"huntboard/internal/cli"
	applicationservice "huntboard/internal/services/application"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an application",
		Long: `Update application fields. Only the flags you pass change; everything
else is left alone. Use 'huntboard move' to change the pipeline stage.

Examples:
  huntboard update --id 3 --salary "$150k-170k"
  huntboard update --id 3 --notes "Recruiter call went well" --location Remote
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Application ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional update flags
	cmd.Flags().String("company", "", "New company name")
	cmd.Flags().String("role", "", "New role title")
	cmd.Flags().String("url", "", "New posting URL")
	cmd.Flags().String("location", "", "New location")
	cmd.Flags().String("salary", "", "New salary")
	cmd.Flags().String("notes", "", "New notes")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	appID, _ := cmd.Flags().GetInt("id")
	company, _ := cmd.Flags().GetString("company")
	role, _ := cmd.Flags().GetString("role")
	url, _ := cmd.Flags().GetString("url")
	location, _ := cmd.Flags().GetString("location")
	salary, _ := cmd.Flags().GetString("salary")
	notes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// At least one update field must be provided
	req := applicationservice.UpdateApplicationRequest{ID: appID}
	changed := false
	if cmd.Flags().Lookup("company").Changed {
		req.Company = &company
		changed = true
	}
	if cmd.Flags().Lookup("role").Changed {
		req.Role = &role
		changed = true
	}
	if cmd.Flags().Lookup("url").Changed {
		req.URL = &url
		changed = true
	}
	if cmd.Flags().Lookup("location").Changed {
		req.Location = &location
		changed = true
	}
	if cmd.Flags().Lookup("salary").Changed {
		req.Salary = &salary
		changed = true
	}
	if cmd.Flags().Lookup("notes").Changed {
		req.Notes = &notes
		changed = true
	}

	if !changed {
		if fmtErr := formatter.Error("NO_UPDATES",
			"at least one of --company, --role, --url, --location, --salary, or --notes must be specified"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
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

	if err := cliInstance.App.ApplicationService.UpdateApplication(ctx, req); err != nil {
		if errors.Is(err, applicationservice.ErrApplicationNotFound) {
			if fmtErr := formatter.Error("APPLICATION_NOT_FOUND",
				fmt.Sprintf("application %d not found", appID)); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("UPDATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output success
	if quietMode {
		fmt.Printf("%d\n", appID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":        true,
			"application_id": appID,
		})
	}

	fmt.Printf("✓ Application %d updated successfully\n", appID)
	return nil
}
