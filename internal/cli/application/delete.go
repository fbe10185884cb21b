package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"huntboard/internal/cli"
	applicationservice "huntboard/internal/services/application"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an application",
		Long:  "Delete an application by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse application ID from positional arg or flag
	var appID int
	if len(args) > 0 {
		id, err := cli.ParseApplicationID(args[0])
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_APPLICATION_ID",
				err.Error(),
				"Usage: huntboard delete <id> or huntboard delete --id=<id>"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitUsage)
		}
		appID = id
	} else {
		appID, _ = cmd.Flags().GetInt("id")
	}

	if appID <= 0 {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_APPLICATION_ID",
			"application ID must be a positive integer",
			"Usage: huntboard delete <id> or huntboard delete --id=<id>"); fmtErr != nil {
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

	// Get application details for confirmation
	app, err := cliInstance.App.ApplicationService.GetApplication(ctx, appID)
	if err != nil {
		if errors.Is(err, applicationservice.ErrApplicationNotFound) {
			if fmtErr := formatter.Error("APPLICATION_NOT_FOUND",
				fmt.Sprintf("application %d not found", appID)); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Printf("Delete application #%d: '%s - %s'? (y/N): ", appID, app.Company, app.Role)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			slog.Error("Error reading user input", "error", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	// Delete the application
	if err := cliInstance.App.ApplicationService.DeleteApplication(ctx, appID); err != nil {
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":        true,
			"application_id": appID,
		})
	}

	fmt.Printf("✓ Application %d deleted successfully\n", appID)
	return nil
}
