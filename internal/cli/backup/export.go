// Package backup provides the export and import subcommands for moving
// board data through JSON snapshots.
package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"huntboard/internal/backup"
	"huntboard/internal/cli"
)

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the board to a JSON snapshot",
		Long: `Export every application to a versioned JSON snapshot, column by
column in board order. With no file argument the snapshot goes to stdout.

Examples:
  # To a file
  huntboard export board.json

  # To stdout, into other tools
  huntboard export | jq '.applications | length'
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Report the result in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress the result message")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	// No file argument means the snapshot itself goes to stdout, so the
	// stream stays clean for piping
	if len(args) == 0 {
		if _, err := backup.Export(ctx, cliInstance.App.Repo(), os.Stdout); err != nil {
			if fmtErr := formatter.Error("EXPORT_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return err
		}
		return nil
	}

	path := args[0]
	file, err := os.Create(path)
	if err != nil {
		if fmtErr := formatter.Error("FILE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	count, err := backup.Export(ctx, cliInstance.App.Repo(), file)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		if fmtErr := formatter.Error("EXPORT_ERROR", err.Error()); fmtErr != nil {
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
			"success": true,
			"count":   count,
			"path":    path,
		})
	}

	fmt.Printf("✓ Exported %d applications to %s\n", count, path)
	return nil
}
