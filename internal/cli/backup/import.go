package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"huntboard/internal/backup"
	"huntboard/internal/cli"
)

// ImportCmd returns the import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import applications from a JSON snapshot",
		Long: `Import applications from a snapshot written by 'huntboard export'.

Records land at the bottom of their columns in snapshot order. Records that
match an existing application on company, role, and URL are skipped, so
importing a snapshot twice is safe. Pass - to read from stdin.

Examples:
  huntboard import board.json
  cat board.json | huntboard import -
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Report the result in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress the result message")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var reader io.Reader
	if args[0] == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			if fmtErr := formatter.Error("FILE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitError)
		}
		defer func() {
			if err := file.Close(); err != nil {
				slog.Error("Error closing snapshot file", "error", err)
			}
		}()
		reader = file
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

	stats, err := backup.Import(ctx, cliInstance.App.Repo(), reader)
	if err != nil {
		if errors.Is(err, backup.ErrInvalidSnapshot) || errors.Is(err, backup.ErrUnsupportedVersion) {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_SNAPSHOT", err.Error(),
				"Snapshots come from 'huntboard export'"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitDataErr)
		}
		if fmtErr := formatter.Error("IMPORT_ERROR", err.Error()); fmtErr != nil {
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
			"success":  true,
			"imported": stats.Imported,
			"skipped":  stats.Skipped,
		})
	}

	if stats.Skipped > 0 {
		fmt.Printf("✓ Imported %d applications (%d duplicates skipped)\n", stats.Imported, stats.Skipped)
	} else {
		fmt.Printf("✓ Imported %d applications\n", stats.Imported)
	}
	return nil
}
