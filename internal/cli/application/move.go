package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"huntboard/internal/board"
	"huntboard/internal/cli"
	"huntboard/internal/models"
	applicationservice "huntboard/internal/services/application"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> [stage]",
		Short: "Move an application to another pipeline stage or position",
		Long: `Move an application across the board.

The target is a pipeline stage name, "next"/"prev" to walk the pipeline,
or a position relative to another application via --before/--after.
Stage moves land at the end of the target column; sibling moves keep the
application in whatever column the sibling occupies.

Examples:
  # Move to a specific stage (lands at the bottom of that column)
  huntboard move 3 interview

  # Advance or retreat one stage
  huntboard move 3 next
  huntboard move 3 prev

  # Reorder relative to another application
  huntboard move 3 --before 7
  huntboard move 3 --after 7

  # JSON output for agents
  huntboard move 3 offer --json
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runMove,
	}

	cmd.Flags().Int("before", 0, "Place the application before this application ID")
	cmd.Flags().Int("after", 0, "Place the application after this application ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	beforeID, _ := cmd.Flags().GetInt("before")
	afterID, _ := cmd.Flags().GetInt("after")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	appID, err := cli.ParseApplicationID(args[0])
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_APPLICATION_ID",
			err.Error(),
			"Usage: huntboard move <id> <stage> or huntboard move <id> --before=<id>"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	// Exactly one way of naming the target
	stageArg := ""
	if len(args) > 1 {
		stageArg = args[1]
	}
	if beforeID > 0 && afterID > 0 {
		if fmtErr := formatter.Error("CONFLICTING_TARGETS",
			"--before and --after cannot be combined"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}
	if stageArg != "" && (beforeID > 0 || afterID > 0) {
		if fmtErr := formatter.Error("CONFLICTING_TARGETS",
			"give either a stage name or --before/--after, not both"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}
	if stageArg == "" && beforeID == 0 && afterID == 0 {
		if fmtErr := formatter.ErrorWithSuggestion("MISSING_TARGET",
			"no move target given",
			"Pass a stage name (or next/prev), or --before/--after with a sibling ID"); fmtErr != nil {
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

	svc := cliInstance.App.ApplicationService

	// Current stage, for next/prev and for the output
	app, err := svc.GetApplication(ctx, appID)
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
	fromStatus := app.Status

	var target board.Target
	switch {
	case beforeID > 0:
		target = board.CardTarget{ID: beforeID, Dir: board.DirectionBefore}
	case afterID > 0:
		target = board.CardTarget{ID: afterID, Dir: board.DirectionAfter}
	default:
		status, stageErr := resolveStage(stageArg, fromStatus)
		if stageErr != nil {
			if errors.Is(stageErr, errNoAdjacentStage) {
				if fmtErr := formatter.Error("NO_ADJACENT_STAGE",
					fmt.Sprintf("application is already in the %s stage (%s)",
						edgeName(stageArg), fromStatus.Display())); fmtErr != nil {
					slog.Error("Error formatting error message", "error", fmtErr)
				}
				os.Exit(cli.ExitValidation)
			}
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS",
				stageErr.Error(), cli.StatusSuggestion()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		target = board.ColumnTarget{Status: status}
	}

	placement, err := svc.MoveApplication(ctx, appID, target)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrTargetNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TARGET_NOT_FOUND", err.Error(),
				"Check the sibling ID with 'huntboard list'"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, board.ErrInvalidStatus):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS", err.Error(),
				cli.StatusSuggestion()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		case errors.Is(err, applicationservice.ErrApplicationNotFound):
			if fmtErr := formatter.Error("APPLICATION_NOT_FOUND",
				fmt.Sprintf("application %d not found", appID)); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		default:
			if fmtErr := formatter.Error("MOVE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return err
		}
	}

	// Output success
	if quietMode {
		fmt.Printf("%d\n", appID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":        true,
			"application_id": appID,
			"from_status":    string(fromStatus),
			"to_status":      string(placement.Status),
			"order_key":      placement.OrderKey,
		})
	}

	// Human-readable output
	switch {
	case placement.Status != fromStatus:
		fmt.Printf("Application %d moved to '%s'\n", appID, placement.Status.Display())
	case beforeID > 0 || afterID > 0:
		fmt.Printf("Application %d reordered in '%s'\n", appID, placement.Status.Display())
	default:
		fmt.Printf("Application %d is already in '%s'\n", appID, placement.Status.Display())
	}
	return nil
}

var errNoAdjacentStage = errors.New("no adjacent stage")

// resolveStage turns a stage argument into a concrete status. "next" and
// "prev" walk the pipeline relative to current.
func resolveStage(arg string, current models.Status) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "next":
		return adjacentStage(current, 1)
	case "prev", "previous":
		return adjacentStage(current, -1)
	default:
		return models.ParseStatus(arg)
	}
}

func adjacentStage(current models.Status, offset int) (models.Status, error) {
	all := models.AllStatuses()
	for i, s := range all {
		if s == current {
			next := i + offset
			if next < 0 || next >= len(all) {
				return "", errNoAdjacentStage
			}
			return all[next], nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownStatus, current)
}

// edgeName names the end of the pipeline a next/prev move ran into.
func edgeName(arg string) string {
	if strings.EqualFold(strings.TrimSpace(arg), "next") {
		return "last"
	}
	return "first"
}
