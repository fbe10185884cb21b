package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"huntboard/internal/cli"
	"huntboard/internal/config"
	"huntboard/internal/models"
	applicationservice "huntboard/internal/services/application"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show application details",
		Long:  "Display all details of an application including notes, posting URL, and metadata.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	// Flags
	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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
				"Usage: huntboard show <id> or huntboard show --id=<id>"); fmtErr != nil {
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
			"Usage: huntboard show <id> or huntboard show --id=<id>"); fmtErr != nil {
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

	// Output in appropriate format
	if quietMode {
		fmt.Printf("%d\n", app.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"application": applicationJSON(app),
		})
	}

	// Load config for color scheme
	cfg, err := config.Load()
	if err != nil {
		// Fallback to default colors if config fails to load
		cfg = &config.Config{
			ColorScheme: config.DefaultColorScheme(),
		}
	}

	return outputHuman(app, cfg.ColorScheme)
}

func outputHuman(app *models.Application, colors config.ColorScheme) error {
	var content strings.Builder

	// Define styles
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(80)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	statusStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	// Header
	header := titleStyle.Render(fmt.Sprintf("#%d: %s - %s", app.ID, app.Company, app.Role))
	content.WriteString(header)
	content.WriteString("\n\n")

	// Pipeline stage badge
	content.WriteString(statusStyle.Render(app.Status.Display()))
	content.WriteString("\n\n")

	// Posting details
	if app.URL != "" {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("URL:"),
			valueStyle.Render(app.URL),
		))
	}
	if app.Location != "" {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Location:"),
			valueStyle.Render(app.Location),
		))
	}
	if app.Salary != "" {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Salary:"),
			valueStyle.Render(app.Salary),
		))
	}

	// Timestamps
	if !app.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Created:"),
			subtitleStyle.Render(app.CreatedAt.Format("Jan 2, 2006 3:04 PM")),
		))
	}
	if !app.UpdatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Updated:"),
			subtitleStyle.Render(app.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
		))
	}

	// Notes
	if app.Notes != "" {
		content.WriteString(sectionStyle.Render("Notes"))
		content.WriteString("\n")
		// Indent each line
		for _, line := range strings.Split(app.Notes, "\n") {
			content.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	// Render the card
	fmt.Println(cardStyle.Render(content.String()))

	return nil
}
