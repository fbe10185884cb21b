package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"huntboard/internal/cli"
	"huntboard/internal/config"
	"huntboard/internal/extract"
	applicationservice "huntboard/internal/services/application"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a job application",
		Long: `Add a job application to the board.

New applications land at the bottom of their column, wishlist by default.

Examples:
  # Minimal application (human-readable output)
  huntboard add --company "Initech" --role "Backend Engineer"

  # Straight into a later pipeline stage
  huntboard add --company "Initech" --role "Backend Engineer" --status applied

  # Fill fields from a job posting using a local Ollama model
  huntboard add --from-url https://initech.example/careers/42

  # JSON output for agents
  huntboard add --company "Initech" --role "SRE" --json

  # Quiet mode for bash capture
  APP_ID=$(huntboard add --company "Initech" --role "SRE" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("company", "", "Company name (required unless --from-url is given)")
	cmd.Flags().String("role", "", "Role title (required unless --from-url is given)")
	cmd.Flags().String("url", "", "Job posting URL")
	cmd.Flags().String("location", "", "Job location")
	cmd.Flags().String("salary", "", "Salary or salary range")
	cmd.Flags().String("notes", "", "Notes (use - for stdin)")
	cmd.Flags().String("status", "wishlist", "Pipeline stage: wishlist, applied, interview, offer, accepted, rejected")
	cmd.Flags().String("from-url", "", "Fetch the posting and extract fields with a local LLM")
	cmd.Flags().String("model", "", "Ollama model for --from-url (default from config)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	company, _ := cmd.Flags().GetString("company")
	role, _ := cmd.Flags().GetString("role")
	url, _ := cmd.Flags().GetString("url")
	location, _ := cmd.Flags().GetString("location")
	salary, _ := cmd.Flags().GetString("salary")
	notes, _ := cmd.Flags().GetString("notes")
	statusInput, _ := cmd.Flags().GetString("status")
	fromURL, _ := cmd.Flags().GetString("from-url")
	model, _ := cmd.Flags().GetString("model")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Fill fields from the posting first so explicit flags win over
	// extracted values
	if fromURL != "" {
		posting, err := extractPosting(ctx, fromURL, model)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("EXTRACT_ERROR", err.Error(),
				"Check that Ollama is running, or pass the fields explicitly"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitError)
		}
		if company == "" {
			company = posting.Company
		}
		if role == "" {
			role = posting.Role
		}
		if location == "" {
			location = posting.Location
		}
		if salary == "" {
			salary = posting.Salary
		}
		if url == "" {
			url = fromURL
		}
	}

	if company == "" || role == "" {
		if fmtErr := formatter.Error("MISSING_FIELDS",
			"both --company and --role are required (or use --from-url)"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	status, err := cli.ParseStatusFlag(statusInput)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS", err.Error(),
			cli.StatusSuggestion()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Handle notes from stdin
	if notes == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return err
		}
		notes = string(data)
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

	app, err := cliInstance.App.ApplicationService.CreateApplication(ctx, applicationservice.CreateApplicationRequest{
		Company:  company,
		Role:     role,
		URL:      url,
		Location: location,
		Salary:   salary,
		Notes:    notes,
		Status:   status,
	})
	if err != nil {
		if fmtErr := formatter.Error("CREATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output based on mode (JSON/Quiet/Human)
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

	fmt.Printf("✓ Application '%s - %s' added (ID: %d)\n", app.Company, app.Role, app.ID)
	fmt.Printf("  Status: %s\n", app.Status.Display())
	if app.Location != "" {
		fmt.Printf("  Location: %s\n", app.Location)
	}
	if app.Salary != "" {
		fmt.Printf("  Salary: %s\n", app.Salary)
	}

	return nil
}

// extractPosting fetches a job posting and pulls structured fields out of it
func extractPosting(ctx context.Context, url, model string) (*extract.Posting, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if model == "" {
		model = cfg.Ollama.Model
	}

	extractor := extract.NewOllamaExtractor(cfg.Ollama.Host, model)
	return extract.FromURL(ctx, extractor, url)
}
