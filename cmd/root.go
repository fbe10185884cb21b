package cmd

import (
	"github.com/spf13/cobra"

	"huntboard/internal/cli/application"
	"huntboard/internal/cli/backup"
	"huntboard/internal/cli/daemon"
	"huntboard/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "huntboard",
	Short: "huntboard - a job application board for the terminal",
	Long: `huntboard tracks job applications on a kanban-style board.

Run it bare to open the interactive board. The subcommands drive the same
data from scripts: add, list, show, update, move, delete, export, import.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(application.AddCmd())
	rootCmd.AddCommand(application.ListCmd())
	rootCmd.AddCommand(application.ShowCmd())
	rootCmd.AddCommand(application.UpdateCmd())
	rootCmd.AddCommand(application.DeleteCmd())
	rootCmd.AddCommand(application.MoveCmd())
	rootCmd.AddCommand(backup.ExportCmd())
	rootCmd.AddCommand(backup.ImportCmd())
	rootCmd.AddCommand(daemon.DaemonCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
