// Package cmd holds the adflow command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/cli/backup"
	"github.com/thenoetrevino/adflow/internal/cli/budget"
	"github.com/thenoetrevino/adflow/internal/cli/campaign"
	"github.com/thenoetrevino/adflow/internal/cli/note"
	"github.com/thenoetrevino/adflow/internal/cli/report"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
	"github.com/thenoetrevino/adflow/internal/cli/task"
	"github.com/thenoetrevino/adflow/internal/launcher"
)

// NewRootCmd builds the adflow command tree. Without a subcommand it
// starts the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adflow",
		Short: "AdFlow - a terminal marketing hub",
		Long: `AdFlow tracks ad campaigns, their tasks, budgets and notes on kanban
boards. Run it without arguments for the TUI, or use the subcommands
from scripts: every command takes --json and --quiet.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ephemeral, _ := cmd.Flags().GetBool("ephemeral")
			cmd.SetContext(cli.WithOptions(cmd.Context(), cli.Options{Ephemeral: ephemeral}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ephemeral, _ := cmd.Flags().GetBool("ephemeral")
			if err := launcher.Launch(ephemeral); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styles.ErrorStyle.Render("Error"), err)
				return &cli.ExitError{Code: cli.ExitFailure, Err: err}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep data in memory only (nothing is saved)")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(campaign.CampaignCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(budget.BudgetCmd())
	rootCmd.AddCommand(note.NoteCmd())
	rootCmd.AddCommand(backup.BackupCmd())
	rootCmd.AddCommand(report.DashboardCmd())
	rootCmd.AddCommand(report.AnalyticsCmd())
	rootCmd.AddCommand(report.SearchCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		// already reported by the command
		return exitErr.Code
	}

	// Anything else comes from cobra itself: bad args, missing flags,
	// unknown commands.
	fmt.Fprintln(stderr, styles.ErrorStyle.Render("Error"), err)
	fmt.Fprintln(stderr, "Run 'adflow --help' for usage.")
	return cli.ExitUsage
}
