package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <next|prev|column>",
		Short: "Move a task to another board column",
		Long: `Move a task by direction or column name.

Examples:
  # Move to next column
  adflow task move 91ab next

  # Move to previous column
  adflow task move 91ab prev

  # Move to specific column by name (case-insensitive)
  adflow task move 91ab done
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.TaskService
	task, err := service.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow task list' to see available tasks")
	}

	result, err := cli.MoveItem(ctx, task, service.Columns(), service, args[1], "Task", cliInstance.App.Logger())
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(result, func(w io.Writer) {
		if !result.Moved {
			fmt.Fprintln(w, result.Message)
			return
		}
		fmt.Fprintf(w, "✓ %s (%s → %s)\n", result.Message, result.From, result.To)
	})
}
