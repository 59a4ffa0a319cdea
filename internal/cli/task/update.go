package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update a task's text, campaign link or priority. Only given flags change.
Use "adflow task move" to change its column.

Examples:
  adflow task update 91ab --text="Approve final copy"
  adflow task update 91ab --campaign=7f3c --priority=low
  adflow task update 91ab --campaign=""   # unlink
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("text", "", "Task text (use - for stdin)")
	cmd.Flags().String("campaign", "", "Campaign ID to link; empty unlinks")
	cmd.Flags().String("priority", "", "Priority: high, medium, low")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	req := taskservice.UpdateTaskRequest{ID: args[0]}
	if flags.Changed("text") {
		v, _ := flags.GetString("text")
		text, err := cli.ReadText(cmd, v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Text = &text
	}
	if flags.Changed("campaign") {
		campaignID, _ := flags.GetString("campaign")
		req.CampaignID = &campaignID
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		priority, err := cli.ParsePriority(v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Priority = &priority
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := cliInstance.App.TaskService.Update(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(task, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Task %s updated\n", task.ID)
		fmt.Fprintf(w, "  Campaign: %s\n", campaignName(task.Campaign))
		fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
	})
}
