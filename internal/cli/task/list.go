package task

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by column, campaign or priority.

Examples:
  adflow task list
  adflow task list --status="to do" --priority=high
  adflow task list --campaign=7f3c --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only tasks in this column")
	cmd.Flags().String("campaign", "", "Only tasks linked to this campaign ID")
	cmd.Flags().String("priority", "", "Only tasks with this priority")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	statusFlag, _ := cmd.Flags().GetString("status")
	campaignID, _ := cmd.Flags().GetString("campaign")
	priorityFlag, _ := cmd.Flags().GetString("priority")

	var priority string
	if priorityFlag != "" {
		var err error
		if priority, err = cli.ParsePriority(priorityFlag); err != nil {
			return formatter.Fail(err, "")
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.TaskService
	var status string
	if statusFlag != "" {
		if status, err = cli.ResolveStatus(service.Columns(), statusFlag); err != nil {
			return formatter.Fail(err, "")
		}
	}

	tasks, err := service.List(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if campaignID != "" && t.CampaignID != campaignID {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		filtered = append(filtered, t)
	}

	return cli.SuccessList(formatter, filtered, func(w io.Writer) {
		printTasks(w, filtered)
	})
}
