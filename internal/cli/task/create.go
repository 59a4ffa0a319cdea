package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <text>",
		Short: "Create a new task",
		Long: `Create a task, optionally linked to a campaign.

Examples:
  # Simple task (human-readable output)
  adflow task create "Brief the designer"

  # Linked to a campaign, high priority
  adflow task create "Approve copy" --campaign=7f3c --priority=high

  # Quiet mode for bash capture
  TASK_ID=$(adflow task create "Book shoot" --quiet)

  # Text from stdin
  echo "Upload story visuals" | adflow task create -
`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().String("campaign", "", "Campaign ID to link")
	cmd.Flags().String("priority", "medium", "Priority: high, medium, low")
	cmd.Flags().String("status", "", "Board column (defaults to the first column)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	campaignID, _ := cmd.Flags().GetString("campaign")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	statusFlag, _ := cmd.Flags().GetString("status")

	text, err := cli.ReadText(cmd, args[0])
	if err != nil {
		return formatter.Fail(err, "")
	}
	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		return formatter.Fail(err, "Valid priorities are: high, medium, low")
	}

	// Initialize CLI
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

	task, err := service.Create(ctx, taskservice.CreateTaskRequest{
		Text:       text,
		CampaignID: campaignID,
		Priority:   priority,
		Status:     status,
	})
	if err != nil {
		return formatter.Fail(err, "Use 'adflow campaign list' to find campaign IDs")
	}

	return formatter.Success(task, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Task created (ID: %s)\n", task.ID)
		fmt.Fprintf(w, "  Campaign: %s\n", campaignName(task.Campaign))
		fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
		fmt.Fprintf(w, "  Status: %s\n", task.Status)
	})
}
