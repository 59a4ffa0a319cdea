package task

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/adflow/internal/cli/styles"
	"github.com/thenoetrevino/adflow/internal/models"
)

func printTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	t := styles.Table("ID", "Task", "Campaign", "Priority", "Status")
	for _, task := range tasks {
		t.Row(task.ID, task.Text, campaignName(task.Campaign), styles.PriorityText(task.Priority), task.Status)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d task(s)\n", len(tasks))
}

func campaignName(name string) string {
	if name == "" {
		return models.UnassignedCampaign
	}
	return name
}
