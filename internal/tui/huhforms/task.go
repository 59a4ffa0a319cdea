package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/adflow/internal/models"
)

// TaskValues backs the task form
type TaskValues struct {
	Text       string
	CampaignID string
	Priority   string
	Confirm    bool
}

// TaskValuesFrom prefills the form from an existing task
func TaskValuesFrom(t models.Task) *TaskValues {
	return &TaskValues{Text: t.Text, CampaignID: t.CampaignID, Priority: t.Priority}
}

// CreateTaskForm creates a huh form for adding/editing a task
func CreateTaskForm(v *TaskValues, campaigns []models.Campaign) *huh.Form {
	if v.Priority == "" {
		v.Priority = models.PriorityMedium
	}

	campaignOptions := []huh.Option[string]{huh.NewOption(models.UnassignedCampaign, "")}
	for _, c := range campaigns {
		campaignOptions = append(campaignOptions, huh.NewOption(c.Name, c.ID))
	}

	return newForm(
		huh.NewInput().Key("text").Title("Task").
			Placeholder("Brief the designer...").
			Validate(required("task")).
			Value(&v.Text),
		huh.NewSelect[string]().Key("campaign").Title("Campaign").
			Options(campaignOptions...).
			Value(&v.CampaignID),
		huh.NewSelect[string]().Key("priority").Title("Priority").
			Options(options(models.Priorities)...).
			Value(&v.Priority),
		huh.NewConfirm().Key("confirm").Title("Save this task?").
			Affirmative("Yes").Negative("No").
			Value(&v.Confirm),
	)
}
