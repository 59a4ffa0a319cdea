package huhforms

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/adflow/internal/models"
)

// CampaignValues backs the campaign form
type CampaignValues struct {
	Name        string
	Branch      string
	Objective   string
	StartDate   string
	EndDate     string
	PrimaryText string
	Headlines   string // one per line
	TargetValue string
	BudgetID    string
	Confirm     bool
}

// HeadlineList splits the headlines field into trimmed, non-empty lines
func (v CampaignValues) HeadlineList() []string {
	var out []string
	for _, line := range strings.Split(v.Headlines, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// CampaignValuesFrom prefills the form from an existing campaign
func CampaignValuesFrom(c models.Campaign) *CampaignValues {
	return &CampaignValues{
		Name:        c.Name,
		Branch:      c.Branch,
		Objective:   c.Objective,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		PrimaryText: c.PrimaryText,
		Headlines:   strings.Join(c.Headlines, "\n"),
		TargetValue: FormatAmount(c.TargetValue),
		BudgetID:    c.BudgetID,
	}
}

// CreateCampaignForm creates a huh form for adding/editing a campaign.
// budgets offers the budget link; the first option unlinks.
func CreateCampaignForm(v *CampaignValues, budgets []models.Budget) *huh.Form {
	if v.Branch == "" {
		v.Branch = models.Branches[0]
	}
	if v.Objective == "" {
		v.Objective = models.Objectives[0]
	}

	budgetOptions := []huh.Option[string]{huh.NewOption("No budget", "")}
	for _, b := range budgets {
		budgetOptions = append(budgetOptions, huh.NewOption(b.Name+" ("+b.Branch+")", b.ID))
	}

	return newForm(
		huh.NewInput().Key("name").Title("Name").
			Placeholder("Winter Sale").
			Validate(required("name")).
			Value(&v.Name),
		huh.NewSelect[string]().Key("branch").Title("Branch").
			Options(options(models.Branches)...).
			Value(&v.Branch),
		huh.NewSelect[string]().Key("objective").Title("Objective").
			Options(options(models.Objectives)...).
			Value(&v.Objective),
		huh.NewInput().Key("start").Title("Start date").
			Placeholder("YYYY-MM-DD").
			Validate(date(false)).
			Value(&v.StartDate),
		huh.NewInput().Key("end").Title("End date").
			Placeholder("YYYY-MM-DD (optional)").
			Validate(date(true)).
			Value(&v.EndDate),
		huh.NewText().Key("primary_text").Title("Primary text").
			CharLimit(2000).Lines(3).
			Value(&v.PrimaryText),
		huh.NewText().Key("headlines").Title("Headlines").
			Description("One per line").
			Lines(3).
			Value(&v.Headlines),
		huh.NewInput().Key("target").Title("Target value").
			Validate(amount).
			Value(&v.TargetValue),
		huh.NewSelect[string]().Key("budget").Title("Budget").
			Options(budgetOptions...).
			Value(&v.BudgetID),
		huh.NewConfirm().Key("confirm").Title("Save this campaign?").
			Affirmative("Yes").Negative("No").
			Value(&v.Confirm),
	)
}
