package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/adflow/internal/models"
)

// BudgetStatuses are the statuses a budget can be given in the form
var BudgetStatuses = []string{"Planning", "Live", "Paused", "Completed"}

// BudgetValues backs the budget form
type BudgetValues struct {
	Name        string
	Branch      string
	TotalBudget string
	DailyBudget string
	Spent       string
	Status      string
	StartDate   string
	EndDate     string
	Confirm     bool
}

// BudgetValuesFrom prefills the form from an existing budget
func BudgetValuesFrom(b models.Budget) *BudgetValues {
	return &BudgetValues{
		Name:        b.Name,
		Branch:      b.Branch,
		TotalBudget: FormatAmount(b.TotalBudget),
		DailyBudget: FormatAmount(b.DailyBudget),
		Spent:       FormatAmount(b.Spent),
		Status:      b.Status,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}

// CreateBudgetForm creates a huh form for adding/editing a budget
func CreateBudgetForm(v *BudgetValues) *huh.Form {
	if v.Branch == "" {
		v.Branch = models.Branches[0]
	}
	if v.Status == "" {
		v.Status = models.DefaultBudgetStatus
	}
	if v.StartDate == "" {
		v.StartDate = models.Today()
	}

	return newForm(
		huh.NewInput().Key("name").Title("Name").
			CharLimit(models.MaxBudgetNameLength).
			Validate(required("name")).
			Value(&v.Name),
		huh.NewSelect[string]().Key("branch").Title("Branch").
			Options(options(models.Branches)...).
			Value(&v.Branch),
		huh.NewInput().Key("total").Title("Total budget").
			Validate(amount).
			Value(&v.TotalBudget),
		huh.NewInput().Key("daily").Title("Daily budget").
			Validate(amount).
			Value(&v.DailyBudget),
		huh.NewInput().Key("spent").Title("Spent").
			Validate(amount).
			Value(&v.Spent),
		huh.NewSelect[string]().Key("status").Title("Status").
			Options(options(BudgetStatuses)...).
			Value(&v.Status),
		huh.NewInput().Key("start").Title("Start date").
			Validate(date(false)).
			Value(&v.StartDate),
		huh.NewInput().Key("end").Title("End date").
			Validate(date(true)).
			Value(&v.EndDate),
		huh.NewConfirm().Key("confirm").Title("Save this budget?").
			Affirmative("Yes").Negative("No").
			Value(&v.Confirm),
	)
}
