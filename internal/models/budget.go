package models

// Budget is a spend allocation for a branch
type Budget struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Branch      string  `json:"branch"`
	TotalBudget float64 `json:"totalBudget"`
	DailyBudget float64 `json:"dailyBudget"`
	Spent       float64 `json:"spent"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
}

// Remaining returns the unspent part of the budget.
func (b Budget) Remaining() float64 {
	return b.TotalBudget - b.Spent
}

// Utilisation returns spent/total in [0,1], or 0 for an empty budget.
func (b Budget) Utilisation() float64 {
	if b.TotalBudget <= 0 {
		return 0
	}
	return b.Spent / b.TotalBudget
}

// GetID returns the store ID of the budget
func (b Budget) GetID() string { return b.ID }
