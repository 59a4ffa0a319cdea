package models

import (
	"strings"
	"time"
)

// Campaign is a marketing campaign tracked on the campaign board
type Campaign struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Branch      string      `json:"branch"`
	Objective   string      `json:"objective"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	PrimaryText string      `json:"primaryText"`
	Headlines   []string    `json:"headlines"`
	Visuals     Visuals     `json:"visuals"`
	TargetValue float64     `json:"targetValue"`
	BudgetID    string      `json:"budgetId"`
	Status      string      `json:"status"`
	Checklist   Checklist   `json:"checklist"`
	Performance Performance `json:"performance"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Visuals holds a creative URL per ad format. Empty means not uploaded.
type Visuals map[string]string

// Any reports whether at least one format has a creative.
func (v Visuals) Any() bool {
	for _, url := range v {
		if strings.TrimSpace(url) != "" {
			return true
		}
	}
	return false
}

// Checklist tracks creative readiness of a campaign
type Checklist struct {
	PrimaryText bool `json:"primaryText"`
	Headlines   bool `json:"headlines"`
	Visuals     bool `json:"visuals"`
	Targeting   bool `json:"targeting"`
	Budget      bool `json:"budget"`
}

// Done returns how many checklist items are complete, and the total.
func (c Checklist) Done() (int, int) {
	done := 0
	for _, checked := range []bool{c.PrimaryText, c.Headlines, c.Visuals, c.Targeting, c.Budget} {
		if checked {
			done++
		}
	}
	return done, 5
}

// Performance holds reported ad metrics for a campaign
type Performance struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
}

// GetID implements kanban.Item
func (c Campaign) GetID() string { return c.ID }

// GetStatus implements kanban.Item
func (c Campaign) GetStatus() string { return c.Status }

// WithStatus implements kanban.Item
func (c Campaign) WithStatus(status string) Campaign {
	c.Status = status
	return c
}

// DeriveChecklist recomputes the checklist from the campaign's content.
func (c Campaign) DeriveChecklist() Checklist {
	hasHeadline := false
	for _, h := range c.Headlines {
		if strings.TrimSpace(h) != "" {
			hasHeadline = true
			break
		}
	}

	return Checklist{
		PrimaryText: strings.TrimSpace(c.PrimaryText) != "",
		Headlines:   hasHeadline,
		Visuals:     c.Visuals.Any(),
		Targeting:   c.TargetValue > 0,
		Budget:      c.BudgetID != "",
	}
}

// Progress returns checklist completion as a fraction in [0,1].
func (c Campaign) Progress() float64 {
	done, total := c.Checklist.Done()
	return float64(done) / float64(total)
}
