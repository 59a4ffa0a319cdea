package models

import "time"

// Task is a to-do item on the task board, optionally linked to a campaign
type Task struct {
	ID         string    `json:"id,omitempty"`
	Text       string    `json:"text"`
	CampaignID string    `json:"campaignId"`
	Campaign   string    `json:"campaign"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GetID implements kanban.Item
func (t Task) GetID() string { return t.ID }

// GetStatus implements kanban.Item
func (t Task) GetStatus() string { return t.Status }

// WithStatus implements kanban.Item
func (t Task) WithStatus(status string) Task {
	t.Status = status
	return t
}
