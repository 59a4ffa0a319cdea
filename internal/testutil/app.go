// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/logging"
	"github.com/thenoetrevino/adflow/internal/models"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

// NewTestApp returns an app on a fresh in-memory store with the default
// configuration. It is closed when the test ends.
func NewTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	opts = append([]app.Option{app.WithLogger(logging.Discard())}, opts...)
	a, err := app.New(store.NewMemoryStore(), config.Default(), opts...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestCampaign creates a National/Sales campaign in the first column
func CreateTestCampaign(t *testing.T, a *app.App, name string) models.Campaign {
	t.Helper()

	c, err := a.CampaignService.Create(context.Background(), campaignservice.CreateCampaignRequest{
		Name:      name,
		Branch:    "National",
		Objective: "Sales",
	})
	if err != nil {
		t.Fatalf("Failed to create test campaign: %v", err)
	}
	return c
}

// CreateTestTask creates a task, linked to campaignID when it is not empty
func CreateTestTask(t *testing.T, a *app.App, text, campaignID string) models.Task {
	t.Helper()

	task, err := a.TaskService.Create(context.Background(), taskservice.CreateTaskRequest{
		Text:       text,
		CampaignID: campaignID,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// CreateTestBudget creates a budget for branch with the given total
func CreateTestBudget(t *testing.T, a *app.App, name, branch string, total float64) models.Budget {
	t.Helper()

	b, err := a.BudgetService.Create(context.Background(), budgetservice.CreateBudgetRequest{
		Name:        name,
		Branch:      branch,
		TotalBudget: total,
	})
	if err != nil {
		t.Fatalf("Failed to create test budget: %v", err)
	}
	return b
}

// CreateTestNote creates a note
func CreateTestNote(t *testing.T, a *app.App, title, content string, tags ...string) models.Note {
	t.Helper()

	n, err := a.NoteService.Create(context.Background(), noteservice.CreateNoteRequest{
		Title:   title,
		Content: content,
		Tags:    tags,
	})
	if err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}
	return n
}
