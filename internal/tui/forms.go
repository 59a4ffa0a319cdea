package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/models"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/tui/components"
	"github.com/thenoetrevino/adflow/internal/tui/huhforms"
	"github.com/thenoetrevino/adflow/internal/tui/state"
)

// opTimeout bounds a single form submission
const opTimeout = 10 * time.Second

// formState is an open huh form and what to do when it is confirmed.
type formState struct {
	title   string
	form    *huh.Form
	confirm *bool
	box     lipgloss.Style
	submit  func(ctx context.Context) opResultMsg
}

// openForm shows f and switches to mode.
func (m Model) openForm(mode state.Mode, fs *formState) (Model, tea.Cmd) {
	fs.form = fs.form.WithTheme(huhforms.CreateTheme(m.cfg.ColorScheme)).
		WithWidth(m.formWidth())
	m.form = fs
	m.UiState.SetMode(mode)
	return m, fs.form.Init()
}

func (m Model) formWidth() int {
	return max(min(m.UiState.Width()-10, 72), 30)
}

// run executes a submission off the UI goroutine.
func (m Model) run(submit func(ctx context.Context) opResultMsg) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		return submit(ctx)
	}
}

func result(message string, err error) opResultMsg {
	if err != nil {
		return opResultMsg{Err: err}
	}
	return opResultMsg{Message: message}
}

// ============================================================================
// CREATE / EDIT
// ============================================================================

func (m Model) openCreateForm() (Model, tea.Cmd) {
	switch m.UiState.Tab() {
	case state.TabCampaigns:
		return m.campaignForm(nil)
	case state.TabTasks:
		return m.taskForm(nil)
	case state.TabBudgets:
		return m.budgetForm(nil)
	case state.TabNotes:
		return m.noteForm(nil)
	}
	return m, nil
}

func (m Model) openEditForm() (Model, tea.Cmd) {
	switch m.UiState.Tab() {
	case state.TabCampaigns:
		if c, ok := m.campaigns.current(); ok {
			return m.campaignForm(&c)
		}
	case state.TabTasks:
		if t, ok := m.tasks.current(); ok {
			return m.taskForm(&t)
		}
	case state.TabBudgets:
		if b, ok := m.currentBudget(); ok {
			return m.budgetForm(&b)
		}
	case state.TabNotes:
		if n, ok := m.currentNote(); ok {
			return m.noteForm(&n)
		}
	}
	return m, nil
}

func (m Model) campaignForm(existing *models.Campaign) (Model, tea.Cmd) {
	values := &huhforms.CampaignValues{StartDate: models.Today()}
	title, box := "New campaign", components.CreateBoxStyle
	if existing != nil {
		values = huhforms.CampaignValuesFrom(*existing)
		title, box = "Edit campaign", components.EditBoxStyle
	}

	svc := m.app.CampaignService
	submit := func(ctx context.Context) opResultMsg {
		target, err := huhforms.ParseAmount(values.TargetValue)
		if err != nil {
			return result("", err)
		}
		if existing == nil {
			_, err = svc.Create(ctx, campaignservice.CreateCampaignRequest{
				Name:        strings.TrimSpace(values.Name),
				Branch:      values.Branch,
				Objective:   values.Objective,
				StartDate:   strings.TrimSpace(values.StartDate),
				EndDate:     strings.TrimSpace(values.EndDate),
				PrimaryText: strings.TrimSpace(values.PrimaryText),
				Headlines:   values.HeadlineList(),
				TargetValue: target,
				BudgetID:    values.BudgetID,
			})
			return result("Campaign created!", err)
		}

		headlines := values.HeadlineList()
		_, err = svc.Update(ctx, campaignservice.UpdateCampaignRequest{
			ID:          existing.ID,
			Name:        ptr(strings.TrimSpace(values.Name)),
			Branch:      &values.Branch,
			Objective:   &values.Objective,
			StartDate:   ptr(strings.TrimSpace(values.StartDate)),
			EndDate:     ptr(strings.TrimSpace(values.EndDate)),
			PrimaryText: ptr(strings.TrimSpace(values.PrimaryText)),
			Headlines:   &headlines,
			TargetValue: &target,
			BudgetID:    &values.BudgetID,
		})
		return result("Campaign updated!", err)
	}

	return m.openForm(state.FormMode, &formState{
		title:   title,
		form:    huhforms.CreateCampaignForm(values, m.data.budgets),
		confirm: &values.Confirm,
		box:     box,
		submit:  submit,
	})
}

func (m Model) taskForm(existing *models.Task) (Model, tea.Cmd) {
	values := &huhforms.TaskValues{}
	title, box := "New task", components.CreateBoxStyle
	if existing != nil {
		values = huhforms.TaskValuesFrom(*existing)
		title, box = "Edit task", components.EditBoxStyle
	}

	svc := m.app.TaskService
	submit := func(ctx context.Context) opResultMsg {
		text := strings.TrimSpace(values.Text)
		if existing == nil {
			_, err := svc.Create(ctx, taskservice.CreateTaskRequest{
				Text:       text,
				CampaignID: values.CampaignID,
				Priority:   values.Priority,
			})
			return result("Task created!", err)
		}
		_, err := svc.Update(ctx, taskservice.UpdateTaskRequest{
			ID:         existing.ID,
			Text:       &text,
			CampaignID: &values.CampaignID,
			Priority:   &values.Priority,
		})
		return result("Task updated!", err)
	}

	return m.openForm(state.FormMode, &formState{
		title:   title,
		form:    huhforms.CreateTaskForm(values, m.data.campaigns),
		confirm: &values.Confirm,
		box:     box,
		submit:  submit,
	})
}

func (m Model) budgetForm(existing *models.Budget) (Model, tea.Cmd) {
	values := &huhforms.BudgetValues{}
	title, box := "New budget", components.CreateBoxStyle
	if existing != nil {
		values = huhforms.BudgetValuesFrom(*existing)
		title, box = "Edit budget", components.EditBoxStyle
	}

	svc := m.app.BudgetService
	submit := func(ctx context.Context) opResultMsg {
		var amounts [3]float64
		for i, raw := range []string{values.TotalBudget, values.DailyBudget, values.Spent} {
			v, err := huhforms.ParseAmount(raw)
			if err != nil {
				return result("", fmt.Errorf("invalid amount %q", raw))
			}
			amounts[i] = v
		}
		name := strings.TrimSpace(values.Name)

		if existing == nil {
			_, err := svc.Create(ctx, budgetservice.CreateBudgetRequest{
				Name:        name,
				Branch:      values.Branch,
				TotalBudget: amounts[0],
				DailyBudget: amounts[1],
				Spent:       amounts[2],
				Status:      values.Status,
				StartDate:   strings.TrimSpace(values.StartDate),
				EndDate:     strings.TrimSpace(values.EndDate),
			})
			return result("Budget created!", err)
		}
		_, err := svc.Update(ctx, budgetservice.UpdateBudgetRequest{
			ID:          existing.ID,
			Name:        &name,
			Branch:      &values.Branch,
			TotalBudget: &amounts[0],
			DailyBudget: &amounts[1],
			Spent:       &amounts[2],
			Status:      &values.Status,
			StartDate:   ptr(strings.TrimSpace(values.StartDate)),
			EndDate:     ptr(strings.TrimSpace(values.EndDate)),
		})
		return result("Budget updated!", err)
	}

	return m.openForm(state.FormMode, &formState{
		title:   title,
		form:    huhforms.CreateBudgetForm(values),
		confirm: &values.Confirm,
		box:     box,
		submit:  submit,
	})
}

func (m Model) noteForm(existing *models.Note) (Model, tea.Cmd) {
	values := &huhforms.NoteValues{}
	title, box := "New note", components.CreateBoxStyle
	if existing != nil {
		values = huhforms.NoteValuesFrom(*existing)
		title, box = "Edit note", components.EditBoxStyle
	}

	svc := m.app.NoteService
	submit := func(ctx context.Context) opResultMsg {
		noteTitle := strings.TrimSpace(values.Title)
		tags := values.TagList()
		if existing == nil {
			_, err := svc.Create(ctx, noteservice.CreateNoteRequest{
				Title:   noteTitle,
				Content: values.Content,
				Tags:    tags,
			})
			return result("Note created!", err)
		}
		_, err := svc.Update(ctx, noteservice.UpdateNoteRequest{
			ID:      existing.ID,
			Title:   &noteTitle,
			Content: &values.Content,
			Tags:    &tags,
		})
		return result("Note updated!", err)
	}

	return m.openForm(state.FormMode, &formState{
		title:   title,
		form:    huhforms.CreateNoteForm(values, m.UiState.Height()/3),
		confirm: &values.Confirm,
		box:     box,
		submit:  submit,
	})
}

// ============================================================================
// DELETE
// ============================================================================

func (m Model) openDeleteForm() (Model, tea.Cmd) {
	var (
		kind, name string
		remove     func(ctx context.Context) error
	)

	switch m.UiState.Tab() {
	case state.TabCampaigns:
		c, ok := m.campaigns.current()
		if !ok {
			return m, nil
		}
		kind, name = "campaign", c.Name
		remove = func(ctx context.Context) error { return m.app.CampaignService.Delete(ctx, c.ID) }
	case state.TabTasks:
		t, ok := m.tasks.current()
		if !ok {
			return m, nil
		}
		kind, name = "task", t.Text
		remove = func(ctx context.Context) error { return m.app.TaskService.Delete(ctx, t.ID) }
	case state.TabBudgets:
		b, ok := m.currentBudget()
		if !ok {
			return m, nil
		}
		kind, name = "budget", b.Name
		remove = func(ctx context.Context) error { return m.app.BudgetService.Delete(ctx, b.ID) }
	case state.TabNotes:
		n, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		kind, name = "note", n.Title
		remove = func(ctx context.Context) error { return m.app.NoteService.Delete(ctx, n.ID) }
	default:
		return m, nil
	}

	confirm := false
	return m.openForm(state.DeleteConfirmMode, &formState{
		title:   "Delete " + kind,
		form:    huhforms.CreateDeleteForm(kind, components.Truncate(name, 40), &confirm),
		confirm: &confirm,
		box:     components.DeleteBoxStyle,
		submit: func(ctx context.Context) opResultMsg {
			return result(strings.ToUpper(kind[:1])+kind[1:]+" deleted.", remove(ctx))
		},
	})
}

// ============================================================================
// UPDATE
// ============================================================================

// updateForm routes every message to the open form. ctrl+s (by default)
// confirms and submits at once.
func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	fs := m.form
	if fs == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if k, ok := msg.(tea.KeyPressMsg); ok && key.Matches(k, m.keys.SaveForm) {
		*fs.confirm = true
		fs.form.State = huh.StateCompleted
	} else {
		model, cmd := fs.form.Update(msg)
		if f, ok := model.(*huh.Form); ok {
			fs.form = f
		}
		if fs.form.State == huh.StateNormal {
			return m, cmd
		}
	}

	m.form = nil
	m.UiState.SetMode(state.NormalMode)

	if fs.form.State == huh.StateCompleted && *fs.confirm {
		return m, m.run(fs.submit)
	}
	return m, nil
}

// handleResult turns a finished submission into a toast.
func (m Model) handleResult(msg opResultMsg) Model {
	if msg.Err != nil {
		m.logger.Error("operation failed", "error", msg.Err)
		m.NotificationState.Add(state.LevelError, errorText(msg.Err))
		return m
	}
	if msg.Message != "" {
		m.NotificationState.Add(state.LevelInfo, msg.Message)
	}
	return m
}

// errorText is the toast text for a failed submission.
func errorText(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "The store did not respond in time."
	}
	return err.Error()
}

func ptr[T any](v T) *T { return &v }
