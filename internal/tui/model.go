// Package tui is the adflow terminal dashboard: a tabbed bubbletea program
// with two kanban boards, budget and note lists, forms and search.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/tui/components"
	"github.com/thenoetrevino/adflow/internal/tui/state"
)

const (
	noticeBuffer = 64
	updateBuffer = 256
)

// data is the latest pushed copy of every collection.
type data struct {
	campaigns []models.Campaign
	tasks     []models.Task
	budgets   []models.Budget
	notes     []models.Note

	budgetCursor int
	noteCursor   int
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	cfg    *config.Config
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	UiState           *state.UIState
	NotificationState *state.NotificationState
	SearchState       *state.SearchState
	ConnectionState   *state.ConnectionState

	campaigns *board[models.Campaign]
	tasks     *board[models.Task]
	data      *data

	form     *formState
	noteView *noteView

	notices chan kanban.Notice
	updates chan tea.Msg
}

// Options tunes a Model.
type Options struct {
	// Live marks the event daemon as connected in the status bar.
	Live bool
}

// New builds the model and subscribes to every collection. Subscriptions
// end when ctx is done.
func New(ctx context.Context, a *app.App, cfg *config.Config, opts Options) Model {
	if cfg == nil {
		cfg = a.Config()
	}
	components.InitStyles(cfg.ColorScheme)

	notices := make(chan kanban.Notice, noticeBuffer)
	notifier := channelNotifier{ch: notices}
	logger := a.Logger()

	campaignCtrl := kanban.NewController(
		kanban.NewEngine[models.Campaign](a.CampaignService.Columns()),
		a.CampaignService,
		notifier,
		kanban.WithNoun("Campaign"),
		kanban.WithLogger(logger),
	)
	taskCtrl := kanban.NewController(
		kanban.NewEngine[models.Task](a.TaskService.Columns()),
		a.TaskService,
		notifier,
		kanban.WithNoun("Task"),
		kanban.WithLogger(logger),
	)

	status := state.Disconnected
	if opts.Live {
		status = state.Connected
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		ctx:               ctx,
		app:               a,
		cfg:               cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              h,
		logger:            logger,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		SearchState:       state.NewSearchState(),
		ConnectionState:   state.NewConnectionState(status),
		campaigns:         newBoard(campaignCtrl, campaignCard, "No campaigns"),
		tasks:             newBoard(taskCtrl, taskCard, "No tasks"),
		data:              &data{},
		notices:           notices,
		updates:           make(chan tea.Msg, updateBuffer),
	}
	m.subscribe()
	return m
}

// subscribe bridges store pushes into tea messages. Each subscription
// pushes the current list immediately, which fills the model on start.
func (m Model) subscribe() {
	send := func(msg tea.Msg) {
		select {
		case m.updates <- msg:
		case <-m.ctx.Done():
		}
	}

	var errs []error
	_, err := m.app.CampaignService.Subscribe(m.ctx, func(cs []models.Campaign) { send(campaignsMsg(cs)) })
	errs = append(errs, err)
	_, err = m.app.TaskService.Subscribe(m.ctx, func(ts []models.Task) { send(tasksMsg(ts)) })
	errs = append(errs, err)
	_, err = m.app.BudgetService.Subscribe(m.ctx, func(bs []models.Budget) { send(budgetsMsg(bs)) })
	errs = append(errs, err)
	_, err = m.app.NoteService.Subscribe(m.ctx, func(ns []models.Note) { send(notesMsg(ns)) })
	errs = append(errs, err)

	for _, err := range errs {
		if err != nil {
			m.logger.Error("failed to subscribe", "error", err)
			m.NotificationState.Add(state.LevelError, "Could not load data: "+err.Error())
		}
	}
}

// Init starts the message pumps and the toast timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenUpdates(),
		m.listenNotices(),
		toastTick(m.NotificationState.TTL()/3),
	)
}

func (m Model) listenUpdates() tea.Cmd {
	return listen(m.ctx, m.updates, func(msg tea.Msg) tea.Msg { return msg })
}

func (m Model) listenNotices() tea.Cmd {
	return listen(m.ctx, m.notices, func(n kanban.Notice) tea.Msg { return noticeMsg(n) })
}

// Dashboard computes the overview from the pushed data.
func (m Model) Dashboard() analytics.Dashboard {
	return analytics.Overview(m.data.campaigns, m.data.tasks, m.data.budgets)
}

func (m Model) currentBudget() (models.Budget, bool) {
	if m.data.budgetCursor < 0 || m.data.budgetCursor >= len(m.data.budgets) {
		return models.Budget{}, false
	}
	return m.data.budgets[m.data.budgetCursor], true
}

func (m Model) currentNote() (models.Note, bool) {
	if m.data.noteCursor < 0 || m.data.noteCursor >= len(m.data.notes) {
		return models.Note{}, false
	}
	return m.data.notes[m.data.noteCursor], true
}

func (m Model) boardLayout() layout {
	return measure(components.TabBarHeight, m.UiState.ContentHeight())
}
