package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/store"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, id string) (models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	Subscribe(ctx context.Context, fn func([]models.Task)) (func(), error)
	Columns() kanban.Columns

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (models.Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (models.Task, error)
	Delete(ctx context.Context, id string) error
	ImportJSON(ctx context.Context, r io.Reader) (int, error)

	// Save persists a board move; it writes the status field only.
	Save(ctx context.Context, t models.Task) error
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	Text       string
	CampaignID string // optional; the campaign name is copied onto the task
	Priority   string // defaults to Medium
	Status     string // defaults to the first board column
}

// UpdateTaskRequest encapsulates data for updating a task.
// Nil fields are left unchanged; an empty CampaignID unlinks the task.
type UpdateTaskRequest struct {
	ID         string
	Text       *string
	CampaignID *string
	Priority   *string
	Status     *string
}

// Option configures the service.
type Option func(*service)

// WithColumns sets the task board columns used to validate status.
func WithColumns(cols kanban.Columns) Option {
	return func(s *service) {
		s.columns = cols
	}
}

type service struct {
	tasks     *store.Collection[models.Task]
	campaigns *store.Collection[models.Campaign]
	columns   kanban.Columns
	logger    *slog.Logger
}

var _ kanban.Saver[models.Task] = (Service)(nil)

// NewService creates a new task service
func NewService(s store.Store, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &service{
		tasks:     store.NewCollection[models.Task](s, models.CollectionTasks),
		campaigns: store.NewCollection[models.Campaign](s, models.CollectionCampaigns),
		columns:   kanban.MustColumns(models.DefaultTaskColumns...),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Columns() kanban.Columns {
	return s.columns
}

func (s *service) Get(ctx context.Context, id string) (models.Task, error) {
	if strings.TrimSpace(id) == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	t, err := s.tasks.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (s *service) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *service) Subscribe(ctx context.Context, fn func([]models.Task)) (func(), error) {
	return s.tasks.Subscribe(ctx, fn)
}

// Create validates and stores a new task
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	t := models.Task{
		Text:      strings.TrimSpace(req.Text),
		Priority:  req.Priority,
		Status:    req.Status,
		CreatedAt: time.Now().UTC(),
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.Status == "" {
		t.Status = s.columns.First()
	}
	if err := s.validate(t); err != nil {
		return models.Task{}, err
	}
	if err := s.link(ctx, &t, req.CampaignID); err != nil {
		return models.Task{}, err
	}

	id, err := s.tasks.Save(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	t.ID = id
	return t, nil
}

// Update applies the non-nil fields of req
func (s *service) Update(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	t, err := s.Get(ctx, req.ID)
	if err != nil {
		return models.Task{}, err
	}

	if req.Text != nil {
		t.Text = strings.TrimSpace(*req.Text)
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if err := s.validate(t); err != nil {
		return models.Task{}, err
	}
	if req.CampaignID != nil {
		if err := s.link(ctx, &t, *req.CampaignID); err != nil {
			return models.Task{}, err
		}
	}

	if _, err := s.tasks.Save(ctx, t); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidTaskID
	}
	err := s.tasks.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Save writes only the status of t
func (s *service) Save(ctx context.Context, t models.Task) error {
	if t.ID == "" {
		return ErrInvalidTaskID
	}
	if !s.columns.Contains(t.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	_, err := s.tasks.Store().Save(ctx, s.tasks.Name(), store.Document{
		"id":     t.ID,
		"status": t.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to save task status: %w", err)
	}
	return nil
}

// importedTask is the accepted shape of one entry in an import file
type importedTask struct {
	Text       string `json:"text"`
	CampaignID string `json:"campaignId"`
	Campaign   string `json:"campaign"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
}

// ImportJSON creates one task per entry of a JSON array. Entries are all
// validated before anything is written. Entries may name their campaign
// instead of linking it by id.
func (s *service) ImportJSON(ctx context.Context, r io.Reader) (int, error) {
	var entries []importedTask
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	now := time.Now().UTC()
	tasks := make([]models.Task, 0, len(entries))
	for i, e := range entries {
		t := models.Task{
			Text:      strings.TrimSpace(e.Text),
			Campaign:  e.Campaign,
			Priority:  e.Priority,
			Status:    e.Status,
			CreatedAt: now,
		}
		if t.Priority == "" {
			t.Priority = models.PriorityMedium
		}
		if t.Status == "" {
			t.Status = s.columns.First()
		}
		if err := s.validate(t); err != nil {
			return 0, fmt.Errorf("task %d: %w", i+1, err)
		}
		if e.CampaignID != "" {
			if err := s.link(ctx, &t, e.CampaignID); err != nil {
				return 0, fmt.Errorf("task %d: %w", i+1, err)
			}
		}
		if t.Campaign == "" {
			t.Campaign = models.UnassignedCampaign
		}
		tasks = append(tasks, t)
	}

	for i, t := range tasks {
		if _, err := s.tasks.Save(ctx, t); err != nil {
			return i, fmt.Errorf("failed to import task %d: %w", i+1, err)
		}
	}
	s.logger.Info("tasks imported", "count", len(tasks))
	return len(tasks), nil
}

// link points t at a campaign and copies its name, or unlinks it.
func (s *service) link(ctx context.Context, t *models.Task, campaignID string) error {
	if campaignID == "" {
		t.CampaignID = ""
		t.Campaign = models.UnassignedCampaign
		return nil
	}
	c, err := s.campaigns.Get(ctx, campaignID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
	}
	if err != nil {
		return fmt.Errorf("failed to look up campaign: %w", err)
	}
	t.CampaignID = c.ID
	t.Campaign = c.Name
	return nil
}

func (s *service) validate(t models.Task) error {
	if t.Text == "" {
		return ErrEmptyText
	}
	if !models.Contains(models.Priorities, t.Priority) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidPriority, t.Priority, strings.Join(models.Priorities, ", "))
	}
	if !s.columns.Contains(t.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}
