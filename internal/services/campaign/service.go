package campaign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/store"
)

// Service defines all campaign-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, id string) (models.Campaign, error)
	List(ctx context.Context) ([]models.Campaign, error)
	Subscribe(ctx context.Context, fn func([]models.Campaign)) (func(), error)
	Columns() kanban.Columns

	// Write operations
	Create(ctx context.Context, req CreateCampaignRequest) (models.Campaign, error)
	Update(ctx context.Context, req UpdateCampaignRequest) (models.Campaign, error)
	Delete(ctx context.Context, id string) error

	// Save persists a board move; it writes the status field only.
	Save(ctx context.Context, c models.Campaign) error
}

// CreateCampaignRequest encapsulates data for creating a campaign
type CreateCampaignRequest struct {
	Name        string
	Branch      string
	Objective   string
	StartDate   string
	EndDate     string
	PrimaryText string
	Headlines   []string
	Visuals     models.Visuals
	TargetValue float64
	BudgetID    string
	Status      string // defaults to the first board column
}

// UpdateCampaignRequest encapsulates data for updating a campaign.
// Nil fields are left unchanged.
type UpdateCampaignRequest struct {
	ID          string
	Name        *string
	Branch      *string
	Objective   *string
	StartDate   *string
	EndDate     *string
	PrimaryText *string
	Headlines   *[]string
	Visuals     models.Visuals // merged per format
	TargetValue *float64
	BudgetID    *string
	Status      *string
	Performance *models.Performance
}

// Option configures the service.
type Option func(*service)

// WithColumns sets the campaign board columns used to validate status.
func WithColumns(cols kanban.Columns) Option {
	return func(s *service) {
		s.columns = cols
	}
}

// service implements Service on top of the document store
type service struct {
	campaigns *store.Collection[models.Campaign]
	columns   kanban.Columns
	logger    *slog.Logger
}

// Compile-time verification that the service can persist board moves
var _ kanban.Saver[models.Campaign] = (Service)(nil)

// NewService creates a new campaign service
func NewService(s store.Store, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &service{
		campaigns: store.NewCollection[models.Campaign](s, models.CollectionCampaigns),
		columns:   kanban.MustColumns(models.DefaultCampaignColumns...),
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

// Get retrieves a specific campaign
func (s *service) Get(ctx context.Context, id string) (models.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return models.Campaign{}, ErrInvalidCampaignID
	}
	c, err := s.campaigns.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Campaign{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	if err != nil {
		return models.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// List retrieves all campaigns in creation order
func (s *service) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Subscribe streams the campaign list, first immediately and then on every change
func (s *service) Subscribe(ctx context.Context, fn func([]models.Campaign)) (func(), error) {
	return s.campaigns.Subscribe(ctx, fn)
}

// Create validates and stores a new campaign
func (s *service) Create(ctx context.Context, req CreateCampaignRequest) (models.Campaign, error) {
	c := models.Campaign{
		Name:        strings.TrimSpace(req.Name),
		Branch:      req.Branch,
		Objective:   req.Objective,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PrimaryText: req.PrimaryText,
		Headlines:   req.Headlines,
		Visuals:     req.Visuals,
		TargetValue: req.TargetValue,
		BudgetID:    req.BudgetID,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}
	if c.Status == "" {
		c.Status = s.columns.First()
	}
	if c.Headlines == nil {
		c.Headlines = []string{}
	}
	if c.Visuals == nil {
		c.Visuals = models.Visuals{}
	}

	if err := s.validate(c); err != nil {
		return models.Campaign{}, err
	}
	c.Checklist = c.DeriveChecklist()

	id, err := s.campaigns.Save(ctx, c)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	c.ID = id

	s.logger.Info("campaign created", "id", id, "name", c.Name)
	return c, nil
}

// Update applies the non-nil fields of req
func (s *service) Update(ctx context.Context, req UpdateCampaignRequest) (models.Campaign, error) {
	c, err := s.Get(ctx, req.ID)
	if err != nil {
		return models.Campaign{}, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Branch != nil {
		c.Branch = *req.Branch
	}
	if req.Objective != nil {
		c.Objective = *req.Objective
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = *req.EndDate
	}
	if req.PrimaryText != nil {
		c.PrimaryText = *req.PrimaryText
	}
	if req.Headlines != nil {
		c.Headlines = *req.Headlines
	}
	if len(req.Visuals) > 0 {
		if c.Visuals == nil {
			c.Visuals = models.Visuals{}
		}
		for format, url := range req.Visuals {
			c.Visuals[format] = url
		}
	}
	if req.TargetValue != nil {
		c.TargetValue = *req.TargetValue
	}
	if req.BudgetID != nil {
		c.BudgetID = *req.BudgetID
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Performance != nil {
		c.Performance = *req.Performance
	}

	if err := s.validate(c); err != nil {
		return models.Campaign{}, err
	}
	c.Checklist = c.DeriveChecklist()

	if _, err := s.campaigns.Save(ctx, c); err != nil {
		return models.Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return c, nil
}

// Delete removes a campaign. Tasks keep their denormalised campaign name.
func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidCampaignID
	}
	err := s.campaigns.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	s.logger.Info("campaign deleted", "id", id)
	return nil
}

// Save writes only the status, so a board move cannot clobber concurrent edits
func (s *service) Save(ctx context.Context, c models.Campaign) error {
	if c.ID == "" {
		return ErrInvalidCampaignID
	}
	if !s.columns.Contains(c.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	_, err := s.campaigns.Store().Save(ctx, s.campaigns.Name(), store.Document{
		"id":     c.ID,
		"status": c.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to save campaign status: %w", err)
	}
	return nil
}

func (s *service) validate(c models.Campaign) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if !models.Contains(models.Branches, c.Branch) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidBranch, c.Branch, strings.Join(models.Branches, ", "))
	}
	if !models.Contains(models.Objectives, c.Objective) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidObjective, c.Objective, strings.Join(models.Objectives, ", "))
	}
	if !s.columns.Contains(c.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	for _, d := range []string{c.StartDate, c.EndDate} {
		if d != "" && !models.ValidDate(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	// YYYY-MM-DD compares correctly as text
	if c.StartDate != "" && c.EndDate != "" && c.EndDate < c.StartDate {
		return ErrEndBeforeStart
	}
	if c.TargetValue < 0 {
		return ErrNegativeTarget
	}
	return nil
}
