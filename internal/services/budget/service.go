package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/store"
)

// Service defines all budget-related business operations
type Service interface {
	Get(ctx context.Context, id string) (models.Budget, error)
	List(ctx context.Context) ([]models.Budget, error)
	Subscribe(ctx context.Context, fn func([]models.Budget)) (func(), error)
	Stats(ctx context.Context) (Stats, error)

	Create(ctx context.Context, req CreateBudgetRequest) (models.Budget, error)
	Update(ctx context.Context, req UpdateBudgetRequest) (models.Budget, error)
	Delete(ctx context.Context, id string) error
}

// CreateBudgetRequest encapsulates data for creating a budget
type CreateBudgetRequest struct {
	Name        string
	Branch      string
	TotalBudget float64
	DailyBudget float64
	Spent       float64
	Status      string // defaults to Planning
	StartDate   string // defaults to today
	EndDate     string
}

// UpdateBudgetRequest encapsulates data for updating a budget
type UpdateBudgetRequest struct {
	ID          string
	Name        *string
	Branch      *string
	TotalBudget *float64
	DailyBudget *float64
	Spent       *float64
	Status      *string
	StartDate   *string
	EndDate     *string
}

// Stats aggregates every budget. Daily only counts Live budgets.
type Stats struct {
	Count         int                `json:"count"`
	Total         float64            `json:"total"`
	Spent         float64            `json:"spent"`
	Remaining     float64            `json:"remaining"`
	Daily         float64            `json:"daily"`
	SpentByBranch map[string]float64 `json:"spentByBranch"`
}

// LiveStatus marks a budget that is currently spending
const LiveStatus = "Live"

type service struct {
	budgets *store.Collection[models.Budget]
	logger  *slog.Logger
}

// NewService creates a new budget service
func NewService(s store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		budgets: store.NewCollection[models.Budget](s, models.CollectionBudgets),
		logger:  logger,
	}
}

func (s *service) Get(ctx context.Context, id string) (models.Budget, error) {
	if strings.TrimSpace(id) == "" {
		return models.Budget{}, ErrInvalidBudgetID
	}
	b, err := s.budgets.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Budget{}, fmt.Errorf("%w: %s", ErrBudgetNotFound, id)
	}
	if err != nil {
		return models.Budget{}, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]models.Budget, error) {
	budgets, err := s.budgets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *service) Subscribe(ctx context.Context, fn func([]models.Budget)) (func(), error) {
	return s.budgets.Subscribe(ctx, fn)
}

// Stats sums every budget
func (s *service) Stats(ctx context.Context) (Stats, error) {
	budgets, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Summarise(budgets), nil
}

// Summarise aggregates budgets without touching the store.
func Summarise(budgets []models.Budget) Stats {
	st := Stats{Count: len(budgets), SpentByBranch: map[string]float64{}}
	for _, b := range budgets {
		st.Total += b.TotalBudget
		st.Spent += b.Spent
		if b.Status == LiveStatus {
			st.Daily += b.DailyBudget
		}
		branch := b.Branch
		if branch == "" {
			branch = "Unassigned"
		}
		st.SpentByBranch[branch] += b.Spent
	}
	st.Remaining = st.Total - st.Spent
	return st
}

func (s *service) Create(ctx context.Context, req CreateBudgetRequest) (models.Budget, error) {
	b := models.Budget{
		Name:        strings.TrimSpace(req.Name),
		Branch:      req.Branch,
		TotalBudget: req.TotalBudget,
		DailyBudget: req.DailyBudget,
		Spent:       req.Spent,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if b.Status == "" {
		b.Status = models.DefaultBudgetStatus
	}
	if b.StartDate == "" {
		b.StartDate = models.Today()
	}
	if err := validate(b); err != nil {
		return models.Budget{}, err
	}

	id, err := s.budgets.Save(ctx, b)
	if err != nil {
		return models.Budget{}, fmt.Errorf("failed to create budget: %w", err)
	}
	b.ID = id
	s.logger.Info("budget created", "id", id, "name", b.Name, "total", b.TotalBudget)
	return b, nil
}

func (s *service) Update(ctx context.Context, req UpdateBudgetRequest) (models.Budget, error) {
	b, err := s.Get(ctx, req.ID)
	if err != nil {
		return models.Budget{}, err
	}

	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Branch != nil {
		b.Branch = *req.Branch
	}
	if req.TotalBudget != nil {
		b.TotalBudget = *req.TotalBudget
	}
	if req.DailyBudget != nil {
		b.DailyBudget = *req.DailyBudget
	}
	if req.Spent != nil {
		b.Spent = *req.Spent
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.StartDate != nil {
		b.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		b.EndDate = *req.EndDate
	}
	if err := validate(b); err != nil {
		return models.Budget{}, err
	}

	if _, err := s.budgets.Save(ctx, b); err != nil {
		return models.Budget{}, fmt.Errorf("failed to update budget: %w", err)
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidBudgetID
	}
	err := s.budgets.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrBudgetNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

func validate(b models.Budget) error {
	if b.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(b.Name) > models.MaxBudgetNameLength {
		return ErrNameTooLong
	}
	if !models.Contains(models.Branches, b.Branch) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidBranch, b.Branch, strings.Join(models.Branches, ", "))
	}
	if b.TotalBudget < 0 || b.DailyBudget < 0 || b.Spent < 0 {
		return ErrNegativeAmount
	}
	for _, d := range []string{b.StartDate, b.EndDate} {
		if d != "" && !models.ValidDate(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	if b.EndDate != "" && b.EndDate < b.StartDate {
		return ErrEndBeforeStart
	}
	return nil
}
