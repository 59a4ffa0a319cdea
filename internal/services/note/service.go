package note

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/store"
)

// Service defines all note-related business operations
type Service interface {
	Get(ctx context.Context, id string) (models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Subscribe(ctx context.Context, fn func([]models.Note)) (func(), error)

	Create(ctx context.Context, req CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, req UpdateNoteRequest) (models.Note, error)
	Delete(ctx context.Context, id string) error

	// RenderMarkdown renders a note for the terminal.
	RenderMarkdown(ctx context.Context, id string, width int) (string, error)
	// RenderHTML renders a note as a standalone HTML fragment.
	RenderHTML(ctx context.Context, id string) (string, error)
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	Title   string
	Content string
	Tags    []string
}

// UpdateNoteRequest encapsulates data for updating a note
type UpdateNoteRequest struct {
	ID      string
	Title   *string
	Content *string
	Tags    *[]string
}

type service struct {
	notes  *store.Collection[models.Note]
	logger *slog.Logger
}

// NewService creates a new note service
func NewService(s store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		notes:  store.NewCollection[models.Note](s, models.CollectionNotes),
		logger: logger,
	}
}

func (s *service) Get(ctx context.Context, id string) (models.Note, error) {
	if strings.TrimSpace(id) == "" {
		return models.Note{}, ErrInvalidNoteID
	}
	n, err := s.notes.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

func (s *service) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *service) Subscribe(ctx context.Context, fn func([]models.Note)) (func(), error) {
	return s.notes.Subscribe(ctx, fn)
}

func (s *service) Create(ctx context.Context, req CreateNoteRequest) (models.Note, error) {
	n := models.Note{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Tags:      cleanTags(req.Tags),
		CreatedAt: time.Now().UTC(),
	}
	if err := validate(n); err != nil {
		return models.Note{}, err
	}

	id, err := s.notes.Save(ctx, n)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	n.ID = id
	return n, nil
}

func (s *service) Update(ctx context.Context, req UpdateNoteRequest) (models.Note, error) {
	n, err := s.Get(ctx, req.ID)
	if err != nil {
		return models.Note{}, err
	}
	if req.Title != nil {
		n.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Tags != nil {
		n.Tags = cleanTags(*req.Tags)
	}
	if err := validate(n); err != nil {
		return models.Note{}, err
	}

	if _, err := s.notes.Save(ctx, n); err != nil {
		return models.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidNoteID
	}
	err := s.notes.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *service) RenderMarkdown(ctx context.Context, id string, width int) (string, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(n.Content, width)
}

func (s *service) RenderHTML(ctx context.Context, id string) (string, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	body, err := RenderHTML(n.Content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<article>\n<h1>%s</h1>\n%s</article>\n", html.EscapeString(n.Title), body), nil
}

// cleanTags trims tags, drops empties and duplicates, and never returns nil
// so that clearing tags is written through.
func cleanTags(tags []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		out = append(out, tag)
	}
	return out
}

func validate(n models.Note) error {
	if n.Title == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}
