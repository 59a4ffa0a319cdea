package backup

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/services/budget"
	"github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

// csvRow maps normalised header names to cell values
type csvRow map[string]string

func (r csvRow) float(key string) (float64, error) {
	v := strings.TrimSpace(r[key])
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", key, v)
	}
	return f, nil
}

func (r csvRow) int(key string) (int, error) {
	f, err := r.float(key)
	return int(f), err
}

// normaliseHeader lower-cases a header and turns spaces into underscores,
// so "Campaign ID" and "campaign_id" are the same column.
func normaliseHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

// readCSV returns the normalised header and the non-blank rows. Short rows
// are allowed, so a row may lack keys the header has.
func readCSV(r io.Reader) ([]string, []csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = normaliseHeader(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", err)
		}
		row := csvRow{}
		empty := true
		for i, value := range record {
			if i < len(header) {
				row[header[i]] = value
				if strings.TrimSpace(value) != "" {
					empty = false
				}
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return header, rows, nil
}

func requireColumns(header []string, rows []csvRow, columns ...string) error {
	if len(rows) == 0 {
		return nil
	}
	for _, col := range columns {
		if !slices.Contains(header, col) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

// ImportCSV creates one document per CSV row. Tasks and budgets go through
// their services; analytics rows are stored as daily metric records. Rows
// before a failing row stay imported.
func (s *Service) ImportCSV(ctx context.Context, collection string, r io.Reader) (int, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return 0, err
	}

	var importRow func(context.Context, csvRow) error
	switch collection {
	case models.CollectionTasks:
		if err := requireColumns(header, rows, "text"); err != nil {
			return 0, err
		}
		importRow = s.importTask
	case models.CollectionBudgets:
		if err := requireColumns(header, rows, "name", "branch"); err != nil {
			return 0, err
		}
		importRow = s.importBudget
	case models.CollectionAnalytics:
		if err := requireColumns(header, rows, "campaign_id", "date"); err != nil {
			return 0, err
		}
		importRow = s.importAnalytics
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCollection, collection)
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := importRow(ctx, row); err != nil {
			// header is line 1
			return i, fmt.Errorf("line %d: %w", i+2, err)
		}
	}
	s.logger.Info("csv imported", "collection", collection, "rows", len(rows))
	return len(rows), nil
}

func (s *Service) importTask(ctx context.Context, row csvRow) error {
	_, err := s.tasks.Create(ctx, task.CreateTaskRequest{
		Text:       row["text"],
		CampaignID: strings.TrimSpace(row["campaign_id"]),
		Priority:   strings.TrimSpace(row["priority"]),
		Status:     strings.TrimSpace(row["status"]),
	})
	return err
}

func (s *Service) importBudget(ctx context.Context, row csvRow) error {
	req := budget.CreateBudgetRequest{
		Name:      row["name"],
		Branch:    strings.TrimSpace(row["branch"]),
		Status:    strings.TrimSpace(row["status"]),
		StartDate: strings.TrimSpace(row["start_date"]),
		EndDate:   strings.TrimSpace(row["end_date"]),
	}
	var err error
	if req.TotalBudget, err = row.float("total_budget"); err != nil {
		return err
	}
	if req.DailyBudget, err = row.float("daily_budget"); err != nil {
		return err
	}
	if req.Spent, err = row.float("spent"); err != nil {
		return err
	}
	_, err = s.budgets.Create(ctx, req)
	return err
}

func (s *Service) importAnalytics(ctx context.Context, row csvRow) error {
	date := strings.TrimSpace(row["date"])
	if !models.ValidDate(date) {
		return fmt.Errorf("column date: %q is not YYYY-MM-DD", date)
	}
	rec := models.AnalyticsRecord{
		CampaignID: strings.TrimSpace(row["campaign_id"]),
		Date:       date,
		FetchedAt:  time.Now().UTC(),
	}
	var err error
	if rec.Impressions, err = row.int("impressions"); err != nil {
		return err
	}
	if rec.Clicks, err = row.int("clicks"); err != nil {
		return err
	}
	if rec.Spend, err = row.float("spend"); err != nil {
		return err
	}

	doc, err := store.ToDocument(rec)
	if err != nil {
		return err
	}
	_, err = s.store.Save(ctx, models.CollectionAnalytics, doc)
	return err
}
