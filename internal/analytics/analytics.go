// Package analytics computes the dashboard and campaign performance figures.
package analytics

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/thenoetrevino/adflow/internal/models"
)

// RecentLimit caps the recent-campaign and upcoming-task lists
const RecentLimit = 5

// Totals sums reported performance across campaigns
type Totals struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
}

// Row is one campaign's performance with derived ratios
type Row struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	CPC     float64 `json:"cpc"`
	ROAS    float64 `json:"roas"`
}

// Dashboard is the overview screen
type Dashboard struct {
	ActiveCampaigns     int               `json:"activeCampaigns"`
	TasksToDo           int               `json:"tasksToDo"`
	TotalAllocated      float64           `json:"totalAllocated"`
	CreativesInProgress int               `json:"creativesInProgress"`
	RecentCampaigns     []models.Campaign `json:"recentCampaigns"`
	UpcomingTasks       []models.Task     `json:"upcomingTasks"`
}

// ComputeTotals sums spend, revenue, clicks and conversions.
func ComputeTotals(campaigns []models.Campaign) Totals {
	var t Totals
	for _, c := range campaigns {
		t.Spend += c.Performance.Spend
		t.Revenue += c.Performance.Revenue
		t.Clicks += c.Performance.Clicks
		t.Conversions += c.Performance.Conversions
	}
	return t
}

// Rows returns per-campaign CPC (spend/clicks) and ROAS (revenue/spend),
// rounded to two decimals. A zero divisor gives 0.
func Rows(campaigns []models.Campaign) []Row {
	rows := make([]Row, 0, len(campaigns))
	for _, c := range campaigns {
		p := c.Performance
		row := Row{ID: c.ID, Name: c.Name, Spend: p.Spend, Revenue: p.Revenue}
		if p.Clicks > 0 {
			row.CPC = round2(p.Spend / float64(p.Clicks))
		}
		if p.Spend > 0 {
			row.ROAS = round2(p.Revenue / p.Spend)
		}
		rows = append(rows, row)
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Overview builds the dashboard from the three collections.
func Overview(campaigns []models.Campaign, tasks []models.Task, budgets []models.Budget) Dashboard {
	d := Dashboard{
		RecentCampaigns: []models.Campaign{},
		UpcomingTasks:   []models.Task{},
	}
	for _, c := range campaigns {
		switch c.Status {
		case models.CampaignLive:
			d.ActiveCampaigns++
		case models.CampaignPlanning, models.CampaignInProgress:
			d.CreativesInProgress++
		}
		if len(d.RecentCampaigns) < RecentLimit {
			d.RecentCampaigns = append(d.RecentCampaigns, c)
		}
	}
	for _, t := range tasks {
		if t.Status == models.TaskToDo {
			d.TasksToDo++
		}
		if t.Status != models.TaskDone && len(d.UpcomingTasks) < RecentLimit {
			d.UpcomingTasks = append(d.UpcomingTasks, t)
		}
	}
	for _, b := range budgets {
		d.TotalAllocated += b.TotalBudget
	}
	return d
}

var printer = message.NewPrinter(language.English)

// Currency formats a rand amount, e.g. "R 12,345.50".
func Currency(amount float64) string {
	return printer.Sprintf("R %.2f", amount)
}

// Lister is any source of a full collection
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Snapshot is one consistent read of every collection the dashboard uses
type Snapshot struct {
	Campaigns []models.Campaign
	Tasks     []models.Task
	Budgets   []models.Budget
}

// Load reads campaigns, tasks and budgets concurrently.
func Load(ctx context.Context, campaigns Lister[models.Campaign], tasks Lister[models.Task], budgets Lister[models.Budget]) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Campaigns, err = campaigns.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Tasks, err = tasks.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Budgets, err = budgets.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
