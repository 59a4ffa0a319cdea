package tui

import (
	"fmt"

	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/tui/components"
	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

func campaignCard(c models.Campaign) components.Card {
	done, total := c.Checklist.Done()
	return components.Card{
		Title: c.Name,
		Tag:   fmt.Sprintf("%d/%d", done, total),
		TagFg: checklistColor(done, total),
		Meta:  c.Branch + " · " + c.Objective,
	}
}

func taskCard(t models.Task) components.Card {
	campaign := t.Campaign
	if campaign == "" {
		campaign = models.UnassignedCampaign
	}
	return components.Card{
		Title: t.Text,
		Tag:   t.Priority,
		TagFg: theme.Priority(t.Priority),
		Meta:  campaign,
	}
}

func checklistColor(done, total int) string {
	switch {
	case done == total:
		return theme.Low
	case done == 0:
		return theme.High
	default:
		return theme.Medium
	}
}

func pluralise(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
