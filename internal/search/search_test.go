package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/models"
)

func fixtures() []Entry {
	return Index(
		[]models.Campaign{
			{ID: "c1", Name: "Winter Sale", Objective: "Sales"},
			{ID: "c2", Name: "Brand Refresh", Objective: "Brand Awareness"},
		},
		[]models.Task{
			{ID: "t1", Text: "Book photographer", Campaign: "Winter Sale"},
			{ID: "t2", Text: "Renew domain"},
		},
		[]models.Note{
			{ID: "n1", Title: "Shoot list", Content: "Models, props, and the location permits for Saturday", Tags: []string{"production"}},
		},
	)
}

func TestIndex(t *testing.T) {
	entries := fixtures()
	require.Len(t, entries, 5)

	assert.Equal(t, Entry{Kind: KindCampaign, ID: "c1", Title: "Winter Sale", Subtitle: "Sales"}, entries[0])
	assert.Equal(t, "In: Winter Sale", entries[2].Subtitle)
	assert.Equal(t, "In: Tasks", entries[3].Subtitle)
	assert.Equal(t, "Models, props, and the location…", entries[4].Subtitle)
}

func TestScore(t *testing.T) {
	assert.Zero(t, Score("sale", "Winter Sale"))
	assert.InDelta(t, 0.2, Score("wintr", "Winter Sale"), 0.0001)
	assert.Equal(t, 1.0, Score("zzzz", "ab"))
	assert.Equal(t, 1.0, Score("x", ""))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"winter", []string{"t1", "c1"}}, // ties sort by title
		{"phtographer", []string{"t1"}},
		{"production", []string{"n1"}},
		{"awareness", []string{"c2"}},
		{"   ", nil},
		{"qqqqqqqq", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []string
			for _, r := range Search(fixtures(), tt.query) {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearch_OrdersAndLimits(t *testing.T) {
	var tasks []models.Task
	for i := 0; i < 15; i++ {
		tasks = append(tasks, models.Task{ID: fmt.Sprintf("t%02d", i), Text: fmt.Sprintf("Post %02d", i)})
	}
	tasks = append(tasks, models.Task{ID: "near", Text: "Pots"})

	results := Search(Index(nil, tasks, nil), "post")
	require.Len(t, results, Limit)
	for _, r := range results {
		assert.Zero(t, r.Score)
	}
	assert.Equal(t, "Post 00", results[0].Title)
	assert.Equal(t, "Post 09", results[9].Title)
}
