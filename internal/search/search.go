// Package search implements the global fuzzy search over campaigns, tasks
// and notes.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/thenoetrevino/adflow/internal/models"
)

const (
	// Threshold is the worst score still counted as a match (0 exact, 1 unrelated)
	Threshold = 0.4
	// Limit caps the number of results
	Limit = 10

	snippetLength = 30
)

// Kind of a search entry
type Kind string

const (
	KindCampaign Kind = "campaign"
	KindTask     Kind = "task"
	KindNote     Kind = "note"
)

// Entry is one searchable record.
type Entry struct {
	Kind     Kind     `json:"type"`
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// GetID returns the ID of the matched record
func (e Entry) GetID() string { return e.ID }

// Result is a matching entry with its score.
type Result struct {
	Entry
	Score float64 `json:"score"`
}

// Index builds the search entries for all three collections.
func Index(campaigns []models.Campaign, tasks []models.Task, notes []models.Note) []Entry {
	entries := make([]Entry, 0, len(campaigns)+len(tasks)+len(notes))
	for _, c := range campaigns {
		entries = append(entries, Entry{Kind: KindCampaign, ID: c.ID, Title: c.Name, Subtitle: c.Objective})
	}
	for _, t := range tasks {
		where := t.Campaign
		if where == "" {
			where = "Tasks"
		}
		entries = append(entries, Entry{Kind: KindTask, ID: t.ID, Title: t.Text, Subtitle: "In: " + where})
	}
	for _, n := range notes {
		entries = append(entries, Entry{Kind: KindNote, ID: n.ID, Title: n.Title, Subtitle: snippet(n.Content), Tags: n.Tags})
	}
	return entries
}

func snippet(content string) string {
	if utf8.RuneCountInString(content) <= snippetLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:snippetLength]) + "…"
}

// Search returns up to Limit entries scoring within Threshold, best first.
// A blank query matches nothing.
func Search(entries []Entry, query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []Result
	for _, e := range entries {
		best := 1.0
		for _, key := range e.keys() {
			if s := Score(query, key); s < best {
				best = s
			}
		}
		if best <= Threshold {
			results = append(results, Result{Entry: e, Score: best})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return strings.ToLower(results[i].Title) < strings.ToLower(results[j].Title)
	})
	if len(results) > Limit {
		results = results[:Limit]
	}
	return results
}

func (e Entry) keys() []string {
	keys := make([]string, 0, 2+len(e.Tags))
	keys = append(keys, e.Title, e.Subtitle)
	return append(keys, e.Tags...)
}

// Score rates how well query matches text, from 0 (contained verbatim) to 1.
// It is the normalised edit distance between query and the closest
// query-length window of text. query must already be lower case.
func Score(query, text string) float64 {
	text = strings.ToLower(text)
	if query == "" || text == "" {
		return 1
	}
	if strings.Contains(text, query) {
		return 0
	}

	q := []rune(query)
	t := []rune(text)
	n := len(q)

	if len(t) <= n {
		return normalise(levenshtein.ComputeDistance(query, text), n)
	}

	best := n
	for i := 0; i+n <= len(t); i++ {
		if d := levenshtein.ComputeDistance(query, string(t[i:i+n])); d < best {
			best = d
		}
	}
	return normalise(best, n)
}

func normalise(distance, length int) float64 {
	s := float64(distance) / float64(length)
	if s > 1 {
		return 1
	}
	return s
}
