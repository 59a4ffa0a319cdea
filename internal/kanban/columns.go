package kanban

import (
	"fmt"
	"strings"
)

// Columns is the ordered, immutable list of status labels for one board.
type Columns struct {
	labels []string
	index  map[string]int
}

// NewColumns validates and freezes a column list.
// Labels must be non-empty and unique; order is preserved.
func NewColumns(labels ...string) (Columns, error) {
	if len(labels) == 0 {
		return Columns{}, ErrNoColumns
	}

	index := make(map[string]int, len(labels))
	frozen := make([]string, len(labels))
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return Columns{}, fmt.Errorf("column %d: %w", i, ErrEmptyColumn)
		}
		if _, exists := index[label]; exists {
			return Columns{}, fmt.Errorf("%q: %w", label, ErrDuplicateColumn)
		}
		index[label] = i
		frozen[i] = label
	}

	return Columns{labels: frozen, index: index}, nil
}

// MustColumns is NewColumns for static lists known to be valid.
func MustColumns(labels ...string) Columns {
	cols, err := NewColumns(labels...)
	if err != nil {
		panic(err)
	}
	return cols
}

// Len returns the number of columns.
func (c Columns) Len() int {
	return len(c.labels)
}

// At returns the label at position i.
func (c Columns) At(i int) string {
	return c.labels[i]
}

// Index returns the position of status, or -1 when it is not a column.
func (c Columns) Index(status string) int {
	if i, ok := c.index[status]; ok {
		return i
	}
	return -1
}

// Contains reports whether status is one of the columns.
func (c Columns) Contains(status string) bool {
	_, ok := c.index[status]
	return ok
}

// Labels returns a copy of the column labels in order.
func (c Columns) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Find does a case-insensitive lookup so CLI users can type "in progress".
func (c Columns) Find(name string) (string, bool) {
	for _, label := range c.labels {
		if strings.EqualFold(label, strings.TrimSpace(name)) {
			return label, true
		}
	}
	return "", false
}

// First returns the first column label.
func (c Columns) First() string {
	if len(c.labels) == 0 {
		return ""
	}
	return c.labels[0]
}
