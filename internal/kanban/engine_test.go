package kanban

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumns(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		cols, err := NewColumns("To Do", "In Progress", "Done")
		require.NoError(t, err)
		assert.Equal(t, []string{"To Do", "In Progress", "Done"}, cols.Labels())
		assert.Equal(t, 1, cols.Index("In Progress"))
		assert.Equal(t, -1, cols.Index("Blocked"))
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := NewColumns()
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("rejects blank label", func(t *testing.T) {
		_, err := NewColumns("To Do", "  ")
		assert.ErrorIs(t, err, ErrEmptyColumn)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewColumns("To Do", "Done", "To Do")
		assert.ErrorIs(t, err, ErrDuplicateColumn)
	})

	t.Run("labels copy is detached", func(t *testing.T) {
		cols := MustColumns("A", "B")
		labels := cols.Labels()
		labels[0] = "Z"
		assert.Equal(t, "A", cols.At(0))
	})

	t.Run("find is case insensitive", func(t *testing.T) {
		label, ok := campaignColumns.Find(" in progress ")
		assert.True(t, ok)
		assert.Equal(t, "In Progress", label)
		_, ok = campaignColumns.Find("archived")
		assert.False(t, ok)
	})
}

func TestComputeDrop_ChangesOnlyStatus(t *testing.T) {
	engine := NewEngine[card](campaignColumns)
	original := card{ID: "c1", Status: "Planning", Title: "Winter sale", Budget: 1200, Tags: []string{"retail"}}

	for _, target := range campaignColumns.Labels() {
		if target == original.Status {
			continue
		}
		t.Run(target, func(t *testing.T) {
			got, changed := engine.ComputeDrop(original, target)
			require.True(t, changed)

			want := original
			want.Status = target
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ComputeDrop mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeDrop_NoOps(t *testing.T) {
	engine := NewEngine[card](campaignColumns)
	item := card{ID: "c1", Status: "Live"}

	tests := []struct {
		name   string
		target string
	}{
		{"same status", "Live"},
		{"unknown column", "Archived"},
		{"empty target", ""},
		{"case mismatch", "live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := engine.ComputeDrop(item, tt.target)
			assert.False(t, changed)
			assert.Equal(t, item, got)
		})
	}
}

func TestComputeStep_Boundaries(t *testing.T) {
	for _, cols := range []Columns{campaignColumns, taskColumns} {
		engine := NewEngine[card](cols)

		first := card{ID: "a", Status: cols.At(0)}
		got, changed, err := engine.ComputeStep(first, Backward)
		require.NoError(t, err)
		assert.False(t, changed, "backward from first column must clamp")
		assert.Equal(t, first, got)

		last := card{ID: "b", Status: cols.At(cols.Len() - 1)}
		got, changed, err = engine.ComputeStep(last, Forward)
		require.NoError(t, err)
		assert.False(t, changed, "forward from last column must clamp")
		assert.Equal(t, last, got)
	}
}

func TestComputeStep_Interior(t *testing.T) {
	engine := NewEngine[card](campaignColumns)

	for i := 1; i < campaignColumns.Len()-1; i++ {
		item := card{ID: "c", Status: campaignColumns.At(i), Title: "keep me"}

		next, changed, err := engine.ComputeStep(item, Forward)
		require.NoError(t, err)
		require.True(t, changed)
		assert.Equal(t, campaignColumns.At(i+1), next.Status)
		assert.Equal(t, "keep me", next.Title)

		prev, changed, err := engine.ComputeStep(item, Backward)
		require.NoError(t, err)
		require.True(t, changed)
		assert.Equal(t, campaignColumns.At(i-1), prev.Status)
	}
}

func TestComputeStep_RoundTrip(t *testing.T) {
	engine := NewEngine[card](campaignColumns)

	// any item whose forward neighbour exists comes back to where it started
	for i := 0; i < campaignColumns.Len()-1; i++ {
		item := card{ID: "c", Status: campaignColumns.At(i)}

		forward, changed, err := engine.ComputeStep(item, Forward)
		require.NoError(t, err)
		require.True(t, changed)

		back, changed, err := engine.ComputeStep(forward, Backward)
		require.NoError(t, err)
		require.True(t, changed)
		assert.Equal(t, item.Status, back.Status)
	}
}

func TestComputeStep_UnknownStatus(t *testing.T) {
	engine := NewEngine[card](taskColumns)

	item := card{ID: "t1", Status: "Blocked"}
	got, changed, err := engine.ComputeStep(item, Forward)

	assert.True(t, errors.Is(err, ErrUnknownStatus))
	assert.False(t, changed)
	assert.Equal(t, item, got)
}

func TestGroup(t *testing.T) {
	engine := NewEngine[card](taskColumns)
	items := []card{
		{ID: "1", Status: "Done"},
		{ID: "2", Status: "To Do"},
		{ID: "3", Status: "Done"},
		{ID: "4", Status: "Archived"},
	}

	grouped, orphans := engine.Group(items)

	assert.Len(t, grouped, 3)
	assert.Empty(t, grouped["In Progress"])
	assert.Equal(t, []card{{ID: "1", Status: "Done"}, {ID: "3", Status: "Done"}}, grouped["Done"])
	assert.Equal(t, []card{{ID: "4", Status: "Archived"}}, orphans)
}
