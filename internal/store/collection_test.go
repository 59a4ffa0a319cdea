package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brief struct {
	ID     string   `json:"id,omitempty"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Budget *float64 `json:"budget"`
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	col := NewCollection[brief](NewMemoryStore(), "briefs")
	assert.Equal(t, "briefs", col.Name())

	amount := 1500.0
	id, err := col.Save(ctx, brief{Title: "Spring", Tags: []string{"promo"}, Budget: &amount})
	require.NoError(t, err)

	got, err := col.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, []string{"promo"}, got.Tags)
	require.NotNil(t, got.Budget)
	assert.InDelta(t, 1500.0, *got.Budget, 0.001)
}

func TestCollection_NilFieldsKeepStoredValues(t *testing.T) {
	ctx := context.Background()
	col := NewCollection[brief](NewMemoryStore(), "briefs")

	amount := 200.0
	id, err := col.Save(ctx, brief{Title: "Autumn", Tags: []string{"a"}, Budget: &amount})
	require.NoError(t, err)

	// nil slice and nil pointer encode as null and are not written
	_, err = col.Save(ctx, brief{ID: id, Title: "Autumn v2"})
	require.NoError(t, err)

	got, err := col.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Autumn v2", got.Title)
	assert.Equal(t, []string{"a"}, got.Tags)
	require.NotNil(t, got.Budget)
}

func TestCollection_SubscribeSkipsBadDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Save(ctx, "briefs", Document{"id": "bad", "title": 12})
	require.NoError(t, err)
	_, err = s.Save(ctx, "briefs", Document{"id": "good", "title": "ok"})
	require.NoError(t, err)

	var got []brief
	col := NewCollection[brief](s, "briefs")
	unsubscribe, err := col.Subscribe(ctx, func(items []brief) { got = items })
	require.NoError(t, err)
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)

	list, err := col.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
