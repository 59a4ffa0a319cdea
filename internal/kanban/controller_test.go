package kanban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_DragToNewColumn(t *testing.T) {
	saver := &fakeSaver{}
	rec := &recorder{}
	ctrl := newTestController(campaignColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "c1", Status: "Planning"}
	assert.Equal(t, EffectMove, ctrl.DragStart(item))
	assert.Equal(t, ModeDragging, ctrl.Selection().Mode())

	moved := ctrl.Drop(ctx, "In Progress")

	assert.True(t, moved)
	assert.Equal(t, []card{{ID: "c1", Status: "In Progress"}}, saver.Saved())
	assert.Equal(t, []NoticeKind{NoticeMoved}, rec.Kinds())
	assert.Equal(t, "Status updated to In Progress!", rec.Last().Message)
	assert.True(t, ctrl.Selection().IsEmpty(), "drop must clear the drag")
}

func TestController_DropNoOps(t *testing.T) {
	tests := []struct {
		name   string
		drag   bool
		target string
	}{
		{"same column", true, "Planning"},
		{"unknown column", true, "Archived"},
		{"nothing dragged", false, "Live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{}
			rec := &recorder{}
			ctrl := newTestController(campaignColumns, saver, rec)

			if tt.drag {
				ctrl.DragStart(card{ID: "c1", Status: "Planning"})
			}

			assert.False(t, ctrl.Drop(context.Background(), tt.target))
			assert.Empty(t, saver.Saved())
			assert.Empty(t, rec.Kinds())
			assert.True(t, ctrl.Selection().IsEmpty())
		})
	}
}

func TestController_DropSaveFailure(t *testing.T) {
	saver := &fakeSaver{err: errStoreDown}
	rec := &recorder{}
	ctrl := newTestController(campaignColumns, saver, rec)

	item := card{ID: "c1", Status: "Planning"}
	ctrl.DragStart(item)
	moved := ctrl.Drop(context.Background(), "Live")

	assert.False(t, moved)
	assert.Empty(t, saver.Saved())
	assert.Equal(t, []NoticeKind{NoticeMoveFailed}, rec.Kinds())
	assert.ErrorIs(t, rec.Last().Err, errStoreDown)
	assert.True(t, ctrl.Selection().IsEmpty())
	assert.False(t, ctrl.InFlight("c1"))

	// the controller stays usable after a failure
	saver.err = nil
	ctrl.DragStart(item)
	assert.True(t, ctrl.Drop(context.Background(), "Live"))
}

func TestController_KeyboardSelectAndStep(t *testing.T) {
	saver := &fakeSaver{}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	// the board keeps rendering the card from the store snapshot, which
	// still says "To Do" until a subscription push arrives
	onBoard := card{ID: "t1", Status: "To Do", Title: "Write copy"}

	assert.True(t, ctrl.KeyDown(ctx, KeyEnter, onBoard))
	assert.Equal(t, NoticeSelected, rec.Last().Kind)
	assert.Equal(t, "Task selected. Use arrow keys to move.", rec.Last().Message)

	assert.True(t, ctrl.KeyDown(ctx, KeyRight, onBoard))
	picked, _ := ctrl.Selection().Item()
	assert.Equal(t, "In Progress", picked.Status)

	assert.True(t, ctrl.KeyDown(ctx, KeyRight, onBoard))
	picked, _ = ctrl.Selection().Item()
	assert.Equal(t, "Done", picked.Status)

	notices := len(rec.Kinds())
	assert.True(t, ctrl.KeyDown(ctx, KeyRight, onBoard), "clamped arrow is still consumed")

	saved := saver.Saved()
	require.Len(t, saved, 2)
	assert.Equal(t, "In Progress", saved[0].Status)
	assert.Equal(t, "Done", saved[1].Status)
	assert.Equal(t, "Write copy", saved[1].Title)
	assert.Len(t, rec.Kinds(), notices, "clamped step must not notify")
	assert.Equal(t, []NoticeKind{NoticeSelected, NoticeMoved, NoticeMoved}, rec.Kinds())
}

func TestController_StepBackward(t *testing.T) {
	saver := &fakeSaver{}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "t1", Status: "Done"}
	ctrl.KeyDown(ctx, KeySpace, item)
	ctrl.KeyDown(ctx, KeyLeft, item)
	ctrl.KeyDown(ctx, KeyLeft, item)
	ctrl.KeyDown(ctx, KeyLeft, item)

	saved := saver.Saved()
	require.Len(t, saved, 2)
	assert.Equal(t, "In Progress", saved[0].Status)
	assert.Equal(t, "To Do", saved[1].Status)
}

func TestController_EscapeCancels(t *testing.T) {
	saver := &fakeSaver{}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "t1", Status: "To Do"}
	ctrl.KeyDown(ctx, KeyEnter, item)

	assert.True(t, ctrl.KeyDown(ctx, KeyEscape, item))
	assert.Equal(t, NoticeCancelled, rec.Last().Kind)
	assert.Equal(t, "Move cancelled.", rec.Last().Message)

	assert.False(t, ctrl.KeyDown(ctx, KeyRight, item), "arrow on an unselected card is ignored")
	assert.Empty(t, saver.Saved())
	assert.Equal(t, []NoticeKind{NoticeSelected, NoticeCancelled}, rec.Kinds())

	assert.False(t, ctrl.KeyDown(ctx, KeyEscape, item), "escape with nothing selected is not consumed")
	assert.Len(t, rec.Kinds(), 2)
}

func TestController_ToggleAndReplace(t *testing.T) {
	rec := &recorder{}
	ctrl := newTestController(taskColumns, &fakeSaver{}, rec)
	ctx := context.Background()

	a := card{ID: "a", Status: "To Do"}
	b := card{ID: "b", Status: "Done"}

	ctrl.KeyDown(ctx, KeyEnter, a)
	ctrl.KeyDown(ctx, KeyEnter, b)
	picked, ok := ctrl.Selection().Item()
	require.True(t, ok)
	assert.Equal(t, "b", picked.ID, "selecting another card replaces the pick")

	ctrl.KeyDown(ctx, KeySpace, b)
	assert.True(t, ctrl.Selection().IsEmpty())
	assert.Equal(t, []NoticeKind{NoticeSelected, NoticeSelected, NoticeDeselected}, rec.Kinds())
	assert.Equal(t, "Task deselected.", rec.Last().Message)
}

func TestController_StaleArrowIgnored(t *testing.T) {
	saver := &fakeSaver{}
	ctrl := newTestController(taskColumns, saver, &recorder{})
	ctx := context.Background()

	ctrl.KeyDown(ctx, KeyEnter, card{ID: "a", Status: "To Do"})
	assert.False(t, ctrl.KeyDown(ctx, KeyRight, card{ID: "b", Status: "To Do"}))
	assert.Empty(t, saver.Saved())
}

func TestController_OtherKeysNotConsumed(t *testing.T) {
	rec := &recorder{}
	ctrl := newTestController(taskColumns, &fakeSaver{}, rec)

	item := card{ID: "a", Status: "To Do"}
	assert.False(t, ctrl.KeyDown(context.Background(), KeyOther, item))
	assert.Empty(t, rec.Kinds())
}

func TestController_SelectionModesExclusive(t *testing.T) {
	ctrl := newTestController(taskColumns, &fakeSaver{}, &recorder{})
	ctx := context.Background()

	a := card{ID: "a", Status: "To Do"}
	b := card{ID: "b", Status: "To Do"}

	ctrl.KeyDown(ctx, KeyEnter, a)
	ctrl.DragStart(b)
	assert.Equal(t, ModeDragging, ctrl.Selection().Mode())
	assert.False(t, ctrl.KeyDown(ctx, KeyRight, a), "drag replaced the keyboard pick")

	ctrl.KeyDown(ctx, KeyEnter, a)
	assert.Equal(t, ModeKeyboard, ctrl.Selection().Mode())
	assert.False(t, ctrl.Drop(ctx, "Done"), "keyboard pick replaced the drag")
	assert.Equal(t, ModeKeyboard, ctrl.Selection().Mode(), "a stray drop leaves the pick alone")

	ctrl.DragStart(b)
	ctrl.DragEnd()
	assert.True(t, ctrl.Selection().IsEmpty())
}

func TestController_StepFailureKeepsCache(t *testing.T) {
	saver := &fakeSaver{err: errStoreDown}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "t1", Status: "To Do"}
	ctrl.KeyDown(ctx, KeyEnter, item)
	ctrl.KeyDown(ctx, KeyRight, item)

	assert.Equal(t, NoticeMoveFailed, rec.Last().Kind)
	picked, _ := ctrl.Selection().Item()
	assert.Equal(t, "To Do", picked.Status, "failed save must not advance the cached status")
	assert.True(t, ctrl.Selection().Holds(ModeKeyboard, "t1"), "item stays picked after a failure")
}

func TestController_UnknownStatusIsIgnored(t *testing.T) {
	saver := &fakeSaver{}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "t1", Status: "Blocked"}
	ctrl.KeyDown(ctx, KeyEnter, item)

	assert.True(t, ctrl.KeyDown(ctx, KeyRight, item))
	assert.Empty(t, saver.Saved())
	assert.Equal(t, []NoticeKind{NoticeSelected}, rec.Kinds())
}

// Rapid arrow presses while a save is pending used to compute the second
// step from an unconfirmed status. Steps are now dropped until the first
// save resolves.
func TestController_InFlightStepsAreDropped(t *testing.T) {
	saver := &fakeSaver{gate: make(chan struct{})}
	rec := &recorder{}
	ctrl := newTestController(taskColumns, saver, rec)
	ctx := context.Background()

	item := card{ID: "t1", Status: "To Do"}
	ctrl.KeyDown(ctx, KeyEnter, item)

	consumed, first := ctrl.PrepareKey(KeyRight, item)
	require.True(t, consumed)
	require.NotNil(t, first)
	assert.True(t, ctrl.InFlight("t1"))

	done := make(chan bool)
	go func() { done <- first.Commit(ctx) }()

	consumed, second := ctrl.PrepareKey(KeyRight, item)
	assert.True(t, consumed)
	assert.Nil(t, second, "step while a save is pending must be dropped")

	ctrl.DragStart(item)
	assert.Nil(t, ctrl.PrepareDrop("Done"), "drop while a save is pending must be dropped")

	saver.gate <- struct{}{}
	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("commit did not finish")
	}

	assert.False(t, ctrl.InFlight("t1"))
	assert.Equal(t, []card{{ID: "t1", Status: "In Progress"}}, saver.Saved())
	assert.Equal(t, []NoticeKind{NoticeSelected, NoticeMoved}, rec.Kinds())
}

func TestController_PendingStepComposesAfterResolve(t *testing.T) {
	saver := &fakeSaver{gate: make(chan struct{}, 2)}
	ctrl := newTestController(taskColumns, saver, &recorder{})
	ctx := context.Background()

	item := card{ID: "t1", Status: "To Do"}
	ctrl.KeyDown(ctx, KeyEnter, item)

	_, first := ctrl.PrepareKey(KeyRight, item)
	require.NotNil(t, first)
	saver.gate <- struct{}{}
	require.True(t, first.Commit(ctx))

	_, second := ctrl.PrepareKey(KeyRight, item)
	require.NotNil(t, second)
	assert.Equal(t, "In Progress", second.From)
	assert.Equal(t, "Done", second.Item.Status)
	saver.gate <- struct{}{}
	require.True(t, second.Commit(ctx))

	assert.True(t, second.Commit(ctx))
	assert.Len(t, saver.Saved(), 2, "committing twice saves once")
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"enter":      KeyEnter,
		"space":      KeySpace,
		" ":          KeySpace,
		"esc":        KeyEscape,
		"Escape":     KeyEscape,
		"left":       KeyLeft,
		"ArrowRight": KeyRight,
		"x":          KeyOther,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseKey(name), name)
	}
}
