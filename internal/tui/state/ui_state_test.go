package state

import "testing"

// TestCycleTab_Wraps ensures tab cycling wraps in both directions.
func TestCycleTab_Wraps(t *testing.T) {
	s := NewUIState()

	s.CycleTab(-1)
	if s.Tab() != TabNotes {
		t.Errorf("CycleTab(-1) from dashboard = %v, want %v", s.Tab(), TabNotes)
	}

	s.CycleTab(1)
	if s.Tab() != TabDashboard {
		t.Errorf("CycleTab(1) from notes = %v, want %v", s.Tab(), TabDashboard)
	}
}

// TestSetTab_IgnoresOutOfRange ensures a bad index leaves the tab alone.
func TestSetTab_IgnoresOutOfRange(t *testing.T) {
	s := NewUIState()
	s.SetTab(TabBudgets)
	s.SetTab(Tab(99))

	if s.Tab() != TabBudgets {
		t.Errorf("Tab() = %v, want %v", s.Tab(), TabBudgets)
	}
}

// TestContentHeight ensures the tab and status bars are subtracted and a
// tiny terminal never yields a negative height.
func TestContentHeight(t *testing.T) {
	s := NewUIState()

	s.SetSize(120, 40)
	if got := s.ContentHeight(); got != 36 {
		t.Errorf("ContentHeight() = %d, want 36", got)
	}

	s.SetSize(120, 2)
	if got := s.ContentHeight(); got != 0 {
		t.Errorf("ContentHeight() on a tiny terminal = %d, want 0", got)
	}
}

func TestTab_IsBoard(t *testing.T) {
	for tab := TabDashboard; tab <= TabNotes; tab++ {
		want := tab == TabCampaigns || tab == TabTasks
		if tab.IsBoard() != want {
			t.Errorf("%v.IsBoard() = %v, want %v", tab, tab.IsBoard(), want)
		}
	}
}
