// Package state holds the TUI's view state: modes, tabs, toasts, search
// and the daemon connection.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what overlay is drawn.
type Mode int

const (
	NormalMode        Mode = iota // board and list navigation
	FormMode                      // a huh create/edit form is open
	DeleteConfirmMode             // confirming a delete
	SearchMode                    // search overlay (/)
	HelpMode                      // key reference
	NoteViewMode                  // rendered markdown note
)

func (m Mode) String() string {
	switch m {
	case FormMode:
		return "form"
	case DeleteConfirmMode:
		return "delete"
	case SearchMode:
		return "search"
	case HelpMode:
		return "help"
	case NoteViewMode:
		return "note"
	default:
		return "normal"
	}
}

// Tab is one of the top-level screens
type Tab int

const (
	TabDashboard Tab = iota
	TabCampaigns
	TabTasks
	TabBudgets
	TabNotes
)

// TabNames are the tab bar labels, in Tab order
var TabNames = []string{"Dashboard", "Campaigns", "Tasks", "Budgets", "Notes"}

func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(TabNames) {
		return "Unknown"
	}
	return TabNames[t]
}

// IsBoard reports whether the tab shows a kanban board
func (t Tab) IsBoard() bool {
	return t == TabCampaigns || t == TabTasks
}

// UIState tracks the terminal size, the active tab and the mode.
type UIState struct {
	width  int
	height int
	mode   Mode
	tab    Tab
}

// NewUIState creates a UIState on the dashboard in normal mode.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode, tab: TabDashboard}
}

func (s *UIState) Width() int       { return s.width }
func (s *UIState) Height() int      { return s.height }
func (s *UIState) Mode() Mode       { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }
func (s *UIState) Tab() Tab         { return s.tab }

// SetTab switches to tab, ignoring out-of-range values.
func (s *UIState) SetTab(tab Tab) {
	if int(tab) >= 0 && int(tab) < len(TabNames) {
		s.tab = tab
	}
}

// CycleTab moves delta tabs, wrapping around.
func (s *UIState) CycleTab(delta int) {
	n := len(TabNames)
	s.tab = Tab(((int(s.tab)+delta)%n + n) % n)
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight is the height left for the active screen below the tab
// bar and above the status bar.
func (s *UIState) ContentHeight() int {
	return max(s.height-tabBarHeight-statusBarHeight, 0)
}

const (
	tabBarHeight    = 3
	statusBarHeight = 1
)
