package models

import "time"

// ============================================================================
// COLLECTIONS
// ============================================================================

// Collection names used by the store and the event daemon
const (
	CollectionCampaigns = "campaigns"
	CollectionTasks     = "tasks"
	CollectionBudgets   = "budgets"
	CollectionNotes     = "notes"

	// CollectionAnalytics holds daily ad metrics imported from CSV exports
	CollectionAnalytics = "analytics"
)

// Collections lists every collection in backup order
var Collections = []string{
	CollectionCampaigns,
	CollectionTasks,
	CollectionNotes,
	CollectionBudgets,
}

// ============================================================================
// BOARD COLUMNS
// ============================================================================

// Campaign statuses, in board order
const (
	CampaignPlanning   = "Planning"
	CampaignInProgress = "In Progress"
	CampaignLive       = "Live"
	CampaignCompleted  = "Completed"
)

// Task statuses, in board order
const (
	TaskToDo       = "To Do"
	TaskInProgress = "In Progress"
	TaskDone       = "Done"
)

// DefaultCampaignColumns is the campaign board's column list
var DefaultCampaignColumns = []string{CampaignPlanning, CampaignInProgress, CampaignLive, CampaignCompleted}

// DefaultTaskColumns is the task board's column list
var DefaultTaskColumns = []string{TaskToDo, TaskInProgress, TaskDone}

// ============================================================================
// ENUMS
// ============================================================================

// Branches that run campaigns and hold budgets
var Branches = []string{"Alberton", "Vanderbijlpark", "Sasolburg", "National"}

// Objectives a campaign can optimise for
var Objectives = []string{"Sales", "Leads", "Brand Awareness", "Engagement"}

// Task priorities, highest first
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Priorities lists task priorities, highest first
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Ad formats for campaign visuals
const (
	FormatSquare   = "1:1"
	FormatPortrait = "4:5"
	FormatStory    = "9:16"
)

// AdFormats lists the supported visual formats
var AdFormats = []string{FormatSquare, FormatPortrait, FormatStory}

// DateLayout is the layout of every date field (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// UnassignedCampaign is the campaign name shown for tasks without a campaign
const UnassignedCampaign = "Unassigned"

// DefaultBudgetStatus is the status of a new budget
const DefaultBudgetStatus = "Planning"

// MaxBudgetNameLength caps budget names
const MaxBudgetNameLength = 100

// Contains reports whether value is one of options.
func Contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
