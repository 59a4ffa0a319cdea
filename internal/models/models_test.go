package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_DeriveChecklist(t *testing.T) {
	tests := []struct {
		name     string
		campaign Campaign
		want     Checklist
		progress float64
	}{
		{
			name:     "empty campaign",
			campaign: Campaign{Headlines: []string{"  "}},
			want:     Checklist{},
			progress: 0,
		},
		{
			name: "fully prepared",
			campaign: Campaign{
				PrimaryText: "Shop the winter sale",
				Headlines:   []string{"", "50% off"},
				Visuals:     Visuals{FormatSquare: "https://cdn.example/sq.png"},
				TargetValue: 1500,
				BudgetID:    "b1",
			},
			want:     Checklist{PrimaryText: true, Headlines: true, Visuals: true, Targeting: true, Budget: true},
			progress: 1,
		},
		{
			name: "copy only",
			campaign: Campaign{
				PrimaryText: "Copy",
				Headlines:   []string{"Headline"},
				Visuals:     Visuals{FormatStory: ""},
			},
			want:     Checklist{PrimaryText: true, Headlines: true},
			progress: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.campaign.DeriveChecklist()
			assert.Equal(t, tt.want, got)

			tt.campaign.Checklist = got
			assert.InDelta(t, tt.progress, tt.campaign.Progress(), 1e-9)
		})
	}
}

func TestWithStatus_LeavesOtherFields(t *testing.T) {
	c := Campaign{ID: "c1", Name: "Launch", Status: CampaignPlanning, Headlines: []string{"a"}}
	moved := c.WithStatus(CampaignLive)

	assert.Equal(t, CampaignLive, moved.Status)
	assert.Equal(t, CampaignPlanning, c.Status)
	assert.Equal(t, c.Name, moved.Name)

	task := Task{ID: "t1", Text: "Brief", Status: TaskToDo, Priority: PriorityHigh}
	assert.Equal(t, Task{ID: "t1", Text: "Brief", Status: TaskDone, Priority: PriorityHigh}, task.WithStatus(TaskDone))
}

func TestBudget_Remaining(t *testing.T) {
	b := Budget{TotalBudget: 1000, Spent: 250}
	assert.Equal(t, 750.0, b.Remaining())
	assert.Equal(t, 0.25, b.Utilisation())
	assert.Equal(t, 0.0, Budget{}.Utilisation())
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Branches, "Sasolburg"))
	assert.False(t, Contains(Branches, "sasolburg"))
	assert.False(t, Contains(nil, ""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-06-30"))
	assert.True(t, ValidDate(Today()))
	assert.False(t, ValidDate("30/06/2025"))
	assert.False(t, ValidDate("2025-02-30"))
	assert.False(t, ValidDate(""))
}
