package models

import "time"

// AnalyticsRecord is one day of ad metrics for a campaign, as exported by
// the ad platform
type AnalyticsRecord struct {
	ID          string    `json:"id,omitempty"`
	CampaignID  string    `json:"campaignId"`
	Date        string    `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Spend       float64   `json:"spend"`
	FetchedAt   time.Time `json:"fetchedAt"`
}
