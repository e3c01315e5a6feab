// internal/model/campaign.go
package model

import "encoding/json"

type Campaign struct {
    CampaignID        string          `json:"campaign_id"`
    CampaignName      string          `json:"campaign_name"`
    Client            string          `json:"client"`
    CampaignStartDate string          `json:"campaign_start_date"`
    CampaignEndDate   string          `json:"campaign_end_date"`
    CampaignMessage   CampaignMessage `json:"campaign_message"`
    TargetAudience    TargetAudience  `json:"target_audience"`
    Products          []Product       `json:"products"`
    TargetRegions     []TargetRegion  `json:"target_regions"`

    // Free-form blocks, accepted and passed through unvalidated.
    CreativeRequirements json.RawMessage `json:"creative_requirements,omitempty"`
    BudgetAllocation     json.RawMessage `json:"budget_allocation,omitempty"`
    SuccessMetrics       json.RawMessage `json:"success_metrics,omitempty"`
    Deliverables         json.RawMessage `json:"deliverables,omitempty"`
}

type CampaignMessage struct {
    Headlines  []string `json:"headlines"`
    BrandVoice string   `json:"brand_voice"`
    Theme      string   `json:"theme"`
}

type TargetAudience struct {
    AgeRange    string   `json:"age_range"`
    Interests   []string `json:"interests"`
    Description string   `json:"description,omitempty"`
}

type Product struct {
    Name        string `json:"name"`
    Description string `json:"description,omitempty"`
}

type TargetRegion struct {
    Region   string `json:"region"`
    Priority string `json:"priority,omitempty"`
}

// CampaignWithStatus is a campaign plus its derived lifecycle status.
// Status is computed from the date range at read time and never persisted.
type CampaignWithStatus struct {
    Campaign
    Status string `json:"status"`
}
