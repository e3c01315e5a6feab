// internal/service/compliance_service.go
package service

import (
    "fmt"
    "strings"

    "github.com/unclebandit/adleopard-backend/internal/model"
)

// ComplianceService runs the keyword-based legal checks over a campaign
// record. Stateless, no persistence concerns.
type ComplianceService struct{}

type Finding struct {
    Field    string `json:"field"`
    Term     string `json:"term"`
    Severity string `json:"severity"` // "blocked" or "caution"
}

var blockedTerms = []string{
    "guaranteed",
    "risk-free",
    "miracle",
    "cure",
    "no side effects",
    "free money",
}

var cautionTerms = []string{
    "best",
    "cheapest",
    "#1",
    "limited time",
    "award-winning",
}

// CheckCampaign scans the display and messaging fields for flagged terms.
// An empty result means the record passes.
func (s *ComplianceService) CheckCampaign(c *model.Campaign) []Finding {
    findings := []Finding{}

    findings = append(findings, scanField("campaign_name", c.CampaignName)...)
    findings = append(findings, scanField("campaign_message.brand_voice", c.CampaignMessage.BrandVoice)...)
    findings = append(findings, scanField("campaign_message.theme", c.CampaignMessage.Theme)...)
    for i, headline := range c.CampaignMessage.Headlines {
        field := fmt.Sprintf("campaign_message.headlines[%d]", i)
        findings = append(findings, scanField(field, headline)...)
    }

    return findings
}

func scanField(field, value string) []Finding {
    lower := strings.ToLower(value)

    findings := []Finding{}
    for _, term := range blockedTerms {
        if strings.Contains(lower, term) {
            findings = append(findings, Finding{Field: field, Term: term, Severity: "blocked"})
        }
    }
    for _, term := range cautionTerms {
        if strings.Contains(lower, term) {
            findings = append(findings, Finding{Field: field, Term: term, Severity: "caution"})
        }
    }
    return findings
}
