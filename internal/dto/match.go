package dto

import (
	"time"

	"github.com/noah-isme/udaan-api/internal/eligibility"
	"github.com/noah-isme/udaan-api/internal/models"
)

// MatchResult is one completed filter run.
type MatchResult struct {
	Criteria     models.FilterCriteria `json:"criteria"`
	Scholarships []models.Scholarship  `json:"scholarships"`
	Total        int                   `json:"total"`
	Matching     int                   `json:"matching"`
	Sequence     uint64                `json:"sequence"`
	CompletedAt  time.Time             `json:"completed_at"`
}

// EligibilityCheck explains a single scholarship against the criteria.
type EligibilityCheck struct {
	ScholarshipID string              `json:"scholarship_id"`
	Name          string              `json:"name"`
	Eligible      bool                `json:"eligible"`
	Checks        []eligibility.Check `json:"checks"`
	IncomeLimit   *string             `json:"income_limit,omitempty"`
}

// ClassOption labels a class level in the criteria form.
type ClassOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// CriteriaOptions lists the values the criteria form offers.
type CriteriaOptions struct {
	Classes    []ClassOption         `json:"classes"`
	Categories []string              `json:"categories"`
	Religions  []string              `json:"religions"`
	Locations  []string              `json:"locations"`
	Defaults   models.FilterCriteria `json:"defaults"`
}
