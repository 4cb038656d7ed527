package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Sentinel set members that match every applicant value.
const (
	SentinelAllCategories = "All"
	SentinelAllReligions  = "All"
	SentinelAnyReligion   = "Any"
	SentinelBothLocations = "Both"
)

// Class levels above school grades.
const (
	ClassUndergraduate = 13
	ClassPostgraduate  = 14
)

// EligibilityRule holds the bounds and sets an applicant is checked against.
// Bounds are inclusive.
type EligibilityRule struct {
	MinClass      int      `json:"minClass" yaml:"minClass"`
	MaxClass      int      `json:"maxClass" yaml:"maxClass"`
	MinAge        int      `json:"minAge" yaml:"minAge"`
	MaxAge        int      `json:"maxAge" yaml:"maxAge"`
	MinPercentage int      `json:"minPercentage" yaml:"minPercentage"`
	Categories    []string `json:"categories" yaml:"categories"`
	Religions     []string `json:"religions" yaml:"religions"`
	Location      []string `json:"location" yaml:"location"`
	Disability    bool     `json:"disability" yaml:"disability"`
	IncomeLimit   *string  `json:"income_limit,omitempty" yaml:"income_limit,omitempty"`
}

// Scholarship is one loaded, validated scholarship record.
type Scholarship struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Provider            string          `json:"provider"`
	Amount              string          `json:"amount,omitempty"`
	Description         string          `json:"description"`
	Eligibility         EligibilityRule `json:"eligibility"`
	ApplicationDeadline string          `json:"application_deadline"`
	Benefits            []string        `json:"benefits"`
	WebsiteURL          string          `json:"website_url"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ScholarshipRow mirrors the scholarships table before the eligibility JSON is decoded.
type ScholarshipRow struct {
	ID                  string         `db:"id"`
	Name                string         `db:"name"`
	Provider            string         `db:"provider"`
	Amount              string         `db:"amount"`
	Description         string         `db:"description"`
	Eligibility         types.JSONText `db:"eligibility"`
	ApplicationDeadline string         `db:"application_deadline"`
	Benefits            pq.StringArray `db:"benefits"`
	WebsiteURL          string         `db:"website_url"`
	CreatedAt           time.Time      `db:"created_at"`
}

// CatalogStatus enumerates the lifecycle of the in-memory scholarship list.
type CatalogStatus string

const (
	CatalogStatusLoading CatalogStatus = "loading"
	CatalogStatusReady   CatalogStatus = "ready"
	CatalogStatusError   CatalogStatus = "error"
)
