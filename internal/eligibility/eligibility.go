// Package eligibility implements the scholarship eligibility predicate.
//
// A record matches an applicant only when every check holds. Sentinel set
// members ("All" for categories and religions, "Both" for location) match any
// applicant value, and an applicant religion of "Any" matches any record.
package eligibility

import (
	"slices"

	"github.com/noah-isme/udaan-api/internal/models"
)

// Check names, in evaluation order.
const (
	CheckClass      = "class"
	CheckAge        = "age"
	CheckPercentage = "percentage"
	CheckCategory   = "category"
	CheckReligion   = "religion"
	CheckLocation   = "location"
	CheckDisability = "disability"
)

// Check is the outcome of one predicate for a rule and a criteria value.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

type predicate struct {
	name string
	eval func(models.EligibilityRule, models.FilterCriteria) bool
}

var predicates = []predicate{
	{CheckClass, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return c.Class >= r.MinClass && c.Class <= r.MaxClass
	}},
	{CheckAge, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return c.Age >= r.MinAge && c.Age <= r.MaxAge
	}},
	{CheckPercentage, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return c.Percentage >= r.MinPercentage
	}},
	{CheckCategory, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return slices.Contains(r.Categories, c.Category) || slices.Contains(r.Categories, models.SentinelAllCategories)
	}},
	{CheckReligion, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return c.Religion == models.SentinelAnyReligion ||
			slices.Contains(r.Religions, c.Religion) ||
			slices.Contains(r.Religions, models.SentinelAllReligions)
	}},
	{CheckLocation, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return slices.Contains(r.Location, c.Location) || slices.Contains(r.Location, models.SentinelBothLocations)
	}},
	// A rule requiring disability excludes non-disabled applicants; a rule
	// without the requirement never excludes on this basis.
	{CheckDisability, func(r models.EligibilityRule, c models.FilterCriteria) bool {
		return !r.Disability || c.Disability
	}},
}

// Match reports whether the criteria satisfy every check of the rule.
func Match(rule models.EligibilityRule, criteria models.FilterCriteria) bool {
	for _, p := range predicates {
		if !p.eval(rule, criteria) {
			return false
		}
	}
	return true
}

// Explain evaluates every check without short-circuiting.
func Explain(rule models.EligibilityRule, criteria models.FilterCriteria) []Check {
	checks := make([]Check, len(predicates))
	for i, p := range predicates {
		checks[i] = Check{Name: p.name, Passed: p.eval(rule, criteria)}
	}
	return checks
}

// Filter returns the records whose rule the criteria satisfy, in input order.
// The input slice is not modified and the result never aliases it.
func Filter(records []models.Scholarship, criteria models.FilterCriteria) []models.Scholarship {
	matched := make([]models.Scholarship, 0, len(records))
	for _, record := range records {
		if Match(record.Eligibility, criteria) {
			matched = append(matched, record)
		}
	}
	return matched
}
