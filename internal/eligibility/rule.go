package eligibility

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/udaan-api/internal/models"
)

// ErrMalformedRule marks eligibility data that cannot be evaluated.
var ErrMalformedRule = errors.New("malformed eligibility rule")

// rawRule uses pointers so absent fields can be told apart from zero values.
type rawRule struct {
	MinClass      *int      `json:"minClass"`
	MaxClass      *int      `json:"maxClass"`
	MinAge        *int      `json:"minAge"`
	MaxAge        *int      `json:"maxAge"`
	MinPercentage *int      `json:"minPercentage"`
	Categories    *[]string `json:"categories"`
	Religions     *[]string `json:"religions"`
	Location      *[]string `json:"location"`
	Disability    *bool     `json:"disability"`
	IncomeLimit   *string   `json:"income_limit"`
}

// DecodeRule parses eligibility JSON, rejecting absent fields and then
// checking the rule invariants.
func DecodeRule(raw []byte) (models.EligibilityRule, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return models.EligibilityRule{}, fmt.Errorf("%w: eligibility is empty", ErrMalformedRule)
	}

	var r rawRule
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.EligibilityRule{}, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}

	var missing []string
	if r.MinClass == nil {
		missing = append(missing, "minClass")
	}
	if r.MaxClass == nil {
		missing = append(missing, "maxClass")
	}
	if r.MinAge == nil {
		missing = append(missing, "minAge")
	}
	if r.MaxAge == nil {
		missing = append(missing, "maxAge")
	}
	if r.MinPercentage == nil {
		missing = append(missing, "minPercentage")
	}
	if r.Categories == nil {
		missing = append(missing, "categories")
	}
	if r.Religions == nil {
		missing = append(missing, "religions")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	if r.Disability == nil {
		missing = append(missing, "disability")
	}
	if len(missing) > 0 {
		return models.EligibilityRule{}, fmt.Errorf("%w: missing %s", ErrMalformedRule, strings.Join(missing, ", "))
	}

	rule := models.EligibilityRule{
		MinClass:      *r.MinClass,
		MaxClass:      *r.MaxClass,
		MinAge:        *r.MinAge,
		MaxAge:        *r.MaxAge,
		MinPercentage: *r.MinPercentage,
		Categories:    *r.Categories,
		Religions:     *r.Religions,
		Location:      *r.Location,
		Disability:    *r.Disability,
		IncomeLimit:   r.IncomeLimit,
	}
	if err := ValidateRule(rule); err != nil {
		return models.EligibilityRule{}, err
	}
	return rule, nil
}

// ValidateRule checks bound ordering, the percentage range and that every
// set has at least one member.
func ValidateRule(rule models.EligibilityRule) error {
	var problems []string
	if rule.MinClass > rule.MaxClass {
		problems = append(problems, fmt.Sprintf("minClass %d > maxClass %d", rule.MinClass, rule.MaxClass))
	}
	if rule.MinAge > rule.MaxAge {
		problems = append(problems, fmt.Sprintf("minAge %d > maxAge %d", rule.MinAge, rule.MaxAge))
	}
	if rule.MinPercentage < 0 || rule.MinPercentage > 100 {
		problems = append(problems, fmt.Sprintf("minPercentage %d outside 0-100", rule.MinPercentage))
	}
	if len(rule.Categories) == 0 {
		problems = append(problems, "categories empty")
	}
	if len(rule.Religions) == 0 {
		problems = append(problems, "religions empty")
	}
	if len(rule.Location) == 0 {
		problems = append(problems, "location empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrMalformedRule, strings.Join(problems, "; "))
	}
	return nil
}
