package models

import "fmt"

// Enumerations offered by the criteria form.
var (
	Categories = []string{"General", "OBC", "SC", "ST", "EWS"}
	Religions  = []string{"Any", "Hindu", "Muslim", "Christian", "Sikh", "Buddhist", "Jain", "Other"}
	Locations  = []string{"Urban", "Rural", "Both"}
)

// FilterCriteria carries the applicant values checked against eligibility
// rules. Numbers are evaluated literally; only the enumerated strings are
// validated.
type FilterCriteria struct {
	Class      int    `json:"class"`
	Age        int    `json:"age"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category" validate:"required,oneof=General OBC SC ST EWS"`
	Religion   string `json:"religion" validate:"required,oneof=Any Hindu Muslim Christian Sikh Buddhist Jain Other"`
	Location   string `json:"location" validate:"required,oneof=Urban Rural Both"`
	Disability bool   `json:"disability"`
}

// DefaultCriteria returns the values the criteria form starts with.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Class:      10,
		Age:        16,
		Percentage: 75,
		Category:   "General",
		Religion:   SentinelAnyReligion,
		Location:   "Urban",
		Disability: false,
	}
}

// ClassLabel names a class level the way the criteria form does.
func ClassLabel(class int) string {
	switch class {
	case ClassUndergraduate:
		return "Undergraduate"
	case ClassPostgraduate:
		return "Postgraduate"
	default:
		return fmt.Sprintf("Class %d", class)
	}
}
