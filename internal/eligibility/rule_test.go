package eligibility

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRule(t *testing.T) {
	raw := []byte(`{"minClass":1,"maxClass":12,"minAge":10,"maxAge":18,"minPercentage":60,
		"categories":["General"],"religions":["All"],"location":["Urban"],"disability":false,
		"income_limit":"2.5 LPA"}`)

	rule, err := DecodeRule(raw)
	require.NoError(t, err)

	want := baseRule()
	limit := "2.5 LPA"
	want.IncomeLimit = &limit
	if diff := cmp.Diff(want, rule); diff != "" {
		t.Errorf("DecodeRule() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRuleRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "empty", raw: ``, message: "eligibility is empty"},
		{name: "null", raw: `null`, message: "eligibility is empty"},
		{name: "not json", raw: `{`, message: "malformed eligibility rule"},
		{name: "wrong type", raw: `{"minClass":"one"}`, message: "malformed eligibility rule"},
		{
			name:    "missing bounds",
			raw:     `{"categories":["All"],"religions":["All"],"location":["Both"],"disability":false}`,
			message: "missing minClass, maxClass, minAge, maxAge, minPercentage",
		},
		{
			name:    "missing disability",
			raw:     `{"minClass":1,"maxClass":2,"minAge":1,"maxAge":2,"minPercentage":0,"categories":["All"],"religions":["All"],"location":["Both"]}`,
			message: "missing disability",
		},
		{
			name:    "inverted class bounds",
			raw:     `{"minClass":9,"maxClass":2,"minAge":1,"maxAge":2,"minPercentage":0,"categories":["All"],"religions":["All"],"location":["Both"],"disability":false}`,
			message: "minClass 9 > maxClass 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRule([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRule))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateRule(t *testing.T) {
	assert.NoError(t, ValidateRule(baseRule()))

	rule := baseRule()
	rule.MinAge = 30
	rule.MinPercentage = 101
	rule.Location = nil
	err := ValidateRule(rule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minAge 30 > maxAge 18")
	assert.Contains(t, err.Error(), "minPercentage 101 outside 0-100")
	assert.Contains(t, err.Error(), "location empty")
}
