package seed

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/eligibility"
	"github.com/noah-isme/udaan-api/internal/models"
)

const fixture = `
scholarships:
  - id: merit-2025
    name: State Merit Scholarship
    provider: State Education Board
    amount: "₹12,000 per year"
    description: For high scoring school students.
    application_deadline: "2025-12-31"
    benefits: [Tuition, Books]
    website_url: https://example.org/merit
    eligibility:
      minClass: 9
      maxClass: 12
      minAge: 13
      maxAge: 19
      minPercentage: 75
      categories: [All]
      religions: [All]
      location: [Both]
      disability: false
      income_limit: "2.5 LPA"
  - name: Rural Girls Fund
    provider: Trust
    application_deadline: "2025-10-15"
    website_url: https://example.org/rural
    eligibility:
      minClass: 6
      maxClass: 10
      minAge: 10
      maxAge: 16
      minPercentage: 50
      categories: [SC, ST]
      religions: [All]
      location: [Rural]
      disability: false
`

type storeStub struct {
	rows map[string]models.ScholarshipRow
	err  error
}

func newStoreStub() *storeStub {
	return &storeStub{rows: map[string]models.ScholarshipRow{}}
}

func (s *storeStub) FindByID(ctx context.Context, id string) (*models.ScholarshipRow, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (s *storeStub) Upsert(ctx context.Context, row *models.ScholarshipRow) error {
	if s.err != nil {
		return s.err
	}
	if row.ID == "" {
		row.ID = "generated"
	}
	s.rows[row.ID] = *row
	return nil
}

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "merit-2025", rows[0].ID)
	assert.Equal(t, []string{"Tuition", "Books"}, []string(rows[0].Benefits))
	rule, err := eligibility.DecodeRule(rows[0].Eligibility)
	require.NoError(t, err)
	assert.Equal(t, 75, rule.MinPercentage)
	require.NotNil(t, rule.IncomeLimit)
	assert.Equal(t, "2.5 LPA", *rule.IncomeLimit)

	assert.Empty(t, rows[1].ID)
	assert.NotNil(t, rows[1].Benefits)
}

func TestParseRejectsInvalidEligibility(t *testing.T) {
	_, err := Parse(strings.NewReader(`
scholarships:
  - name: Broken
    eligibility:
      minClass: 12
      maxClass: 1
      minAge: 1
      maxAge: 2
      minPercentage: 0
      categories: [All]
      religions: [All]
      location: [Both]
      disability: false
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, eligibility.ErrMalformedRule))
	assert.Contains(t, err.Error(), "Broken")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("scholarships:\n  - name: X\n    deadline: tomorrow\n"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestApply(t *testing.T) {
	rows, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	repo := newStoreStub()
	res, err := Apply(context.Background(), repo, rows, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 2}, res)
	assert.Equal(t, "generated", rows[1].ID)

	res, err = Apply(context.Background(), repo, rows, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Updated: 2}, res)
	assert.Equal(t, 2, res.Written())

	failing := newStoreStub()
	failing.err = errors.New("db down")
	_, err = Apply(context.Background(), failing, rows, nil)
	assert.Error(t, err)
}
