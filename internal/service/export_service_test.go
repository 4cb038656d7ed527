package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

func exportResult() *dto.MatchResult {
	rule := sampleRule("Urban")
	rule.MaxClass = models.ClassUndergraduate
	return &dto.MatchResult{
		Criteria: models.DefaultCriteria(),
		Scholarships: []models.Scholarship{
			{Name: "Urban Merit", Provider: "State", Amount: "₹12,000", ApplicationDeadline: "2025-12-31", Eligibility: rule, WebsiteURL: "https://a.example.com"},
		},
		Total:    3,
		Matching: 1,
	}
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := NewExportService(nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 1, 8, 30, 0, 0, time.UTC) }

	file, err := svc.Render(exportResult(), "")
	require.NoError(t, err)
	assert.Equal(t, "scholarships-20250701-083000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Provider,Amount,Deadline,Classes,Ages,Min %,Website", lines[0])
	assert.Equal(t, `Urban Merit,State,"₹12,000",2025-12-31,Class 1 - Undergraduate,10-18,60,https://a.example.com`, lines[1])
}

func TestExportServiceRenderPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil)
	file, err := svc.Render(exportResult(), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil)
	_, err := svc.Render(exportResult(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupported.Code, appErrors.FromError(err).Code)

	_, err = svc.Render(nil, "csv")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestParseExportFormat(t *testing.T) {
	cases := map[string]string{"": ExportFormatCSV, " CSV ": ExportFormatCSV, "pdf": ExportFormatPDF}
	for raw, want := range cases {
		got, err := ParseExportFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseExportFormat("xml")
	assert.True(t, appErrors.Is(err, appErrors.ErrUnsupported))
}
