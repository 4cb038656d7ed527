package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
	"github.com/noah-isme/udaan-api/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var exportHeaders = []string{"Name", "Provider", "Amount", "Deadline", "Classes", "Ages", "Min %", "Website"}

var exportWidths = []float64{4, 3, 2, 2, 3, 1.2, 1, 4}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders match results as downloadable files.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers use the defaults.
func NewExportService(logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Render produces the file for the given format.
func (s *ExportService) Render(result *dto.MatchResult, format string) (*ExportFile, error) {
	if result == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "nothing to export")
	}
	format, err := ParseExportFormat(format)
	if err != nil {
		return nil, err
	}

	dataset := BuildDataset(result.Scholarships)
	stamp := s.now().UTC().Format("20060102-150405")

	var (
		body        []byte
		contentType string
	)
	switch format {
	case ExportFormatCSV:
		body, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		title := fmt.Sprintf("Matching scholarships (%d of %d)", result.Matching, result.Total)
		body, err = s.pdf.Render(dataset, title, describeCriteria(result.Criteria))
		contentType = "application/pdf"
	}
	if err != nil {
		s.logger.Error("render export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("scholarships-%s.%s", stamp, format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

// ParseExportFormat normalises a requested format. Empty means csv.
func ParseExportFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "":
		return ExportFormatCSV, nil
	case ExportFormatCSV, ExportFormatPDF:
		return format, nil
	}
	return "", appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", raw))
}

// BuildDataset flattens scholarships into export rows.
func BuildDataset(records []models.Scholarship) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rule := r.Eligibility
		rows = append(rows, map[string]string{
			"Name":     r.Name,
			"Provider": r.Provider,
			"Amount":   r.Amount,
			"Deadline": r.ApplicationDeadline,
			"Classes":  classRange(rule.MinClass, rule.MaxClass),
			"Ages":     fmt.Sprintf("%d-%d", rule.MinAge, rule.MaxAge),
			"Min %":    fmt.Sprintf("%d", rule.MinPercentage),
			"Website":  r.WebsiteURL,
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows, Widths: exportWidths}
}

func classRange(lo, hi int) string {
	if lo == hi {
		return models.ClassLabel(lo)
	}
	return models.ClassLabel(lo) + " - " + models.ClassLabel(hi)
}

func describeCriteria(c models.FilterCriteria) string {
	disability := "no"
	if c.Disability {
		disability = "yes"
	}
	return fmt.Sprintf("%s, age %d, %d%%, category %s, religion %s, %s, disability %s",
		models.ClassLabel(c.Class), c.Age, c.Percentage, c.Category, c.Religion, c.Location, disability)
}
