// Package seed loads scholarship fixtures from YAML into the store.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/noah-isme/udaan-api/internal/eligibility"
	"github.com/noah-isme/udaan-api/internal/models"
)

// File is the fixture document layout.
type File struct {
	Scholarships []Scholarship `yaml:"scholarships"`
}

// Scholarship is one fixture entry. Eligibility is kept loose so it can be
// checked with the same strict decoder the catalog uses.
type Scholarship struct {
	ID                  string                 `yaml:"id"`
	Name                string                 `yaml:"name"`
	Provider            string                 `yaml:"provider"`
	Amount              string                 `yaml:"amount"`
	Description         string                 `yaml:"description"`
	ApplicationDeadline string                 `yaml:"application_deadline"`
	Benefits            []string               `yaml:"benefits"`
	WebsiteURL          string                 `yaml:"website_url"`
	Eligibility         map[string]interface{} `yaml:"eligibility"`
}

type store interface {
	FindByID(ctx context.Context, id string) (*models.ScholarshipRow, error)
	Upsert(ctx context.Context, row *models.ScholarshipRow) error
}

// Result counts what Apply wrote.
type Result struct {
	Inserted int
	Updated  int
}

// Written is the number of rows stored.
func (r Result) Written() int {
	return r.Inserted + r.Updated
}

// Parse reads and validates a fixture document.
func Parse(r io.Reader) ([]models.ScholarshipRow, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc File
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []models.ScholarshipRow{}, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	rows := make([]models.ScholarshipRow, 0, len(doc.Scholarships))
	for i, s := range doc.Scholarships {
		if s.Name == "" {
			return nil, fmt.Errorf("scholarship %d: name is required", i+1)
		}
		raw, err := json.Marshal(s.Eligibility)
		if err != nil {
			return nil, fmt.Errorf("scholarship %q: encode eligibility: %w", s.Name, err)
		}
		if _, err := eligibility.DecodeRule(raw); err != nil {
			return nil, fmt.Errorf("scholarship %q: %w", s.Name, err)
		}
		benefits := s.Benefits
		if benefits == nil {
			benefits = []string{}
		}
		rows = append(rows, models.ScholarshipRow{
			ID:                  s.ID,
			Name:                s.Name,
			Provider:            s.Provider,
			Amount:              s.Amount,
			Description:         s.Description,
			Eligibility:         types.JSONText(raw),
			ApplicationDeadline: s.ApplicationDeadline,
			Benefits:            benefits,
			WebsiteURL:          s.WebsiteURL,
		})
	}
	return rows, nil
}

// LoadFile parses the fixture at path.
func LoadFile(path string) ([]models.ScholarshipRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Apply upserts every row. Rows without an id always insert.
func Apply(ctx context.Context, repo store, rows []models.ScholarshipRow, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res Result
	for i := range rows {
		exists := false
		if rows[i].ID != "" {
			_, err := repo.FindByID(ctx, rows[i].ID)
			switch {
			case err == nil:
				exists = true
			case !errors.Is(err, sql.ErrNoRows):
				return res, fmt.Errorf("look up scholarship %s: %w", rows[i].ID, err)
			}
		}
		if err := repo.Upsert(ctx, &rows[i]); err != nil {
			return res, err
		}
		action := "inserted"
		if exists {
			action = "updated"
			res.Updated++
		} else {
			res.Inserted++
		}
		logger.Info("seeded scholarship",
			zap.String("id", rows[i].ID),
			zap.String("name", rows[i].Name),
			zap.String("action", action))
	}
	return res, nil
}
