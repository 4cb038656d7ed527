package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/udaan-api/internal/models"
)

const scholarshipColumns = `id, name, provider, amount, description, eligibility, application_deadline, benefits, website_url, created_at`

// QueryObserver receives database timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// ScholarshipRepository reads and seeds the scholarships table.
type ScholarshipRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewScholarshipRepository creates a new repository instance. observer may be nil.
func NewScholarshipRepository(db *sqlx.DB, observer QueryObserver) *ScholarshipRepository {
	return &ScholarshipRepository{db: db, observer: observer}
}

// ListAll returns every scholarship, newest first.
func (r *ScholarshipRepository) ListAll(ctx context.Context) ([]models.ScholarshipRow, error) {
	defer r.observe("scholarships.list_all", time.Now())

	query := fmt.Sprintf("SELECT %s FROM scholarships ORDER BY created_at DESC", scholarshipColumns)
	var rows []models.ScholarshipRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	return rows, nil
}

// FindByID returns a single scholarship row.
func (r *ScholarshipRepository) FindByID(ctx context.Context, id string) (*models.ScholarshipRow, error) {
	defer r.observe("scholarships.find_by_id", time.Now())

	query := fmt.Sprintf("SELECT %s FROM scholarships WHERE id = $1", scholarshipColumns)
	var row models.ScholarshipRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert inserts a scholarship or replaces the stored copy with the same id.
func (r *ScholarshipRepository) Upsert(ctx context.Context, row *models.ScholarshipRow) error {
	defer r.observe("scholarships.upsert", time.Now())

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.Benefits == nil {
		row.Benefits = []string{}
	}

	const query = `INSERT INTO scholarships (id, name, provider, amount, description, eligibility, application_deadline, benefits, website_url, created_at)
VALUES (:id, :name, :provider, :amount, :description, :eligibility, :application_deadline, :benefits, :website_url, :created_at)
ON CONFLICT (id)
DO UPDATE SET name = EXCLUDED.name, provider = EXCLUDED.provider, amount = EXCLUDED.amount,
              description = EXCLUDED.description, eligibility = EXCLUDED.eligibility,
              application_deadline = EXCLUDED.application_deadline, benefits = EXCLUDED.benefits,
              website_url = EXCLUDED.website_url`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert scholarship %s: %w", row.ID, err)
	}
	return nil
}

func (r *ScholarshipRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}
