package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/udaan-api/internal/models"
)

// AppContextRepository persists per-client preferences.
type AppContextRepository struct {
	db *sqlx.DB
}

// NewAppContextRepository constructs the repository.
func NewAppContextRepository(db *sqlx.DB) *AppContextRepository {
	return &AppContextRepository{db: db}
}

// Get fetches the stored context for a client. Returns sql.ErrNoRows when absent.
func (r *AppContextRepository) Get(ctx context.Context, clientID string) (*models.AppContext, error) {
	const query = `SELECT client_id, theme, session_seen, updated_at FROM app_contexts WHERE client_id = $1`
	var appCtx models.AppContext
	if err := r.db.GetContext(ctx, &appCtx, query, clientID); err != nil {
		return nil, err
	}
	return &appCtx, nil
}

// Upsert writes the full context for a client.
func (r *AppContextRepository) Upsert(ctx context.Context, appCtx *models.AppContext) error {
	const query = `INSERT INTO app_contexts (client_id, theme, session_seen, updated_at)
VALUES (:client_id, :theme, :session_seen, :updated_at)
ON CONFLICT (client_id)
DO UPDATE SET theme = EXCLUDED.theme, session_seen = EXCLUDED.session_seen, updated_at = EXCLUDED.updated_at`
	appCtx.UpdatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, query, appCtx); err != nil {
		return fmt.Errorf("upsert app context: %w", err)
	}
	return nil
}
