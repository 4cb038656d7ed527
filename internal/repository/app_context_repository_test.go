package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/models"
)

func TestAppContextRepositoryGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppContextRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT client_id, theme, session_seen, updated_at FROM app_contexts WHERE client_id = $1")).
		WithArgs("client-1").
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "theme", "session_seen", "updated_at"}).
			AddRow("client-1", "light", true, time.Now()))

	appCtx, err := repo.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, appCtx.Theme)
	assert.True(t, appCtx.SessionSeen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppContextRepositoryGetMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppContextRepository(db)

	mock.ExpectQuery("FROM app_contexts").
		WithArgs("client-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "client-2")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppContextRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppContextRepository(db)

	mock.ExpectExec("INSERT INTO app_contexts").
		WithArgs("client-1", "dark", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	appCtx := models.DefaultAppContext("client-1")
	require.NoError(t, repo.Upsert(context.Background(), &appCtx))
	assert.False(t, appCtx.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
