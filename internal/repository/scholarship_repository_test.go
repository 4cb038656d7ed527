package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/models"
	"github.com/noah-isme/udaan-api/pkg/database"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

type observerStub struct {
	labels []string
}

func (o *observerStub) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

var scholarshipColumnNames = []string{"id", "name", "provider", "amount", "description", "eligibility", "application_deadline", "benefits", "website_url", "created_at"}

func TestScholarshipRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	observer := &observerStub{}
	repo := NewScholarshipRepository(db, observer)

	newer := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(scholarshipColumnNames).
		AddRow("s2", "Merit", "State", "₹50,000", "desc", []byte(`{"minClass":1}`), "2025-12-31", "{Tuition,Books}", "https://a.example.com", newer).
		AddRow("s1", "Need", "Trust", "", "desc", []byte(`{}`), "2025-11-30", "{}", "https://b.example.com", older)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, provider, amount, description, eligibility, application_deadline, benefits, website_url, created_at FROM scholarships ORDER BY created_at DESC")).
		WillReturnRows(rows)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID)
	assert.Equal(t, pq.StringArray{"Tuition", "Books"}, list[0].Benefits)
	assert.JSONEq(t, `{"minClass":1}`, string(list[0].Eligibility))
	assert.Equal(t, []string{"scholarships.list_all"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipRepositoryListAllMissingTable(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db, nil)

	mock.ExpectQuery("FROM scholarships").
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "scholarships" does not exist`})

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, database.IsUndefinedTable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM scholarships WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(scholarshipColumnNames))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipRepositoryUpsertAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db, nil)

	mock.ExpectExec("INSERT INTO scholarships").
		WithArgs(sqlmock.AnyArg(), "Merit", "State", "", "", sqlmock.AnyArg(), "2025-12-31", sqlmock.AnyArg(), "https://a.example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	row := &models.ScholarshipRow{
		Name:                "Merit",
		Provider:            "State",
		Eligibility:         types.JSONText(`{}`),
		ApplicationDeadline: "2025-12-31",
		WebsiteURL:          "https://a.example.com",
	}
	require.NoError(t, repo.Upsert(context.Background(), row))
	assert.NotEmpty(t, row.ID)
	assert.False(t, row.CreatedAt.IsZero())
	assert.NotNil(t, row.Benefits)
	assert.NoError(t, mock.ExpectationsWereMet())
}
