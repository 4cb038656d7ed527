package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

type appContextRepoStub struct {
	items  map[string]models.AppContext
	writes int
	err    error
}

func (s *appContextRepoStub) Get(ctx context.Context, clientID string) (*models.AppContext, error) {
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[clientID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &item, nil
}

func (s *appContextRepoStub) Upsert(ctx context.Context, appCtx *models.AppContext) error {
	if s.err != nil {
		return s.err
	}
	if s.items == nil {
		s.items = map[string]models.AppContext{}
	}
	s.writes++
	s.items[appCtx.ClientID] = *appCtx
	return nil
}

func TestAppContextServiceGetDefaults(t *testing.T) {
	repo := &appContextRepoStub{}
	svc := NewAppContextService(repo, nil, nil)

	appCtx, err := svc.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, appCtx.Theme)
	assert.False(t, appCtx.SessionSeen)
	assert.Zero(t, repo.writes)
}

func TestAppContextServiceGetRequiresClient(t *testing.T) {
	svc := NewAppContextService(&appContextRepoStub{}, nil, nil)
	_, err := svc.Get(context.Background(), "")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAppContextServiceUpdateWritesThrough(t *testing.T) {
	repo := &appContextRepoStub{}
	svc := NewAppContextService(repo, nil, nil)
	light := models.ThemeLight
	seen := true

	appCtx, err := svc.Update(context.Background(), "client-1", dto.UpdatePreferencesRequest{Theme: &light, SessionSeen: &seen})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, appCtx.Theme)
	assert.Equal(t, 1, repo.writes)
	assert.Equal(t, models.ThemeLight, repo.items["client-1"].Theme)
	assert.True(t, repo.items["client-1"].SessionSeen)

	appCtx, err = svc.Update(context.Background(), "client-1", dto.UpdatePreferencesRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, appCtx.Theme)
	assert.True(t, appCtx.SessionSeen)
}

func TestAppContextServiceUpdateRejectsUnknownTheme(t *testing.T) {
	repo := &appContextRepoStub{}
	svc := NewAppContextService(repo, nil, nil)
	theme := models.Theme("sepia")

	_, err := svc.Update(context.Background(), "client-1", dto.UpdatePreferencesRequest{Theme: &theme})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.writes)
}

func TestAppContextServiceToggleTheme(t *testing.T) {
	repo := &appContextRepoStub{}
	svc := NewAppContextService(repo, nil, nil)

	appCtx, err := svc.ToggleTheme(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, appCtx.Theme)

	appCtx, err = svc.ToggleTheme(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, appCtx.Theme)
	assert.Equal(t, 2, repo.writes)
}

func TestAppContextServiceStorageFailure(t *testing.T) {
	svc := NewAppContextService(&appContextRepoStub{err: errors.New("db down")}, nil, nil)
	_, err := svc.ToggleTheme(context.Background(), "client-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
