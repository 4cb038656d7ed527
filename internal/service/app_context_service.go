package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

type appContextRepository interface {
	Get(ctx context.Context, clientID string) (*models.AppContext, error)
	Upsert(ctx context.Context, appCtx *models.AppContext) error
}

// AppContextService loads and persists per-client preferences. Every change
// is stored before it is returned.
type AppContextService struct {
	repo      appContextRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAppContextService constructs the service.
func NewAppContextService(repo appContextRepository, validate *validator.Validate, logger *zap.Logger) *AppContextService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppContextService{repo: repo, validator: validate, logger: logger}
}

// Get returns the stored context or the defaults when none exists.
func (s *AppContextService) Get(ctx context.Context, clientID string) (*models.AppContext, error) {
	if clientID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "client id is required")
	}
	appCtx, err := s.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			def := models.DefaultAppContext(clientID)
			return &def, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load preferences")
	}
	return appCtx, nil
}

// Update applies the patch and persists the result.
func (s *AppContextService) Update(ctx context.Context, clientID string, req dto.UpdatePreferencesRequest) (*models.AppContext, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid preferences payload")
	}
	appCtx, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if req.Theme != nil {
		appCtx.Theme = *req.Theme
	}
	if req.SessionSeen != nil {
		appCtx.SessionSeen = *req.SessionSeen
	}
	return s.save(ctx, appCtx)
}

// ToggleTheme flips between the dark and light themes.
func (s *AppContextService) ToggleTheme(ctx context.Context, clientID string) (*models.AppContext, error) {
	appCtx, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if appCtx.Theme == models.ThemeLight {
		appCtx.Theme = models.ThemeDark
	} else {
		appCtx.Theme = models.ThemeLight
	}
	return s.save(ctx, appCtx)
}

func (s *AppContextService) save(ctx context.Context, appCtx *models.AppContext) (*models.AppContext, error) {
	if err := s.repo.Upsert(ctx, appCtx); err != nil {
		s.logger.Error("persist app context", zap.String("client_id", appCtx.ClientID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save preferences")
	}
	return appCtx, nil
}
