package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
	"github.com/noah-isme/udaan-api/pkg/response"
)

type appContextService interface {
	Get(ctx context.Context, clientID string) (*models.AppContext, error)
	Update(ctx context.Context, clientID string, req dto.UpdatePreferencesRequest) (*models.AppContext, error)
	ToggleTheme(ctx context.Context, clientID string) (*models.AppContext, error)
}

// PreferencesHandler exposes the caller's application context.
type PreferencesHandler struct {
	service appContextService
}

// NewPreferencesHandler builds a PreferencesHandler.
func NewPreferencesHandler(service appContextService) *PreferencesHandler {
	return &PreferencesHandler{service: service}
}

// Get godoc
// @Summary Get preferences
// @Tags Preferences
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} response.Envelope
// @Router /preferences [get]
func (h *PreferencesHandler) Get(c *gin.Context) {
	appCtx, err := h.service.Get(c.Request.Context(), clientIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, appCtx)
}

// Update godoc
// @Summary Update preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Param payload body dto.UpdatePreferencesRequest true "Preferences patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /preferences [put]
func (h *PreferencesHandler) Update(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid preferences payload"))
		return
	}
	appCtx, err := h.service.Update(c.Request.Context(), clientIDFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, appCtx)
}

// ToggleTheme godoc
// @Summary Toggle theme
// @Tags Preferences
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} response.Envelope
// @Router /preferences/theme/toggle [post]
func (h *PreferencesHandler) ToggleTheme(c *gin.Context) {
	appCtx, err := h.service.ToggleTheme(c.Request.Context(), clientIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, appCtx)
}
