package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/middleware"
	"github.com/noah-isme/udaan-api/internal/models"
)

type appContextServiceStub struct {
	theme   models.Theme
	clients []string
}

func (s *appContextServiceStub) Get(ctx context.Context, clientID string) (*models.AppContext, error) {
	s.clients = append(s.clients, clientID)
	def := models.DefaultAppContext(clientID)
	return &def, nil
}

func (s *appContextServiceStub) Update(ctx context.Context, clientID string, req dto.UpdatePreferencesRequest) (*models.AppContext, error) {
	s.clients = append(s.clients, clientID)
	appCtx := models.DefaultAppContext(clientID)
	if req.Theme != nil {
		appCtx.Theme = *req.Theme
	}
	return &appCtx, nil
}

func (s *appContextServiceStub) ToggleTheme(ctx context.Context, clientID string) (*models.AppContext, error) {
	s.clients = append(s.clients, clientID)
	s.theme = models.ThemeLight
	return &models.AppContext{ClientID: clientID, Theme: s.theme}, nil
}

func newPreferencesRouter(stub *appContextServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPreferencesHandler(stub)
	r := gin.New()
	r.Use(middleware.ClientID())
	r.GET("/preferences", h.Get)
	r.PUT("/preferences", h.Update)
	r.POST("/preferences/theme/toggle", h.ToggleTheme)
	return r
}

func TestPreferencesHandlerGetIssuesClientID(t *testing.T) {
	stub := &appContextServiceStub{}
	r := newPreferencesRouter(stub)
	w := serve(r, jsonRequest(t, http.MethodGet, "/preferences", nil))

	require.Equal(t, http.StatusOK, w.Code)
	issued := w.Header().Get(middleware.ClientIDHeader)
	require.NotEmpty(t, issued)
	assert.Equal(t, []string{issued}, stub.clients)

	var appCtx models.AppContext
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &appCtx))
	assert.Equal(t, models.ThemeDark, appCtx.Theme)
}

func TestPreferencesHandlerToggleTheme(t *testing.T) {
	stub := &appContextServiceStub{}
	r := newPreferencesRouter(stub)
	req := jsonRequest(t, http.MethodPost, "/preferences/theme/toggle", nil)
	req.Header.Set(middleware.ClientIDHeader, "client-1")
	w := serve(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"client-1"}, stub.clients)
	assert.Equal(t, models.ThemeLight, stub.theme)
}

func TestPreferencesHandlerUpdateInvalidBody(t *testing.T) {
	r := newPreferencesRouter(&appContextServiceStub{})
	w := serve(r, jsonRequest(t, http.MethodPut, "/preferences", `{"session_seen":"yes"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
