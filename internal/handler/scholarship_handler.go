package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/middleware"
	"github.com/noah-isme/udaan-api/internal/models"
	"github.com/noah-isme/udaan-api/pkg/response"
)

type catalogService interface {
	Records() ([]models.Scholarship, error)
	Find(id string) (*models.Scholarship, error)
	Status() dto.CatalogStatus
	Refresh(ctx context.Context) error
}

// ScholarshipHandler exposes the loaded scholarship catalog.
type ScholarshipHandler struct {
	catalog catalogService
}

// NewScholarshipHandler builds a ScholarshipHandler.
func NewScholarshipHandler(catalog catalogService) *ScholarshipHandler {
	return &ScholarshipHandler{catalog: catalog}
}

// List godoc
// @Summary List scholarships
// @Description Returns every loaded scholarship, newest first
// @Tags Scholarships
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /scholarships [get]
func (h *ScholarshipHandler) List(c *gin.Context) {
	records, err := h.catalog.Records()
	if err != nil {
		response.Error(c, err)
		return
	}
	status := h.catalog.Status()
	middleware.SetMeta(c, "count", len(records))
	middleware.SetCacheHit(c, status.Source == "cache")
	response.JSON(c, http.StatusOK, records, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get scholarship
// @Tags Scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) Get(c *gin.Context) {
	record, err := h.catalog.Find(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Status godoc
// @Summary Catalog status
// @Description Reports loading/ready/error state, record counts and the last fetch error
// @Tags Scholarships
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scholarships/status [get]
func (h *ScholarshipHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Status())
}

// Refresh godoc
// @Summary Reload scholarships
// @Description Re-reads the store. On failure the catalog reports the error and the request fails with it.
// @Tags Scholarships
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /scholarships/refresh [post]
func (h *ScholarshipHandler) Refresh(c *gin.Context) {
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.catalog.Status())
}
