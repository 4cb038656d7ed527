package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/middleware"
	"github.com/noah-isme/udaan-api/internal/models"
	"github.com/noah-isme/udaan-api/internal/service"
	"github.com/noah-isme/udaan-api/pkg/response"
)

type matchService interface {
	Match(ctx context.Context, clientID string, criteria models.FilterCriteria) (*dto.MatchResult, error)
	Latest(clientID string) (*dto.MatchResult, error)
	Check(ctx context.Context, id string, criteria models.FilterCriteria) (*dto.EligibilityCheck, error)
}

type exportRenderer interface {
	Render(result *dto.MatchResult, format string) (*service.ExportFile, error)
}

// MatchHandler runs the eligibility filter for a caller.
type MatchHandler struct {
	matches matchService
	exports exportRenderer
}

// NewMatchHandler builds a MatchHandler.
func NewMatchHandler(matches matchService, exports exportRenderer) *MatchHandler {
	return &MatchHandler{matches: matches, exports: exports}
}

// Match godoc
// @Summary Find matching scholarships
// @Description Filters the loaded catalog with the applicant criteria. Numbers are compared as given.
// @Tags Matching
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier"
// @Param payload body models.FilterCriteria true "Applicant criteria"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /scholarships/match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	result, err := h.matches.Match(c.Request.Context(), clientIDFromContext(c), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "total", result.Total)
	middleware.SetMeta(c, "matching", result.Matching)
	response.JSON(c, http.StatusOK, result, middleware.ExtractMeta(c))
}

// Latest godoc
// @Summary Latest match result
// @Description Returns the caller's most recently completed match
// @Tags Matching
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholarships/match/latest [get]
func (h *MatchHandler) Latest(c *gin.Context) {
	result, err := h.matches.Latest(clientIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Check godoc
// @Summary Explain eligibility
// @Description Evaluates each eligibility check of one scholarship
// @Tags Matching
// @Accept json
// @Produce json
// @Param id path string true "Scholarship ID"
// @Param payload body models.FilterCriteria true "Applicant criteria"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholarships/{id}/check [post]
func (h *MatchHandler) Check(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	check, err := h.matches.Check(c.Request.Context(), c.Param("id"), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, check)
}

// Export godoc
// @Summary Export matching scholarships
// @Tags Matching
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param payload body models.FilterCriteria true "Applicant criteria"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /scholarships/match/export [post]
func (h *MatchHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	result, err := h.matches.Match(c.Request.Context(), clientIDFromContext(c), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Render(result, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
