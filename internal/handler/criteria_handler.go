package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	"github.com/noah-isme/udaan-api/pkg/response"
)

// CriteriaHandler serves the values the criteria form offers.
type CriteriaHandler struct {
	options dto.CriteriaOptions
}

// NewCriteriaHandler builds a CriteriaHandler.
func NewCriteriaHandler() *CriteriaHandler {
	classes := make([]dto.ClassOption, 0, models.ClassPostgraduate)
	for class := 1; class <= models.ClassPostgraduate; class++ {
		classes = append(classes, dto.ClassOption{Value: class, Label: models.ClassLabel(class)})
	}
	return &CriteriaHandler{options: dto.CriteriaOptions{
		Classes:    classes,
		Categories: models.Categories,
		Religions:  models.Religions,
		Locations:  models.Locations,
		Defaults:   models.DefaultCriteria(),
	}}
}

// Options godoc
// @Summary Criteria options
// @Tags Matching
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /criteria/options [get]
func (h *CriteriaHandler) Options(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.options)
}
