package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/middleware"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
	"github.com/noah-isme/udaan-api/pkg/response"
)

func clientIDFromContext(c *gin.Context) string {
	return middleware.ClientIDFrom(c)
}

func bindCriteria(c *gin.Context) (models.FilterCriteria, bool) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid criteria payload"))
		return criteria, false
	}
	return criteria, true
}
