package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
	"github.com/noah-isme/udaan-api/pkg/response"
)

type assistantService interface {
	Ask(ctx context.Context, req dto.AskRequest) (*dto.AskResponse, error)
	FAQ() []dto.FAQEntry
}

// AssistantHandler exposes the Q&A helper.
type AssistantHandler struct {
	assistant assistantService
}

// NewAssistantHandler builds an AssistantHandler.
func NewAssistantHandler(assistant assistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Ask godoc
// @Summary Ask the assistant
// @Description Single question with optional scholarship context. Assistant failures return the fallback answer with fallback=true.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body dto.AskRequest true "Question"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assistant/ask [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid question payload"))
		return
	}
	answer, err := h.assistant.Ask(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, answer)
}

// FAQ godoc
// @Summary Frequently asked questions
// @Tags Assistant
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistant/faq [get]
func (h *AssistantHandler) FAQ(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.assistant.FAQ())
}
