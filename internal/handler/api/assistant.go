package api

import (
	"net/http"

	reqdto "campus-tickets/internal/handler/dto/request"
	resdto "campus-tickets/internal/handler/dto/response"
	"campus-tickets/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantUseCase usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

// @Summary Send an utterance to the booking assistant
// @Description Interpret a free-text utterance within a conversation session and
// @Description return a proposal, confirmation result or informational reply
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.AssistantMessageRequest true "Session + utterance"
// @Success 200 {object} resdto.AssistantReplyResponse
// @Failure 400 {object} map[string]string
// @Router /api/assistant/messages [post]
func (h *AssistantHandler) PostMessage(c *gin.Context) {
	var req reqdto.AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reply, err := h.assistantUseCase.HandleUtterance(c.Request.Context(), req.SessionID, req.Utterance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssistantReply(reply))
}
