package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/tmaeda/studycards-api/internal/errors"
	"github.com/tmaeda/studycards-api/internal/services"
)

// AIHandler relays tutor conversations to the completion service.
type AIHandler struct {
	aiService *services.AIService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// Chat validates the conversation log and forwards it upstream.
func (h *AIHandler) Chat(c *gin.Context) {
	type ChatRequest struct {
		UpdatedLog []services.ChatMessage `json:"updatedLog"`
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.UpdatedLog) == 0 {
		apierrors.BadRequest(c, "Invalid or missing chat log")
		return
	}
	for _, m := range req.UpdatedLog {
		if m.Role == "" || m.Content == "" {
			apierrors.BadRequest(c, "Invalid or missing chat log")
			return
		}
	}

	resp, err := h.aiService.Chat(c.Request.Context(), req.UpdatedLog)
	if err != nil {
		if errors.Is(err, services.ErrAIServiceNotConfigured) {
			apierrors.ServiceUnavailable(c, "Tutor service is not configured")
			return
		}
		log.Printf("ai handler: %v", err)
		apierrors.InternalError(c, "Failed to reach the tutor service")
		return
	}

	c.JSON(http.StatusOK, resp)
}
