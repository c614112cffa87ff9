package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/api/llm"
	"finance-tracker/api/logger"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// Chat forwards one user message to the assistant and returns its reply.
// Upstream failures come back as a JSON error body, never a crash.
func Chat(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !llm.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chatbot is not configured."})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided."})
		return
	}

	reply, err := llm.GenerateReply(c.Request.Context(), req.Message)
	if err != nil {
		logger.Get().Error("assistant request failed",
			zap.Int64("user_id", claims.UserID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
