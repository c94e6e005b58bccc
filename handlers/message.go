package handlers

import (
	"net/http"
	"strconv"

	"tutorhub/models"
	"tutorhub/services/message"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler exposes student/tutor messaging endpoints.
type MessageHandler struct {
	Service message.MessageService
}

// SendMessageHandler handles POST /messages.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	msg, err := h.Service.SendMessage(c.GetString("userID"), c.GetString("role"), req)
	if err != nil {
		utils.GetLogger().Warn("Message send failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListConversationsHandler handles GET /messages/conversations.
func (h *MessageHandler) ListConversationsHandler(c *gin.Context) {
	convs, err := h.Service.ListConversations(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}

// ListMessagesHandler handles GET /messages/conversations/:id.
func (h *MessageHandler) ListMessagesHandler(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	msgs, err := h.Service.ListMessages(c.GetString("userID"), c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkReadHandler handles POST /messages/conversations/:id/read.
func (h *MessageHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Service.MarkConversationRead(c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked read"})
}
