package handler

import (
	"net/http"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversation-related HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.chatService.Chat(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Requirements handles GET /api/v1/conversations/:id/requirements
func (h *ChatHandler) Requirements(c *gin.Context) {
	conversationID := c.Param("id")
	if conversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing conversation id"})
		return
	}

	response, err := h.chatService.Requirements(c.Request.Context(), conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get requirements: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// EndConversation handles DELETE /api/v1/conversations/:id
func (h *ChatHandler) EndConversation(c *gin.Context) {
	conversationID := c.Param("id")
	if conversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing conversation id"})
		return
	}

	if err := h.chatService.EndConversation(c.Request.Context(), conversationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end conversation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
