package handler

import (
	"net/http"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendHandler handles direct recommendation and comparison requests
// that bypass the dialogue.
type RecommendHandler struct {
	chatService *service.ChatService
	maxTopN     int
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(chatService *service.ChatService, maxTopN int) *RecommendHandler {
	return &RecommendHandler{
		chatService: chatService,
		maxTopN:     maxTopN,
	}
}

// Recommend handles POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.TopN > h.maxTopN {
		req.TopN = h.maxTopN
	}

	response := h.chatService.Recommend(c.Request.Context(), &req.Requirements, req.TopN)
	c.JSON(http.StatusOK, response)
}

// Compare handles POST /api/v1/compare
func (h *RecommendHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	comparison, err := h.chatService.Compare(req.ProductA, req.ProductB)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.CompareResponse{Comparison: comparison})
}
