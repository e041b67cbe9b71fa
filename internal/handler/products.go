package handler

import (
	"net/http"

	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductsHandler serves the loaded catalog
type ProductsHandler struct {
	chatService *service.ChatService
}

// NewProductsHandler creates a new products handler
func NewProductsHandler(chatService *service.ChatService) *ProductsHandler {
	return &ProductsHandler{
		chatService: chatService,
	}
}

// List handles GET /api/v1/products
func (h *ProductsHandler) List(c *gin.Context) {
	products := h.chatService.Products()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}
