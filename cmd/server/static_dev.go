//go:build !embed
// +build !embed

package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupStaticFiles serves the chat frontend from the local filesystem for
// development (no embedding).
func setupStaticFiles(router *gin.Engine, log *zap.Logger) {
	log.Info("using local filesystem for frontend assets (development mode)")

	router.StaticFile("/", "./cmd/server/web/dist/index.html")

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}
		c.File("./cmd/server/web/dist/index.html")
	})
}
