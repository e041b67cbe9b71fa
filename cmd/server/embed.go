//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the embedded chat frontend. Unknown paths fall
// back to index.html for client-side routing.
func setupStaticFiles(router *gin.Engine, log *zap.Logger) {
	log.Info("using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		log.Fatal("Failed to get dist subdirectory", zap.Error(err))
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if len(urlPath) >= 4 && urlPath[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "index.html"
		} else {
			cleanPath = cleanPath[1:]
		}

		if content, ok := readFile(distFS, cleanPath); ok {
			c.Data(http.StatusOK, contentType(cleanPath), content)
			return
		}

		// SPA fallback
		content, ok := readFile(distFS, "index.html")
		if !ok {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
}

func readFile(fsys fs.FS, name string) ([]byte, bool) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return nil, false
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return content, true
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "text/html; charset=utf-8"
	}
}
