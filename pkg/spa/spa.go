// Package spa serves the prebuilt single-page-app bundle with
// fallback-to-index routing for client-side navigation.
package spa

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler serves files from distDir. Paths that do not match a real file
// fall back to the bundle entry document. The entry document is served with
// no-cache so deploys are picked up; hashed assets get a long immutable
// cache lifetime.
func Handler(distDir string) gin.HandlerFunc {
	dist, err := filepath.Abs(distDir)
	if err != nil {
		dist = distDir
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		reqPath := c.Request.URL.Path
		if strings.HasSuffix(reqPath, "/") {
			reqPath += "index.html"
		}

		candidate := filepath.Join(dist, filepath.Clean("/"+reqPath))
		if !strings.HasPrefix(candidate, dist) {
			c.String(http.StatusForbidden, "Forbidden")
			return
		}

		if info, err := os.Stat(candidate); err == nil {
			if info.IsDir() {
				candidate = filepath.Join(candidate, "index.html")
				if _, err := os.Stat(candidate); err != nil {
					serveIndex(c, dist)
					return
				}
			}
			setCacheHeaders(c, candidate)
			c.File(candidate)
			return
		}

		// Fall back to the SPA entry point for unmatched routes.
		serveIndex(c, dist)
	}
}

func serveIndex(c *gin.Context, dist string) {
	index := filepath.Join(dist, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	setCacheHeaders(c, index)
	c.File(index)
}

func setCacheHeaders(c *gin.Context, path string) {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		c.Header("Cache-Control", "no-cache")
	} else {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
	}
}
