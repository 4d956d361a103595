// Package web serves the static site next to the API: the landing, docs
// and viewer pages, any other file under the static directory, and the
// fallback page for unknown paths.
package web

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lightzzz011/project-showcase-api/internal/api/response"
)

// APIPrefix marks paths answered with JSON rather than the fallback page.
const APIPrefix = "/api/"

const (
	indexPage  = "index.html"
	docsPage   = "docs.html"
	viewerPage = "viewer.html"
)

type Handler struct {
	dir string
}

// NewHandler serves files from dir.
func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.page(indexPage))
	r.GET("/docs", h.page(docsPage))
	r.GET("/viewer", h.page(viewerPage))
}

func (h *Handler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := filepath.Join(h.dir, name)
		if !isFile(p) {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		c.File(p)
	}
}

// NoRoute handles every unmatched path. API paths get a JSON not_found;
// GET and HEAD requests for an existing static file get the file; anything
// else gets the index page with a 404 status.
func (h *Handler) NoRoute(c *gin.Context) {
	reqPath := c.Request.URL.Path
	if strings.HasPrefix(reqPath, APIPrefix) {
		response.NotFound(c)
		return
	}

	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		if p, ok := h.resolve(reqPath); ok {
			c.File(p)
			return
		}
	}

	body, err := os.ReadFile(filepath.Join(h.dir, indexPage))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", body)
}

// resolve maps a URL path to a regular file inside dir.
func (h *Handler) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	p := filepath.Join(h.dir, filepath.FromSlash(clean))
	return p, isFile(p)
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
