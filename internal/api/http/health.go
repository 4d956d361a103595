package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Projects  int       `json:"projects"`
}

// CatalogSizer reports how many projects the catalog holds.
type CatalogSizer interface {
	Len() int
}

type HealthHandler struct {
	serviceName string
	version     string
	catalog     CatalogSizer
}

func NewHealthHandler(serviceName, version string, catalog CatalogSizer) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		catalog:     catalog,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	projects := 0
	if h.catalog != nil {
		projects = h.catalog.Len()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Projects:  projects,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
