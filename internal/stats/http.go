package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/Lightzzz011/project-showcase-api/internal/api/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/metrics", h.metrics)
}

func (h *Handler) metrics(c *gin.Context) {
	snap := h.svc.Snapshot()
	response.OK(c, snap, response.WithGeneratedAt(h.svc.GeneratedAt()))
}
