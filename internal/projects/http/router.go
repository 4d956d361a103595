package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.GET("/skills", h.skills)
}
