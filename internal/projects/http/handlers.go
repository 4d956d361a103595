package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lightzzz011/project-showcase-api/internal/api/response"
	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
	"github.com/Lightzzz011/project-showcase-api/internal/projects/query"
)

func (h *Handler) list(c *gin.Context) {
	var raw query.Raw
	// Every field binds as a string, so this only fails on a broken query string;
	// an empty Raw then falls back to defaults.
	_ = c.ShouldBindQuery(&raw)

	res := query.FilterAndPaginate(h.store.All(), query.ParseParams(raw))
	response.OK(c, res.Data, response.WithMeta(response.Meta{
		Total:   res.Total,
		Page:    res.Page,
		PerPage: res.PerPage,
	}))
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrCodeInternal)
		return
	}
	response.OK(c, p)
}

func (h *Handler) skills(c *gin.Context) {
	response.OK(c, h.store.Tags())
}
