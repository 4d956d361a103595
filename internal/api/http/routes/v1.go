package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Lightzzz011/project-showcase-api/internal/contact"
	"github.com/Lightzzz011/project-showcase-api/internal/projects/catalog"
	projectshttp "github.com/Lightzzz011/project-showcase-api/internal/projects/http"
	"github.com/Lightzzz011/project-showcase-api/internal/stats"
)

type V1Deps struct {
	Catalog *catalog.Store
	Stats   *stats.Service
	Log     zerolog.Logger
}

// RegisterV1 mounts the /api/v1 endpoints on api.
func RegisterV1(api *gin.RouterGroup, dep V1Deps) {
	v1 := api.Group("/v1")

	projectshttp.New(dep.Catalog).Register(v1)
	stats.NewHandler(dep.Stats).Register(v1)
	contact.NewHandler(dep.Log).Register(v1)
}
