package http

import "github.com/Lightzzz011/project-showcase-api/internal/projects/catalog"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Handler {
	return &Handler{store: store}
}
