package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/catalog"
)

// OpenCatalog loads the project catalog from path, or the built-in seed
// when path is empty.
func OpenCatalog(path string, log zerolog.Logger) (*catalog.Store, error) {
	store, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	source := path
	if source == "" {
		source = "seed"
	}
	log.Info().Str("source", source).Int("projects", store.Len()).Msg("catalog loaded")
	return store, nil
}
