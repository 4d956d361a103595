package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
)

// Load returns the store for path, or the seed catalog when path is empty.
func Load(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return New(Seed())
	}
	return LoadFile(path)
}

// LoadFile reads a list of project records from a .json, .yaml or .yml file.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []domain.Project
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &records)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &records)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return New(records)
}
