package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_EmptyPathUsesSeed(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(Seed()), s.Len())
}

func TestLoadFile_JSON(t *testing.T) {
	p := writeFile(t, "catalog.json", `[
  {"id": "x-1", "title": "One", "tags": ["Go"], "demo": "none", "created_at": "2024-01-02", "difficulty": "Beginner"},
  {"id": "x-2", "title": "Two", "tags": ["Rust"], "created_at": "2024-03-04"}
]`)

	s, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	got, err := s.Get("x-1")
	require.NoError(t, err)
	assert.Equal(t, "One", got.Title)
	assert.Equal(t, "2024-01-02", got.CreatedAt.String())
	assert.Equal(t, domain.DifficultyBeginner, got.Difficulty)
}

func TestLoadFile_YAML(t *testing.T) {
	p := writeFile(t, "catalog.yaml", `
- id: y-1
  title: Yaml Project
  tags: [Go, CLI]
  created_at: 2023-05-06
`)

	s, err := LoadFile(p)
	require.NoError(t, err)

	got, err := s.Get("y-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "CLI"}, got.Tags)
	assert.Equal(t, "2023-05-06", got.CreatedAt.String())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "catalog.toml", ""))
		assert.ErrorContains(t, err, "unsupported catalog format")
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "catalog.json", `[{"id":"a","created_at":"yesterday"}]`))
		assert.Error(t, err)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "catalog.json", `[{"id":"a","created_at":"2024-01-01"},{"id":"a","created_at":"2024-01-01"}]`))
		assert.ErrorIs(t, err, domain.ErrDuplicateID)
	})
}
