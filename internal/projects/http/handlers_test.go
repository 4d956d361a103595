package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/catalog"
	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
)

type listBody struct {
	OK   bool `json:"ok"`
	Meta struct {
		Total   int `json:"total"`
		Page    int `json:"page"`
		PerPage int `json:"perPage"`
	} `json:"meta"`
	Data []domain.Project `json:"data"`
}

type itemBody struct {
	OK    bool           `json:"ok"`
	Data  domain.Project `json:"data"`
	Error string         `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	New(catalog.MustNew(catalog.Seed())).Register(router.Group("/api/v1"))
	return router
}

func get(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestList_Defaults(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects")
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 10, body.Meta.PerPage)
	require.Len(t, body.Data, 3)
	assert.Equal(t, "proj-1", body.Data[0].ID)
}

func TestList_TagFilter(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects?tag=JavaScript")
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Crazy Chess Analyzer", body.Data[0].Title)
}

func TestList_SecondPage(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects?page=2&perPage=2")
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 2, body.Meta.PerPage)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "proj-2", body.Data[0].ID)
}

func TestList_CoercesBadPagination(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects?page=abc&perPage=999")
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 50, body.Meta.PerPage)

	rr = get(t, setupRouter(t), "/api/v1/projects?page=-4&perPage=0")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 10, body.Meta.PerPage)
}

func TestList_EmptyPageIsArray(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects?page=9")
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["data"]))
}

func TestList_PageBeyondIntRangeIsEmpty(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects?page=99999999999999999999")
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, math.MaxInt, body.Meta.Page)
}

func TestGet_Found(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects/proj-3")
	require.Equal(t, http.StatusOK, rr.Code)

	var body itemBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "DriversProject", body.Data.Title)
	assert.Equal(t, "2025-07-15", body.Data.CreatedAt.String())
}

func TestGet_NotFound(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/projects/proj-99")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"ok": false, "error": "not_found"}`, rr.Body.String())
}

func TestSkills(t *testing.T) {
	rr := get(t, setupRouter(t), "/api/v1/skills")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		OK   bool     `json:"ok"`
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.IsNonDecreasing(t, body.Data)
	assert.Len(t, body.Data, 10)

	seen := map[string]bool{}
	for _, s := range body.Data {
		assert.False(t, seen[s], "duplicate tag %q", s)
		seen[s] = true
	}
}
