package contact

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(zerolog.Nop()).Register(router.Group("/api/v1"))
	return router
}

func post(t *testing.T, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	setupRouter().ServeHTTP(rr, req)
	return rr
}

const missingAll = `{"ok": false, "error": "missing_fields", "need": ["name", "email", "message"]}`

func TestSubmit_Success(t *testing.T) {
	rr := post(t, "application/json", `{"name":"Ada","email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"ok": true,
		"message": "received",
		"data": {"name": "Ada", "email": "ada@example.com", "message": "hello"}
	}`, rr.Body.String())
}

func TestSubmit_Form(t *testing.T) {
	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}
	rr := post(t, "application/x-www-form-urlencoded", form.Encode())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"received"`)
}

func TestSubmit_MissingFieldsAlwaysListsAll(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"only name", "application/json", `{"name":"A"}`},
		{"empty email", "application/json", `{"name":"A","email":"","message":"m"}`},
		{"empty object", "application/json", `{}`},
		{"malformed json", "application/json", `{"name":`},
		{"no body", "", ""},
		{"wrong type", "application/json", `{"name":1,"email":"e","message":"m"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, tt.contentType, tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, missingAll, rr.Body.String())
		})
	}
}
