// Package response holds the envelope every API endpoint answers with.
//
//	success: {"ok": true, "data": ..., "meta": {...}, "message": "..."}
//	failure: {"ok": false, "error": "<code>", "need": [...]}
package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// Stable error codes returned in failure envelopes.
const (
	ErrCodeNotFound      = "not_found"
	ErrCodeMissingFields = "missing_fields"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeInternal      = "internal_error"
)

// Meta describes the page returned by a list endpoint.
type Meta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

type Success struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message,omitempty"`
	Meta        *Meta  `json:"meta,omitempty"`
	Data        any    `json:"data"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

type Failure struct {
	OK    bool     `json:"ok"`
	Error string   `json:"error"`
	Need  []string `json:"need,omitempty"`
}

// Option decorates a success envelope.
type Option func(*Success)

func WithMeta(m Meta) Option {
	return func(s *Success) { s.Meta = &m }
}

func WithMessage(msg string) Option {
	return func(s *Success) { s.Message = msg }
}

func WithGeneratedAt(ts string) Option {
	return func(s *Success) { s.GeneratedAt = ts }
}

// NewSuccess builds a success envelope around data.
func NewSuccess(data any, opts ...Option) Success {
	s := Success{OK: true, Data: data}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewFailure builds a failure envelope for code.
func NewFailure(code string, need ...string) Failure {
	return Failure{OK: false, Error: code, Need: need}
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any, opts ...Option) {
	write(c, http.StatusOK, NewSuccess(data, opts...))
}

// Fail writes a failure envelope with status.
func Fail(c *gin.Context, status int, code string, need ...string) {
	write(c, status, NewFailure(code, need...))
}

// write renders v with two-space indentation.
func write(c *gin.Context, status int, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_ = c.Error(err)
		b, _ = json.Marshal(NewFailure(ErrCodeInternal))
		status = http.StatusInternalServerError
	}
	c.Data(status, jsonContentType, b)
}

// Abort is Fail for middleware: it stops the handler chain.
func Abort(c *gin.Context, status int, code string) {
	c.Abort()
	Fail(c, status, code)
}

func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, ErrCodeNotFound)
}
