package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lightzzz011/project-showcase-api/internal/api/response"
)

func abortInternal(c *gin.Context) {
	response.Abort(c, http.StatusInternalServerError, response.ErrCodeInternal)
}

func abortRateLimited(c *gin.Context, retryAfter time.Duration) {
	secs := int(retryAfter / time.Second)
	if retryAfter%time.Second != 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
	response.Abort(c, http.StatusTooManyRequests, response.ErrCodeRateLimited)
}
