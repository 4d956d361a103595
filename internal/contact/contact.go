// Package contact accepts contact-form submissions. Messages are validated
// and echoed back; nothing is stored or delivered.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Lightzzz011/project-showcase-api/internal/api/response"
)

// RequiredFields lists every field a submission must carry. A rejected
// submission always reports all of them, whichever were actually missing.
var RequiredFields = []string{"name", "email", "message"}

// Message is a contact-form submission.
type Message struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var msg Message
	if err := c.ShouldBind(&msg); err != nil {
		h.log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("contact rejected")
		response.Fail(c, http.StatusBadRequest, response.ErrCodeMissingFields, RequiredFields...)
		return
	}

	h.log.Info().
		Str("request_id", c.GetString("request_id")).
		Int("message_len", len(msg.Message)).
		Msg("contact received")

	response.OK(c, msg, response.WithMessage("received"))
}
