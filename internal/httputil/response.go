package httputil

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the envelope of every JSON response without payload.
type Response struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message,omitempty" example:"there is no category matching your query"`
}

// NewError aborts the request with the status and a response carrying the
// error message.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: err.Error(),
	})
}

// ServerError logs the error and aborts the request with a generic message
// that only contains the request id.
func ServerError(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
}
