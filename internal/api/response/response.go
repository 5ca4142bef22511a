package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/konselor/internal/utils"
)

// APIError is the only error body the service sends.
type APIError struct {
	Error string `json:"error"`
}

// Error answers with a safe message only. The full error goes onto the
// gin context so RequestLogger can record it server-side.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		c.JSON(status, APIError{Error: utils.MsgInternal})
		return
	}
	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		c.JSON(status, APIError{Error: ae.Message})
		return
	}
	c.JSON(status, APIError{Error: http.StatusText(status)})
}

// Abort is Error for middleware: later handlers in the chain do not run.
func Abort(c *gin.Context, err error) {
	c.Abort()
	Error(c, err)
}
