package response

import (
	"errors"
	"net/http"

	"paypal-subscription-webhook/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK sends a 200 response with a message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error sends an error response. *apperror.AppError values map to
// their status and client message; anything else is an unexpected
// failure and gets the generic validation-error body.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error al validar el pago"})
}
