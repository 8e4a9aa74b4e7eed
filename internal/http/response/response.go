package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/solemate/solemate-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondFromError maps the domain error taxonomy onto HTTP statuses in
// one place: validation -> 422, not-found -> 404, anything else -> 500.
func RespondFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		RespondError(c, http.StatusUnprocessableEntity, "invalid_data", err)
	case errors.Is(err, errs.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
