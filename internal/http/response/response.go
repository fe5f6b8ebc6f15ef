package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
)

type APIError struct {
	Message   string   `json:"message"`
	Code      string   `json:"code,omitempty"`
	Fields    []string `json:"fields,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
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

// RespondAPIError writes an *apierr.Error with its own status; anything else is a 500.
func RespondAPIError(c *gin.Context, err error) {
	ae, ok := apierr.As(err)
	if !ok {
		if err != nil {
			_ = c.Error(err)
		}
		RespondError(c, http.StatusInternalServerError, apierr.CodeInternal, errors.New("internal server error"))
		return
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message:   ae.Error(),
			Code:      ae.Code,
			Fields:    ae.Fields,
			Retryable: ae.Retryable,
		},
	})
}

// AbortAPIError is RespondAPIError for middleware.
func AbortAPIError(c *gin.Context, err error) {
	RespondAPIError(c, err)
	c.Abort()
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
