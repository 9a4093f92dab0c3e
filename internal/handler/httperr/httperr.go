// Package httperr turns usecase errors into the JSON error body every
// endpoint shares: {"error":{"message":...},"detail":...}.
package httperr

import (
	"errors"
	"net/http"

	"offer-landing/internal/domain/checkout"
	"offer-landing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the error middleware to log
// and writes msg as the public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Classify maps a landing error to its HTTP status and public message.
// Anything unrecognised is a 500.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrViewNotFound):
		return http.StatusNotFound, "Landing view not found"
	case errors.Is(err, checkout.ErrInvalidEmail):
		return http.StatusUnprocessableEntity, "Introduce un email válido"
	case errors.Is(err, checkout.ErrCheckoutClosed):
		return http.StatusConflict, "Checkout is not open"
	case errors.Is(err, checkout.ErrCheckoutInFlight):
		return http.StatusConflict, "Checkout is already being processed"
	case errors.Is(err, errs.ErrTooManyViews):
		return http.StatusServiceUnavailable, "Too many active visitors, try again later"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func AbortWithLandingError(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
