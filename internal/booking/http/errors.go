package http

import (
	"errors"
	"net/http"

	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/httpx"
	"github.com/castlinehq/castline/pkg/slogx"
)

// errorResponse is the uniform error envelope for every failure.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeServiceError maps service sentinels onto HTTP statuses. The sentinel
// messages are client-facing contract and are serialized verbatim; anything
// unmapped is a 500 with a generic message and a logged cause.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, service.ErrBadEmailLogin),
		errors.Is(err, service.ErrBadPhoneLogin),
		errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrPasswordReset),
		errors.Is(err, service.ErrEmailVerification):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound), errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrTelephoneTaken),
		errors.Is(err, service.ErrCalendarExists),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrOTPExpired):
		status = http.StatusBadRequest
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
		return
	}

	httpx.WriteJSON(w, status, errorResponse{Code: status, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
