package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
)

// writeError maps the domain error taxonomy onto status codes. Anything
// outside the taxonomy is logged and answered with a generic 500.
func writeError(w http.ResponseWriter, log *slog.Logger, err error, what string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeValidation,
			ErrorDescription: verr.Error(),
			Details:          verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		writeBadRequest(w, err.Error())
	case errors.Is(err, domain.ErrDuplicateRole):
		httpx.WriteJSON(w, http.StatusConflict, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeDuplicateRole,
			ErrorDescription: err.Error(),
		})
	case errors.Is(err, domain.ErrProtectedRole):
		httpx.WriteJSON(w, http.StatusConflict, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeProtectedRole,
			ErrorDescription: err.Error(),
		})
	case errors.Is(err, domain.ErrRoleNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeRoleNotFound,
			ErrorDescription: err.Error(),
		})
	default:
		log.Error("failed to "+what, slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeServerError,
			ErrorDescription: "Failed to " + what,
		})
	}
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, consolesdk.ErrorResponse{
		Error:            consolesdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}

func writeUserNotFound(w http.ResponseWriter, id string) {
	httpx.WriteJSON(w, http.StatusNotFound, consolesdk.ErrorResponse{
		Error:            consolesdk.ErrorCodeUserNotFound,
		ErrorDescription: "No user with id " + id,
	})
}
