package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/payload"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

// Response is the JSON envelope of every API response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details carries the validation
// report of an invalid payload.
type ErrorDetail struct {
	Code    string           `json:"code"`
	Message string           `json:"message,omitempty"`
	Details validator.Report `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, r *http.Request, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func writeData(w http.ResponseWriter, log *slog.Logger, r *http.Request, data any) {
	writeJSON(w, log, r, http.StatusOK, Response{Data: data})
}

func writeError(w http.ResponseWriter, log *slog.Logger, r *http.Request, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeJSON(w, log, r, status, Response{Error: detail})
}

// errorToDetail maps err to a status code and the error body.
func errorToDetail(err error) (int, *ErrorDetail) {
	if report := validator.ExtractReport(err); report != nil {
		return ErrUnprocessableEntity.Status, &ErrorDetail{
			Code:    ErrUnprocessableEntity.Code,
			Message: "payload is invalid",
			Details: report,
		}
	}

	httpErr := ErrInternalServerError
	message := http.StatusText(httpErr.Status)

	switch {
	case errors.As(err, &httpErr):
		message = http.StatusText(httpErr.Status)
	case errors.Is(err, ErrUnknownSchema):
		httpErr, message = ErrNotFound, err.Error()
	case errors.Is(err, ErrInvalidQuery):
		httpErr, message = ErrBadRequest, err.Error()
	case errors.Is(err, payload.ErrBodyTooLarge):
		httpErr, message = ErrRequestEntityTooLarge, err.Error()
	case errors.Is(err, payload.ErrMissingContentType),
		errors.Is(err, payload.ErrUnsupportedMediaType):
		httpErr, message = ErrUnsupportedMediaType, err.Error()
	case errors.Is(err, payload.ErrDecode),
		errors.Is(err, payload.ErrNotObject):
		httpErr, message = ErrBadRequest, err.Error()
	}

	return httpErr.Status, &ErrorDetail{Code: httpErr.Code, Message: message}
}
