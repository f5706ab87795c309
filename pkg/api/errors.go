package api

import (
	"errors"
	"net/http"
)

// HTTPError pairs a status code with a stable error code for clients.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest            = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound              = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrRequestEntityTooLarge = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Status: http.StatusUnprocessableEntity, Code: "validation_error"}
	ErrInternalServerError   = HTTPError{Status: http.StatusInternalServerError, Code: "internal_server_error"}
)

var (
	ErrUnknownSchema = errors.New("unknown schema")
	ErrInvalidQuery  = errors.New("invalid query parameter")
)
