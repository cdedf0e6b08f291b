package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/resume"
)

// HTTPStatus maps the error taxonomy to HTTP status codes: 502 for upstream
// transport failures, 503 for a warming-up model, 400 for invalid input, and
// 500 for everything else.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *generation.TransportError:
		return http.StatusBadGateway
	case *generation.NotReadyError:
		return http.StatusServiceUnavailable
	case *resume.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
