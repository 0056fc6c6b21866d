// Package httputil holds the response helpers shared by every service handler.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
)

const internalErrorMessage = "An unexpected error occurred"

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and an {error, message} body. Errors that are
// not domain errors, and internal domain errors, never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := internalErrorMessage

	var de *dErrors.Error
	if code != dErrors.CodeInternal && errors.As(err, &de) {
		message = de.Message
	}

	WriteJSON(w, dErrors.HTTPStatus(code), insurance.ErrorResponse{
		Error:   string(code),
		Message: message,
	})
}
