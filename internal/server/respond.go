package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/boxkit/pkg/errors"
)

// errorEnvelope is the JSON shape of every error response.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error's code to an HTTP status and writes the JSON
// error envelope. Unknown errors become 500s with a generic message so
// internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}

	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    string(code),
		Message: msg,
	}})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidDimension,
		errors.ErrCodeIrregularGrid,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidFigure,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeDocumentNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
