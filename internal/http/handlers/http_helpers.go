package handlers

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	msgNotFound      = "Not found"
	msgInternalError = "Internal server error"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return writeRawJSON(w, status, out, headers...)
}

// writeRawJSON writes an already encoded JSON document.
func writeRawJSON(w http.ResponseWriter, status int, body []byte, headers ...http.Header) error {
	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	if err := writeJSON(w, status, ErrorResponse{Error: message}); err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}

// internalError logs cause against the route and answers 500.
func internalError(w http.ResponseWriter, r *http.Request, cause error) {
	logger.Error().Err(cause).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// NotFoundHandler answers unknown routes with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowedHandler answers known routes hit with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// respond writes data as JSON, logging a failed write.
func respond(w http.ResponseWriter, data any) {
	if err := writeJSON(w, http.StatusOK, data); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
	}
}
