package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/logging"
)

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrUnauthenticated),
		errors.Is(err, errdefs.ErrTokenExpired),
		errors.Is(err, errdefs.ErrTokenMalformed):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied),
		errors.Is(err, errdefs.ErrNotEnrolled):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, errdefs.ErrInvalidDueDate),
		errors.Is(err, errdefs.ErrInvalidGrade),
		errors.Is(err, errdefs.ErrDeadlinePassed),
		errors.Is(err, errdefs.ErrAlreadyEnrolled):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

// writeError maps the error to a status code. Client errors echo the error
// text; server errors are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	if statusCode == http.StatusInternalServerError {
		if logger, ok := logging.GetFromContext(r.Context()); ok {
			logger.Error(r.Context(), "request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		writeErrorJSON(w, statusCode, "internal server error")
		return
	}
	writeErrorJSON(w, statusCode, err.Error())
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errdefs.ErrValidation
	}
	return nil
}
