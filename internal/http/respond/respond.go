package respond

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// FieldError describes a single request-validation failure.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// JSON writes a response body with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	write(w, status, payload)
}

// Error writes an error body of the form {"detail": message}.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"detail": message})
}

// ValidationError writes a 422 with per-field detail.
func ValidationError(w http.ResponseWriter, fields []FieldError) {
	write(w, http.StatusUnprocessableEntity, map[string]any{"detail": fields})
}

func write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("respond: encode payload failed")
	}
}
