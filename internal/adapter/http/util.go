package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"healthlog/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
}

// writeDomainError maps domain errors onto HTTP statuses. Unclassified
// storage failures become a generic 500 so driver text never leaks out.
func writeDomainError(w http.ResponseWriter, err error) {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrMethodInUse):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, domain.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &storageErr):
		writeError(w, http.StatusInternalServerError, errors.New("internal storage error"))
	default:
		writeError(w, http.StatusBadRequest, err)
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
