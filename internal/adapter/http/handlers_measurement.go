package adapthttp

import "net/http"

func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		kind := r.URL.Query().Get("kind")
		items, err := s.measurements.List(ctx, userID, kind)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "result": items})

	case http.MethodPost:
		var req struct {
			Kind   string  `json:"kind"`
			Date   string  `json:"date"`
			Value  float64 `json:"value"`
			Method string  `json:"method"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.measurements.Record(ctx, userID, req.Kind, req.Date, req.Value, req.Method)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "result": entry})

	case http.MethodDelete:
		var req struct {
			Kind string `json:"kind"`
			ID   int64  `json:"id"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.measurements.Delete(ctx, req.Kind, req.ID); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "measurement deleted"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
