package adapthttp

import "net/http"

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := s.accounts.List(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "result": users})

	case http.MethodDelete:
		var req struct {
			ID int64 `json:"id"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.accounts.Delete(r.Context(), req.ID); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "user deleted"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
