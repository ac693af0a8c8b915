package server

import (
	"net/http"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

type historyResponse struct {
	Items []*entity.ActionEvent `json:"items"`
}

func (s *Server) HistoryEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := parseIntQuery(r, "limit", 50)
		offset := parseIntQuery(r, "offset", 0)
		events, err := s.History.Recent(r.Context(), limit, offset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if events == nil {
			events = []*entity.ActionEvent{}
		}
		writeJSON(w, http.StatusOK, historyResponse{Items: events})
	case http.MethodDelete:
		// days=0 (or absent) clears the whole history.
		days := parseIntQuery(r, "days", 0)
		removed, err := s.History.Purge(r.Context(), days)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (s *Server) HistoryStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	analytics, err := s.History.Analytics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}
