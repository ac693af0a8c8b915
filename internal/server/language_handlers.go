package server

import (
	"encoding/json"
	"net/http"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
)

type languageResponse struct {
	Language  string              `json:"language"`
	Available []port.LanguageInfo `json:"available"`
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (s *Server) Language(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		current, available, err := s.Languages.Execute(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, languageResponse{Language: current, Available: available})
	case http.MethodPut:
		var req setLanguageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
			return
		}
		if err := s.SetLanguage.Execute(r.Context(), req.Language); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		current, available, err := s.Languages.Execute(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, languageResponse{Language: current, Available: available})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}
