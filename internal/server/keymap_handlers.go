package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
)

func (s *Server) Keymap(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		doc, err := s.Keymaps.Execute(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	case http.MethodPatch:
		var req port.SetBindingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
			return
		}
		if err := s.SetBinding.Execute(r.Context(), req); err != nil {
			writeError(w, bindingStatus(err), err)
			return
		}
		s.writeKeymap(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

// KeymapReset restores one binding, or the whole keymap when the body names
// no action.
func (s *Server) KeymapReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req port.ResetBindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	var err error
	if req.Action == "" {
		err = s.ResetAll.Execute(r.Context())
	} else {
		err = s.ResetBinding.Execute(r.Context(), req)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeKeymap(w, r)
}

// writeKeymap answers a successful mutation with the fresh document.
func (s *Server) writeKeymap(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Keymaps.Execute(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
