package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// bindingStatus maps binding-update failures onto HTTP statuses. The use
// case validates before touching state, so anything but a chord conflict is
// a client error.
func bindingStatus(err error) int {
	if errors.Is(err, usecase.ErrChordConflict) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func parseIntQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}
