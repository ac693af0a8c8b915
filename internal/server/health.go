package server

import (
	"net/http"
	"os"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"version": s.Version,
		"pid":     os.Getpid(),
	})
}
