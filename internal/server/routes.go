package server

import "net/http"

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.Health)
	mux.Handle("/v1/keymap", s.requireAuth(s.Keymap))
	mux.Handle("/v1/keymap/reset", s.requireAuth(s.KeymapReset))
	mux.Handle("/v1/language", s.requireAuth(s.Language))
	mux.Handle("/v1/history", s.requireAuth(s.HistoryEvents))
	mux.Handle("/v1/history/stats", s.requireAuth(s.HistoryStats))
	mux.Handle("/ws", s.requireAuth(s.WS))
}

// WS hands the connection to the hub.
func (s *Server) WS(w http.ResponseWriter, r *http.Request) {
	s.Hub.ServeWS(w, r)
}
