// Package server exposes quarterdeck's HTTP API and WebSocket console
// surface.
package server

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/config"
)

// Server carries the daemon's HTTP surface dependencies. The serve command
// wires the fields and mounts Handler on the listener.
type Server struct {
	Version string

	Manager *config.Manager
	Hub     *Hub

	Keymaps      *usecase.GetKeymapUseCase
	SetBinding   *usecase.SetBindingUseCase
	ResetBinding *usecase.ResetBindingUseCase
	ResetAll     *usecase.ResetAllBindingsUseCase
	Languages    *usecase.GetLanguageUseCase
	SetLanguage  *usecase.SetLanguageUseCase
	History      *usecase.ActionHistoryUseCase
}

// Handler assembles the full surface: /healthz open, the v1 API and the
// WebSocket upgrade behind token auth, all of it traced through otelhttp.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return otelhttp.NewHandler(mux, "quarterdeck.http")
}
