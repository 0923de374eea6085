// Package web exposes a small JSON API for inspecting the protocol registry
// and the live dialogue sessions of a running monitor.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voicebus/hermes/dialogue"
	"github.com/voicebus/hermes/registry"
)

type Server struct {
	registry *registry.Registry
	sessions *dialogue.Manager
}

func NewServer(reg *registry.Registry, sessions *dialogue.Manager) *Server {
	return &Server{registry: reg, sessions: sessions}
}

// Routes returns the HTTP routes for the introspection API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/health", s.HandleHealth)
	r.Get("/api/topics", s.HandleTopics)
	r.Get("/api/sessions", s.HandleSessions)
	r.Get("/api/sessions/{siteId}", s.HandleSessionDetail)
	return r
}
