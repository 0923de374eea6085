package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

func (s *Server) HandleHealth(wr http.ResponseWriter, r *http.Request) {
	writeJSON(wr, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleTopics lists every registered message kind with its topic template
// and subscription filter.
func (s *Server) HandleTopics(wr http.ResponseWriter, r *http.Request) {
	type topicInfo struct {
		Kind     string `json:"kind"`
		Template string `json:"template"`
		Filter   string `json:"filter"`
	}

	kinds := s.registry.Kinds()
	topics := make([]topicInfo, 0, len(kinds))
	for _, kind := range kinds {
		tmpl, ok := s.registry.Template(kind)
		if !ok {
			continue
		}
		topics = append(topics, topicInfo{
			Kind:     string(kind),
			Template: tmpl.String(),
			Filter:   tmpl.Filter(),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Kind < topics[j].Kind })

	writeJSON(wr, http.StatusOK, topics)
}

// HandleSessions lists every site with a live or queued session.
func (s *Server) HandleSessions(wr http.ResponseWriter, r *http.Request) {
	sessions := s.sessions.Sessions()
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].SiteID < sessions[j].SiteID })
	writeJSON(wr, http.StatusOK, sessions)
}

// HandleSessionDetail reports the session state of one site. A site the
// tracker has never seen, or one that is idle, is reported as idle rather
// than 404; any site id is a valid query.
func (s *Server) HandleSessionDetail(wr http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteId")
	session, ok := s.sessions.Session(siteID)
	if !ok {
		writeJSON(wr, http.StatusOK, map[string]string{
			"siteId": siteID,
			"state":  "idle",
		})
		return
	}
	writeJSON(wr, http.StatusOK, session)
}

func writeJSON(wr http.ResponseWriter, status int, v any) {
	wr.Header().Set("Content-Type", "application/json")
	wr.WriteHeader(status)
	if err := json.NewEncoder(wr).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
