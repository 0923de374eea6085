package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebus/hermes/dialogue"
	"github.com/voicebus/hermes/proto"
	"github.com/voicebus/hermes/registry"
)

func newTestServer(t *testing.T) (*httptest.Server, *dialogue.Manager) {
	t.Helper()
	sessions := dialogue.NewManager(dialogue.Config{})
	srv := httptest.NewServer(NewServer(registry.Default(), sessions).Routes())
	t.Cleanup(srv.Close)
	return srv, sessions
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	getJSON(t, srv.URL+"/api/health", &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleTopics(t *testing.T) {
	srv, _ := newTestServer(t)

	var topics []struct {
		Kind     string `json:"kind"`
		Template string `json:"template"`
		Filter   string `json:"filter"`
	}
	getJSON(t, srv.URL+"/api/topics", &topics)
	require.NotEmpty(t, topics)

	byKind := make(map[string]string, len(topics))
	for _, ti := range topics {
		byKind[ti.Kind] = ti.Template
	}
	assert.Equal(t, "hermes/tts/say", byKind[string(proto.KindTtsSay)])
	assert.Equal(t, "hermes/hotword/+wakewordId/detected", byKind[string(proto.KindHotwordDetected)])
}

func TestHandleSessions(t *testing.T) {
	srv, sessions := newTestServer(t)

	var list []dialogue.Session
	getJSON(t, srv.URL+"/api/sessions", &list)
	assert.Empty(t, list)

	sessions.Observe(&proto.DialogueStartSession{
		Init:   proto.DialogueSessionInit{Type: proto.DialogueTypeAction},
		SiteID: "kitchen",
	})
	sessions.Observe(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	getJSON(t, srv.URL+"/api/sessions", &list)
	require.Len(t, list, 1)
	assert.Equal(t, "kitchen", list[0].SiteID)
	assert.Equal(t, "abc123", list[0].SessionID)
	assert.Equal(t, "active", list[0].StateName)
}

func TestHandleSessionDetail(t *testing.T) {
	srv, sessions := newTestServer(t)

	var idle map[string]any
	getJSON(t, srv.URL+"/api/sessions/bedroom", &idle)
	assert.Equal(t, "idle", idle["state"])

	sessions.Observe(&proto.DialogueStartSession{
		Init:   proto.DialogueSessionInit{Type: proto.DialogueTypeAction},
		SiteID: "kitchen",
	})

	var sess dialogue.Session
	getJSON(t, srv.URL+"/api/sessions/kitchen", &sess)
	assert.Equal(t, "kitchen", sess.SiteID)
	assert.Equal(t, "starting", sess.StateName)
}
