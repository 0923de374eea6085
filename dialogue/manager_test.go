package dialogue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebus/hermes/proto"
)

// fakeClock is a settable clock for driving timeout checks.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func startRequest(siteID string) *proto.DialogueStartSession {
	return &proto.DialogueStartSession{
		Init: proto.DialogueSessionInit{
			Type:         proto.DialogueTypeAction,
			Text:         "what can I do for you",
			IntentFilter: []string{"GetTime", "GetWeather"},
		},
		SiteID: siteID,
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	c := m.StartRequested(startRequest("kitchen"))
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateStarting, m.State("kitchen"))

	c = m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateActive, m.State("kitchen"))

	sess, ok := m.Session("kitchen")
	require.True(t, ok)
	assert.Equal(t, "abc123", sess.SessionID)
	assert.Equal(t, []string{"GetTime", "GetWeather"}, sess.IntentFilter)

	c = m.ContinueRequested(&proto.DialogueContinueSession{
		SessionID:    "abc123",
		SiteID:       "kitchen",
		IntentFilter: []string{"GetTime"},
	})
	assert.Equal(t, ConditionNone, c.Kind)

	sess, _ = m.Session("kitchen")
	assert.Equal(t, []string{"GetTime"}, sess.IntentFilter)
	assert.Equal(t, StateActive, sess.State)

	c = m.EndRequested(&proto.DialogueEndSession{SessionID: "abc123", SiteID: "kitchen"})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateEnding, m.State("kitchen"))

	c = m.SessionEnded(&proto.DialogueSessionEnded{
		SessionID:   "abc123",
		SiteID:      "kitchen",
		Termination: proto.SessionTermination{Reason: proto.TerminationNominal},
	})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateIdle, m.State("kitchen"))

	_, ok = m.Session("kitchen")
	assert.False(t, ok)
}

func TestManager_SessionMismatch(t *testing.T) {
	var conditions []Condition
	m := NewManager(Config{
		Clock:       newFakeClock(),
		OnCondition: func(c Condition) { conditions = append(conditions, c) },
	})

	m.StartRequested(startRequest("kitchen"))
	m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	c := m.ContinueRequested(&proto.DialogueContinueSession{SessionID: "zzz999", SiteID: "kitchen"})
	assert.Equal(t, ConditionSessionMismatch, c.Kind)
	assert.Equal(t, "zzz999", c.SessionID)

	c = m.EndRequested(&proto.DialogueEndSession{SessionID: "zzz999", SiteID: "kitchen"})
	assert.Equal(t, ConditionSessionMismatch, c.Kind)

	// The real session is untouched.
	sess, ok := m.Session("kitchen")
	require.True(t, ok)
	assert.Equal(t, "abc123", sess.SessionID)
	assert.Equal(t, StateActive, sess.State)

	assert.Len(t, conditions, 2)
}

func TestManager_StaleNotifications(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	c := m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "ghost", SiteID: "kitchen"})
	assert.Equal(t, ConditionStaleNotification, c.Kind)
	assert.Equal(t, StateIdle, m.State("kitchen"))

	c = m.SessionEnded(&proto.DialogueSessionEnded{SessionID: "ghost", SiteID: "kitchen"})
	assert.Equal(t, ConditionStaleNotification, c.Kind)

	c = m.SessionQueued(&proto.DialogueSessionQueued{SessionID: "ghost", SiteID: "kitchen"})
	assert.Equal(t, ConditionStaleNotification, c.Kind)
}

func TestManager_EndedWithoutEndRequest(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	m.StartRequested(startRequest("kitchen"))
	m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	// The dialogue manager may end an active session on its own, e.g. on an
	// intent being handled or an ASR timeout.
	c := m.SessionEnded(&proto.DialogueSessionEnded{
		SessionID:   "abc123",
		SiteID:      "kitchen",
		Termination: proto.SessionTermination{Reason: proto.TerminationTimeout},
	})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateIdle, m.State("kitchen"))
}

func TestManager_QueueingAndPromotion(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	m.StartRequested(startRequest("kitchen"))
	m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	second := startRequest("kitchen")
	second.CustomData = "second"
	third := startRequest("kitchen")
	third.CustomData = "third"

	assert.Equal(t, ConditionNone, m.StartRequested(second).Kind)
	assert.Equal(t, ConditionNone, m.StartRequested(third).Kind)

	sess, _ := m.Session("kitchen")
	assert.Equal(t, 2, sess.Pending)

	c := m.SessionQueued(&proto.DialogueSessionQueued{SessionID: "q1", SiteID: "kitchen"})
	assert.Equal(t, ConditionNone, c.Kind)

	m.SessionEnded(&proto.DialogueSessionEnded{
		SessionID:   "abc123",
		SiteID:      "kitchen",
		Termination: proto.SessionTermination{Reason: proto.TerminationNominal},
	})

	// Queued requests promote in arrival order.
	sess, ok := m.Session("kitchen")
	require.True(t, ok)
	assert.Equal(t, StateStarting, sess.State)
	assert.Equal(t, "second", sess.CustomData)
	assert.Equal(t, 1, sess.Pending)
}

func TestManager_SitesAreIndependent(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	m.StartRequested(startRequest("kitchen"))
	m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	m.StartRequested(startRequest("bedroom"))

	assert.Equal(t, StateActive, m.State("kitchen"))
	assert.Equal(t, StateStarting, m.State("bedroom"))
	assert.Len(t, m.Sessions(), 2)
}

func TestManager_DefaultSite(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	// An empty site id and "default" address the same site.
	m.StartRequested(startRequest(""))
	c := m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "default"})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateActive, m.State(""))
}

func TestManager_CheckTimeouts(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(Config{Timeout: 30 * time.Second, Clock: clock})

	m.StartRequested(startRequest("kitchen"))
	queued := startRequest("kitchen")
	queued.CustomData = "queued"
	m.StartRequested(queued)

	clock.Advance(10 * time.Second)
	assert.Empty(t, m.CheckTimeouts())

	clock.Advance(25 * time.Second)
	expired := m.CheckTimeouts()
	require.Len(t, expired, 1)
	assert.Equal(t, ConditionSessionTimeout, expired[0].Kind)
	assert.Equal(t, "kitchen", expired[0].SiteID)
	assert.Equal(t, StateStarting, expired[0].State)

	// The queued request takes over after the abandonment.
	sess, ok := m.Session("kitchen")
	require.True(t, ok)
	assert.Equal(t, StateStarting, sess.State)
	assert.Equal(t, "queued", sess.CustomData)
}

func TestManager_ActiveSessionsNeverTimeOut(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(Config{Timeout: 30 * time.Second, Clock: clock})

	m.StartRequested(startRequest("kitchen"))
	m.SessionStarted(&proto.DialogueSessionStarted{SessionID: "abc123", SiteID: "kitchen"})

	clock.Advance(10 * time.Minute)
	assert.Empty(t, m.CheckTimeouts())
	assert.Equal(t, StateActive, m.State("kitchen"))
}

func TestManager_Observe(t *testing.T) {
	m := NewManager(Config{Clock: newFakeClock()})

	c := m.Observe(startRequest("kitchen"))
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateStarting, m.State("kitchen"))

	// Non-lifecycle messages pass through without effect.
	c = m.Observe(&proto.TtsSay{Text: "hello"})
	assert.Equal(t, ConditionNone, c.Kind)
	assert.Equal(t, StateStarting, m.State("kitchen"))
}
