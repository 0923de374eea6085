package dialogue

import (
	"log/slog"
	"sync"
	"time"

	"github.com/voicebus/hermes/proto"
)

// DefaultTimeout bounds how long a session may sit in Starting or Ending
// before it is abandoned.
const DefaultTimeout = 30 * time.Second

// Config tunes a Manager. Zero values select the defaults.
type Config struct {
	// Timeout for sessions stuck in Starting or Ending.
	Timeout time.Duration
	// Clock override for tests.
	Clock Clock
	// OnCondition, when set, receives every recorded anomaly.
	OnCondition func(Condition)
}

// Manager owns the full mapping from site id to session state. Transitions
// for one site are serialized; different sites proceed independently.
type Manager struct {
	timeout     time.Duration
	clock       Clock
	onCondition func(Condition)

	mu    sync.RWMutex
	sites map[string]*site
}

type site struct {
	mu      sync.Mutex
	id      string
	session *Session
	// pending holds start requests queued behind the current session,
	// first-requested first-served.
	pending []*proto.DialogueStartSession
	// enteredAt is when the session entered its current state, used for
	// timeout bookkeeping in Starting/Ending.
	enteredAt time.Time
}

// NewManager builds a session state machine.
func NewManager(cfg Config) *Manager {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	return &Manager{
		timeout:     cfg.Timeout,
		clock:       cfg.Clock,
		onCondition: cfg.OnCondition,
		sites:       make(map[string]*site),
	}
}

func (m *Manager) site(siteID string) *site {
	siteID = proto.SiteOrDefault(siteID)
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sites[siteID]
	if !ok {
		s = &site{id: siteID}
		m.sites[siteID] = s
	}
	return s
}

func (m *Manager) report(kind ConditionKind, s *site, sessionID string, state State) Condition {
	c := Condition{
		Kind:      kind,
		SiteID:    s.id,
		SessionID: sessionID,
		State:     state,
		At:        m.clock.Now(),
	}
	if kind != ConditionNone {
		slog.Warn("dialogue condition recorded",
			"condition", kind.String(), "siteId", c.SiteID, "sessionId", c.SessionID, "state", state.String())
		if m.onCondition != nil {
			m.onCondition(c)
		}
	}
	return c
}

// Observe dispatches a decoded message to the matching transition handler.
// Non-lifecycle messages are ignored and report ConditionNone.
func (m *Manager) Observe(msg proto.Message) Condition {
	switch v := msg.(type) {
	case *proto.DialogueStartSession:
		return m.StartRequested(v)
	case *proto.DialogueSessionQueued:
		return m.SessionQueued(v)
	case *proto.DialogueSessionStarted:
		return m.SessionStarted(v)
	case *proto.DialogueContinueSession:
		return m.ContinueRequested(v)
	case *proto.DialogueEndSession:
		return m.EndRequested(v)
	case *proto.DialogueSessionEnded:
		return m.SessionEnded(v)
	default:
		return Condition{Kind: ConditionNone}
	}
}

// StartRequested handles a startSession request. An idle site moves to
// Starting; a busy site queues the request in arrival order.
func (m *Manager) StartRequested(msg *proto.DialogueStartSession) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.pending = append(s.pending, msg)
		slog.Debug("start request queued behind existing session",
			"siteId", s.id, "state", s.session.State.String(), "queued", len(s.pending))
		return m.report(ConditionNone, s, "", s.session.State)
	}

	m.beginStarting(s, msg)
	return m.report(ConditionNone, s, "", StateStarting)
}

// beginStarting installs a Starting session from a start request.
// The caller holds s.mu.
func (m *Manager) beginStarting(s *site, msg *proto.DialogueStartSession) {
	now := m.clock.Now()
	s.session = &Session{
		SiteID:                  s.id,
		State:                   StateStarting,
		CustomData:              msg.CustomData,
		IntentFilter:            msg.Init.IntentFilter,
		SendIntentNotRecognized: msg.Init.SendIntentNotRecognized,
		CreatedAt:               now,
		LastActivity:            now,
	}
	s.enteredAt = now
	slog.Debug("session starting", "siteId", s.id)
}

// SessionStarted binds the assigned session id and moves Starting to Active.
// A notification for a site not in Starting is stale and ignored.
func (m *Manager) SessionStarted(msg *proto.DialogueSessionStarted) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.State != StateStarting {
		return m.report(ConditionStaleNotification, s, msg.SessionID, stateOf(s.session))
	}

	now := m.clock.Now()
	s.session.SessionID = msg.SessionID
	s.session.State = StateActive
	if msg.CustomData != "" {
		s.session.CustomData = msg.CustomData
	}
	s.session.LastActivity = now
	s.enteredAt = now
	slog.Info("session active", "siteId", s.id, "sessionId", msg.SessionID)
	return m.report(ConditionNone, s, msg.SessionID, StateActive)
}

// SessionQueued acknowledges that the external dialogue manager also queued
// a start request. It is informational; queue order here stays authoritative.
func (m *Manager) SessionQueued(msg *proto.DialogueSessionQueued) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return m.report(ConditionStaleNotification, s, msg.SessionID, stateOf(s.session))
	}
	slog.Debug("session queued acknowledged", "siteId", s.id, "sessionId", msg.SessionID)
	return m.report(ConditionNone, s, msg.SessionID, stateOf(s.session))
}

// ContinueRequested updates the active session's filter and custom data.
// It is valid only when the target session id matches the current Active
// session; otherwise the state is left unchanged and a mismatch is recorded.
func (m *Manager) ContinueRequested(msg *proto.DialogueContinueSession) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.State != StateActive || s.session.SessionID != msg.SessionID {
		return m.report(ConditionSessionMismatch, s, msg.SessionID, stateOf(s.session))
	}

	if msg.IntentFilter != nil {
		s.session.IntentFilter = msg.IntentFilter
	}
	if msg.CustomData != "" {
		s.session.CustomData = msg.CustomData
	}
	s.session.SendIntentNotRecognized = msg.SendIntentNotRecognized
	s.session.LastActivity = m.clock.Now()
	slog.Debug("session continued", "siteId", s.id, "sessionId", msg.SessionID)
	return m.report(ConditionNone, s, msg.SessionID, StateActive)
}

// EndRequested moves the current Active session to Ending. A request for any
// other session id is a mismatch and leaves the state unchanged.
func (m *Manager) EndRequested(msg *proto.DialogueEndSession) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.State != StateActive || s.session.SessionID != msg.SessionID {
		return m.report(ConditionSessionMismatch, s, msg.SessionID, stateOf(s.session))
	}

	now := m.clock.Now()
	s.session.State = StateEnding
	if msg.CustomData != "" {
		s.session.CustomData = msg.CustomData
	}
	s.session.LastActivity = now
	s.enteredAt = now
	slog.Debug("session ending", "siteId", s.id, "sessionId", msg.SessionID)
	return m.report(ConditionNone, s, msg.SessionID, StateEnding)
}

// SessionEnded releases the session and promotes the next queued start
// request, if any. The notification must name the current session; it is
// accepted from Active as well as Ending, since the dialogue manager may
// terminate a session it never received an end request for.
func (m *Manager) SessionEnded(msg *proto.DialogueSessionEnded) Condition {
	s := m.site(msg.SiteID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.SessionID != msg.SessionID ||
		(s.session.State != StateEnding && s.session.State != StateActive) {
		return m.report(ConditionStaleNotification, s, msg.SessionID, stateOf(s.session))
	}

	slog.Info("session ended",
		"siteId", s.id, "sessionId", msg.SessionID, "reason", string(msg.Termination.Reason))
	s.session = nil
	m.promoteLocked(s)
	return m.report(ConditionNone, s, msg.SessionID, stateOf(s.session))
}

// promoteLocked moves the oldest pending start request into Starting.
// The caller holds s.mu and s.session is nil.
func (m *Manager) promoteLocked(s *site) {
	if len(s.pending) == 0 {
		return
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	m.beginStarting(s, next)
	slog.Debug("pending start request promoted", "siteId", s.id, "remaining", len(s.pending))
}

// CheckTimeouts abandons sessions stuck in Starting or Ending longer than
// the configured timeout, returning one condition per abandoned session.
// Callers drive it from a periodic tick; the manager runs no goroutine of
// its own.
func (m *Manager) CheckTimeouts() []Condition {
	m.mu.RLock()
	sites := make([]*site, 0, len(m.sites))
	for _, s := range m.sites {
		sites = append(sites, s)
	}
	m.mu.RUnlock()

	now := m.clock.Now()
	var expired []Condition
	for _, s := range sites {
		s.mu.Lock()
		if s.session != nil &&
			(s.session.State == StateStarting || s.session.State == StateEnding) &&
			now.Sub(s.enteredAt) >= m.timeout {
			sessionID := s.session.SessionID
			state := s.session.State
			s.session = nil
			m.promoteLocked(s)
			expired = append(expired, m.report(ConditionSessionTimeout, s, sessionID, state))
		}
		s.mu.Unlock()
	}
	return expired
}

// Session returns a snapshot of the site's current session. ok is false when
// the site is idle with nothing queued.
func (m *Manager) Session(siteID string) (Session, bool) {
	siteID = proto.SiteOrDefault(siteID)
	m.mu.RLock()
	s, exists := m.sites[siteID]
	m.mu.RUnlock()
	if !exists {
		return Session{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil && len(s.pending) == 0 {
		return Session{}, false
	}
	return snapshotLocked(s), true
}

// Sessions returns a snapshot of every site with a live or queued session.
func (m *Manager) Sessions() []Session {
	m.mu.RLock()
	sites := make([]*site, 0, len(m.sites))
	for _, s := range m.sites {
		sites = append(sites, s)
	}
	m.mu.RUnlock()

	out := make([]Session, 0, len(sites))
	for _, s := range sites {
		s.mu.Lock()
		if s.session != nil || len(s.pending) > 0 {
			out = append(out, snapshotLocked(s))
		}
		s.mu.Unlock()
	}
	return out
}

// State reports the lifecycle state of a site, Idle when unknown.
func (m *Manager) State(siteID string) State {
	sess, ok := m.Session(siteID)
	if !ok {
		return StateIdle
	}
	return sess.State
}

func snapshotLocked(s *site) Session {
	var snap Session
	if s.session != nil {
		snap = *s.session
		snap.IntentFilter = append([]string(nil), s.session.IntentFilter...)
	} else {
		snap = Session{SiteID: s.id, State: StateIdle}
	}
	snap.StateName = snap.State.String()
	snap.Pending = len(s.pending)
	return snap
}

func stateOf(sess *Session) State {
	if sess == nil {
		return StateIdle
	}
	return sess.State
}
