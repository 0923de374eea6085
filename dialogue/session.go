// Package dialogue tracks the spoken-dialogue session lifecycle per site.
// It consumes decoded session-lifecycle messages and enforces the allowed
// state transitions, ownership and timeout rules: at most one session is in
// a non-terminal state per site at any instant.
package dialogue

import (
	"time"
)

// State is the lifecycle position of a site's current session.
type State int

const (
	// StateIdle means no session exists at the site.
	StateIdle State = iota
	// StateStarting means a start request was observed and the started
	// notification is pending.
	StateStarting
	// StateActive means the session is started and bound to a session id.
	StateActive
	// StateEnding means an end request was observed and the ended
	// notification is pending.
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Session is a snapshot of one spoken-dialogue interaction at a site. The
// session id is assigned by the external dialogue manager; this package only
// tracks and validates it.
type Session struct {
	SessionID               string    `json:"sessionId,omitempty"`
	SiteID                  string    `json:"siteId"`
	State                   State     `json:"-"`
	StateName               string    `json:"state"`
	CustomData              string    `json:"customData,omitempty"`
	IntentFilter            []string  `json:"intentFilter,omitempty"`
	SendIntentNotRecognized bool      `json:"sendIntentNotRecognized,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
	LastActivity            time.Time `json:"lastActivity"`
	// Pending counts start requests queued behind this session.
	Pending int `json:"pending,omitempty"`
}

// ConditionKind classifies protocol-level anomalies the state machine
// observed. Conditions are reported, never fatal; the prior state is always
// left intact when a transition cannot be validated.
type ConditionKind int

const (
	// ConditionNone means the transition applied cleanly.
	ConditionNone ConditionKind = iota
	// ConditionSessionMismatch means a continue/end targeted a session id
	// that is not the site's current session.
	ConditionSessionMismatch
	// ConditionSessionTimeout means a Starting or Ending session never
	// received its notification within the configured timeout.
	ConditionSessionTimeout
	// ConditionStaleNotification means a started/queued/ended notification
	// arrived for a site or session it cannot apply to.
	ConditionStaleNotification
)

func (k ConditionKind) String() string {
	switch k {
	case ConditionNone:
		return "none"
	case ConditionSessionMismatch:
		return "sessionMismatch"
	case ConditionSessionTimeout:
		return "sessionTimeout"
	case ConditionStaleNotification:
		return "staleNotification"
	default:
		return "unknown"
	}
}

// Condition is one recorded anomaly with its context.
type Condition struct {
	Kind      ConditionKind
	SiteID    string
	SessionID string
	State     State
	At        time.Time
}

// Clock supplies the current time. The zero Manager uses the system clock;
// tests substitute a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
