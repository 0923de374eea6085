package proto

// DialogueActionType discriminates the session init object of a start
// request: an action expects an end-user response, a notification does not.
type DialogueActionType string

const (
	DialogueTypeAction       DialogueActionType = "action"
	DialogueTypeNotification DialogueActionType = "notification"
)

// DialogueSessionInit describes how a session should be started. Action
// fields (CanBeEnqueued, IntentFilter, SendIntentNotRecognized) are ignored
// for notifications.
type DialogueSessionInit struct {
	Type                    DialogueActionType `json:"type"`
	Text                    string             `json:"text,omitempty"`
	CanBeEnqueued           bool               `json:"canBeEnqueued,omitempty"`
	IntentFilter            []string           `json:"intentFilter,omitempty"`
	SendIntentNotRecognized bool               `json:"sendIntentNotRecognized,omitempty"`
}

// SessionTerminationReason explains why a session ended.
type SessionTerminationReason string

const (
	TerminationNominal             SessionTerminationReason = "nominal"
	TerminationAbortedByUser       SessionTerminationReason = "abortedByUser"
	TerminationIntentNotRecognized SessionTerminationReason = "intentNotRecognized"
	TerminationTimeout             SessionTerminationReason = "timeout"
	TerminationError               SessionTerminationReason = "error"
)

// SessionTermination is the structured reason attached to sessionEnded.
type SessionTermination struct {
	Reason SessionTerminationReason `json:"reason"`
}

// DialogueStartSession requests a new dialogue session at a site.
// Topic: hermes/dialogueManager/startSession
type DialogueStartSession struct {
	Init       DialogueSessionInit `json:"init"`
	SiteID     string              `json:"siteId,omitempty"`
	CustomData string              `json:"customData,omitempty"`
	Lang       string              `json:"lang,omitempty"`
}

func (DialogueStartSession) Kind() Kind { return KindDialogueStartSession }

// DialogueSessionQueued notifies that a start request was queued behind the
// currently active session.
// Topic: hermes/dialogueManager/sessionQueued
type DialogueSessionQueued struct {
	SessionID  string `json:"sessionId"`
	SiteID     string `json:"siteId,omitempty"`
	CustomData string `json:"customData,omitempty"`
}

func (DialogueSessionQueued) Kind() Kind { return KindDialogueSessionQueued }

// DialogueSessionStarted notifies that a session is now active and carries
// the identifier assigned by the dialogue manager.
// Topic: hermes/dialogueManager/sessionStarted
type DialogueSessionStarted struct {
	SessionID  string `json:"sessionId"`
	SiteID     string `json:"siteId,omitempty"`
	CustomData string `json:"customData,omitempty"`
	Lang       string `json:"lang,omitempty"`
}

func (DialogueSessionStarted) Kind() Kind { return KindDialogueSessionStarted }

// DialogueContinueSession keeps an active session open for another query,
// optionally updating its intent filter and custom data.
// Topic: hermes/dialogueManager/continueSession
type DialogueContinueSession struct {
	SessionID               string   `json:"sessionId"`
	SiteID                  string   `json:"siteId,omitempty"`
	CustomData              string   `json:"customData,omitempty"`
	Text                    string   `json:"text,omitempty"`
	IntentFilter            []string `json:"intentFilter,omitempty"`
	SendIntentNotRecognized bool     `json:"sendIntentNotRecognized,omitempty"`
	Slot                    string   `json:"slot,omitempty"`
	Lang                    string   `json:"lang,omitempty"`
}

func (DialogueContinueSession) Kind() Kind { return KindDialogueContinueSession }

// DialogueEndSession requests termination of an active session.
// Topic: hermes/dialogueManager/endSession
type DialogueEndSession struct {
	SessionID  string `json:"sessionId"`
	SiteID     string `json:"siteId,omitempty"`
	Text       string `json:"text,omitempty"`
	CustomData string `json:"customData,omitempty"`
}

func (DialogueEndSession) Kind() Kind { return KindDialogueEndSession }

// DialogueSessionEnded notifies that a session ended and why.
// Topic: hermes/dialogueManager/sessionEnded
type DialogueSessionEnded struct {
	Termination SessionTermination `json:"termination"`
	SessionID   string             `json:"sessionId"`
	SiteID      string             `json:"siteId,omitempty"`
	CustomData  string             `json:"customData,omitempty"`
}

func (DialogueSessionEnded) Kind() Kind { return KindDialogueSessionEnded }

// DialogueIntentNotRecognized is sent for sessions started with
// sendIntentNotRecognized when the NLU failed to find an intent.
// Topic: hermes/dialogueManager/intentNotRecognized
type DialogueIntentNotRecognized struct {
	SessionID  string `json:"sessionId"`
	SiteID     string `json:"siteId,omitempty"`
	Input      string `json:"input,omitempty"`
	CustomData string `json:"customData,omitempty"`
}

func (DialogueIntentNotRecognized) Kind() Kind { return KindDialogueIntentNotRecognized }

// DialogueConfigureIntent enables or disables one intent for future sessions.
type DialogueConfigureIntent struct {
	IntentID string `json:"intentId"`
	Enable   bool   `json:"enable"`
}

// DialogueConfigure enables or disables intents at a site.
// Topic: hermes/dialogueManager/configure
type DialogueConfigure struct {
	Intents []DialogueConfigureIntent `json:"intents"`
	SiteID  string                    `json:"siteId,omitempty"`
}

func (DialogueConfigure) Kind() Kind { return KindDialogueConfigure }

// DialogueError reports a failure inside the dialogue manager.
// Topic: hermes/error/dialogueManager
type DialogueError struct {
	Error     string `json:"error"`
	SiteID    string `json:"siteId,omitempty"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (DialogueError) Kind() Kind { return KindDialogueError }
