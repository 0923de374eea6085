package proto

// AsrToggleReason explains why ASR was toggled on or off.
type AsrToggleReason string

const (
	AsrToggleUnknown         AsrToggleReason = ""
	AsrToggleDialogueSession AsrToggleReason = "dialogueSession"
	AsrTogglePlayAudio       AsrToggleReason = "playAudio"
	AsrToggleTtsSay          AsrToggleReason = "ttsSay"
)

// AsrToggleOn activates the speech recognition component.
// Topic: hermes/asr/toggleOn
type AsrToggleOn struct {
	SiteID string          `json:"siteId,omitempty"`
	Reason AsrToggleReason `json:"reason,omitempty"`
}

func (AsrToggleOn) Kind() Kind { return KindAsrToggleOn }

// AsrToggleOff deactivates the speech recognition component.
// Topic: hermes/asr/toggleOff
type AsrToggleOff struct {
	SiteID string          `json:"siteId,omitempty"`
	Reason AsrToggleReason `json:"reason,omitempty"`
}

func (AsrToggleOff) Kind() Kind { return KindAsrToggleOff }

// AsrStartListening tells the ASR component to start transcribing a site.
// Topic: hermes/asr/startListening
type AsrStartListening struct {
	SiteID            string   `json:"siteId,omitempty"`
	SessionID         string   `json:"sessionId,omitempty"`
	Lang              string   `json:"lang,omitempty"`
	StopOnSilence     bool     `json:"stopOnSilence,omitempty"`
	SendAudioCaptured bool     `json:"sendAudioCaptured,omitempty"`
	WakewordID        string   `json:"wakewordId,omitempty"`
	IntentFilter      []string `json:"intentFilter,omitempty"`
}

func (AsrStartListening) Kind() Kind { return KindAsrStartListening }

// AsrStopListening tells the ASR component to stop transcribing a site.
// Topic: hermes/asr/stopListening
type AsrStopListening struct {
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (AsrStopListening) Kind() Kind { return KindAsrStopListening }

// AsrTextCaptured carries a finished transcription.
// Topic: hermes/asr/textCaptured
type AsrTextCaptured struct {
	Text       string  `json:"text"`
	Likelihood float64 `json:"likelihood"`
	Seconds    float64 `json:"seconds"`

	SiteID     string       `json:"siteId,omitempty"`
	SessionID  string       `json:"sessionId,omitempty"`
	WakewordID string       `json:"wakewordId,omitempty"`
	AsrTokens  [][]AsrToken `json:"asrTokens,omitempty"`
	Lang       string       `json:"lang,omitempty"`
}

func (AsrTextCaptured) Kind() Kind { return KindAsrTextCaptured }

// AsrError reports a failure inside the ASR component.
// Topic: hermes/error/asr
type AsrError struct {
	Error     string `json:"error"`
	SiteID    string `json:"siteId,omitempty"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (AsrError) Kind() Kind { return KindAsrError }

// AsrTrain requests retraining of the ASR model from an intent graph.
// Topic: rhasspy/asr/{siteId}/train
type AsrTrain struct {
	// SiteID is carried in the topic, not the payload.
	SiteID string `json:"-"`

	GraphPath   string              `json:"graphPath"`
	ID          string              `json:"id,omitempty"`
	GraphFormat string              `json:"graphFormat,omitempty"`
	Sentences   map[string]string   `json:"sentences,omitempty"`
	Slots       map[string][]string `json:"slots,omitempty"`
}

func (AsrTrain) Kind() Kind { return KindAsrTrain }

// AsrTrainSuccess acknowledges a finished training run.
// Topic: rhasspy/asr/{siteId}/trainSuccess
type AsrTrainSuccess struct {
	SiteID string `json:"-"`

	ID string `json:"id,omitempty"`
}

func (AsrTrainSuccess) Kind() Kind { return KindAsrTrainSuccess }

// AsrAudioCaptured carries the WAV audio recorded during an ASR session.
// Topic: rhasspy/asr/{siteId}/{sessionId}/audioCaptured
type AsrAudioCaptured struct {
	SiteID    string `json:"-"`
	SessionID string `json:"-"`

	WavBytes []byte `json:"-"`
}

func (AsrAudioCaptured) Kind() Kind { return KindAsrAudioCaptured }

func (m *AsrAudioCaptured) Payload() []byte     { return m.WavBytes }
func (m *AsrAudioCaptured) SetPayload(b []byte) { m.WavBytes = b }
