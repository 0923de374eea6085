package proto

// AudioFrame is one recorded frame of WAV audio from a site.
// Topic: hermes/audioServer/{siteId}/audioFrame
type AudioFrame struct {
	SiteID string `json:"-"`

	WavBytes []byte `json:"-"`
}

func (AudioFrame) Kind() Kind { return KindAudioFrame }

func (m *AudioFrame) Payload() []byte     { return m.WavBytes }
func (m *AudioFrame) SetPayload(b []byte) { m.WavBytes = b }

// AudioSessionFrame is a recorded frame of WAV audio scoped to a session.
// Topic: hermes/audioServer/{siteId}/{sessionId}/audioSessionFrame
type AudioSessionFrame struct {
	SiteID    string `json:"-"`
	SessionID string `json:"-"`

	WavBytes []byte `json:"-"`
}

func (AudioSessionFrame) Kind() Kind { return KindAudioSessionFrame }

func (m *AudioSessionFrame) Payload() []byte     { return m.WavBytes }
func (m *AudioSessionFrame) SetPayload(b []byte) { m.WavBytes = b }

// AudioPlayBytes asks a site to play a WAV sound.
// Topic: hermes/audioServer/{siteId}/playBytes/{requestId}
type AudioPlayBytes struct {
	SiteID    string `json:"-"`
	RequestID string `json:"-"`

	WavBytes []byte `json:"-"`
}

func (AudioPlayBytes) Kind() Kind { return KindAudioPlayBytes }

func (m *AudioPlayBytes) Payload() []byte     { return m.WavBytes }
func (m *AudioPlayBytes) SetPayload(b []byte) { m.WavBytes = b }

// AudioPlayFinished signals that a playBytes request finished playing.
// Topic: hermes/audioServer/{siteId}/playFinished
type AudioPlayFinished struct {
	SiteID string `json:"-"`

	ID        string `json:"id,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (AudioPlayFinished) Kind() Kind { return KindAudioPlayFinished }

// AudioSummary carries diagnostic energy statistics for recent audio frames.
// Topic: hermes/audioServer/{siteId}/audioSummary
type AudioSummary struct {
	SiteID string `json:"-"`

	DebiasedEnergy float64 `json:"debiasedEnergy"`
	IsSpeech       *bool   `json:"isSpeech,omitempty"`
}

func (AudioSummary) Kind() Kind { return KindAudioSummary }

// AudioToggleOn activates the audio output system at a site.
// Topic: hermes/audioServer/toggleOn
type AudioToggleOn struct {
	SiteID string `json:"siteId,omitempty"`
}

func (AudioToggleOn) Kind() Kind { return KindAudioToggleOn }

// AudioToggleOff deactivates the audio output system at a site.
// Topic: hermes/audioServer/toggleOff
type AudioToggleOff struct {
	SiteID string `json:"siteId,omitempty"`
}

func (AudioToggleOff) Kind() Kind { return KindAudioToggleOff }

// SummaryToggleOn activates publication of audio summaries.
// Topic: hermes/audioServer/toggleSummaryOn
type SummaryToggleOn struct {
	SiteID string `json:"siteId,omitempty"`
}

func (SummaryToggleOn) Kind() Kind { return KindSummaryToggleOn }

// SummaryToggleOff deactivates publication of audio summaries.
// Topic: hermes/audioServer/toggleSummaryOff
type SummaryToggleOff struct {
	SiteID string `json:"siteId,omitempty"`
}

func (SummaryToggleOff) Kind() Kind { return KindSummaryToggleOff }

// AudioDeviceMode distinguishes recording from playback devices.
type AudioDeviceMode string

const (
	AudioDeviceInput  AudioDeviceMode = "input"
	AudioDeviceOutput AudioDeviceMode = "output"
)

// AudioDevice describes one audio device at a site.
type AudioDevice struct {
	Mode        AudioDeviceMode `json:"mode"`
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Working     *bool           `json:"working,omitempty"`
}

// AudioGetDevices requests details of available audio devices.
// Topic: rhasspy/audioServer/getDevices
type AudioGetDevices struct {
	Modes  []AudioDeviceMode `json:"modes"`
	SiteID string            `json:"siteId,omitempty"`
	ID     string            `json:"id,omitempty"`
	Test   bool              `json:"test,omitempty"`
}

func (AudioGetDevices) Kind() Kind { return KindAudioGetDevices }

// AudioDevices is the response to getDevices.
// Topic: rhasspy/audioServer/devices
type AudioDevices struct {
	Devices []AudioDevice `json:"devices"`
	SiteID  string        `json:"siteId,omitempty"`
	ID      string        `json:"id,omitempty"`
}

func (AudioDevices) Kind() Kind { return KindAudioDevices }

// AudioRecordError reports a failure in the audio input component.
// Topic: hermes/error/audioServer/record
type AudioRecordError struct {
	Error     string `json:"error"`
	SiteID    string `json:"siteId,omitempty"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (AudioRecordError) Kind() Kind { return KindAudioRecordError }

// AudioPlayError reports a failure in the audio output component.
// Topic: hermes/error/audioServer/play
type AudioPlayError struct {
	Error     string `json:"error"`
	SiteID    string `json:"siteId,omitempty"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (AudioPlayError) Kind() Kind { return KindAudioPlayError }
