package proto

// TtsSay asks the text to speech component to speak.
// Topic: hermes/tts/say
type TtsSay struct {
	Text      string `json:"text"`
	Lang      string `json:"lang,omitempty"`
	ID        string `json:"id,omitempty"`
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (TtsSay) Kind() Kind { return KindTtsSay }

// TtsSayFinished signals that the text to speech component finished speaking.
// Topic: hermes/tts/sayFinished
type TtsSayFinished struct {
	ID        string `json:"id,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (TtsSayFinished) Kind() Kind { return KindTtsSayFinished }
