package proto

// NluQuery sends captured text to the NLU component for intent recognition.
// Topic: hermes/nlu/query
type NluQuery struct {
	Input        string   `json:"input"`
	IntentFilter []string `json:"intentFilter,omitempty"`
	ID           string   `json:"id,omitempty"`
	SiteID       string   `json:"siteId,omitempty"`
	SessionID    string   `json:"sessionId,omitempty"`
}

func (NluQuery) Kind() Kind { return KindNluQuery }

// NluIntent reports a recognized intent. The intent name appears both in the
// topic and inside the Intent object; the payload is authoritative on decode
// and the topic is rendered from Intent.IntentName on encode.
// Topic: hermes/intent/{intentName}
type NluIntent struct {
	Input      string `json:"input"`
	Intent     Intent `json:"intent"`
	Slots      []Slot `json:"slots,omitempty"`
	ID         string `json:"id,omitempty"`
	SiteID     string `json:"siteId,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
	CustomData string `json:"customData,omitempty"`
}

func (NluIntent) Kind() Kind { return KindNluIntent }

// NluIntentNotRecognized reports that no intent matched the input.
// Topic: hermes/nlu/intentNotRecognized
type NluIntentNotRecognized struct {
	Input     string `json:"input"`
	ID        string `json:"id,omitempty"`
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (NluIntentNotRecognized) Kind() Kind { return KindNluIntentNotRecognized }

// NluError reports a failure inside the NLU component.
// Topic: hermes/error/nlu
type NluError struct {
	Error     string `json:"error"`
	Context   string `json:"context,omitempty"`
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (NluError) Kind() Kind { return KindNluError }
