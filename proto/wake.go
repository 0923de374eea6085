package proto

// HotwordToggleOn activates the wake word component at a site.
// Topic: hermes/hotword/toggleOn
type HotwordToggleOn struct {
	SiteID string `json:"siteId,omitempty"`
}

func (HotwordToggleOn) Kind() Kind { return KindHotwordToggleOn }

// HotwordToggleOff deactivates the wake word component at a site.
// Topic: hermes/hotword/toggleOff
type HotwordToggleOff struct {
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (HotwordToggleOff) Kind() Kind { return KindHotwordToggleOff }

// HotwordDetected reports that a specific wake word was heard.
// Topic: hermes/hotword/{wakewordId}/detected
type HotwordDetected struct {
	// WakewordID is carried in the topic, not the payload.
	WakewordID string `json:"-"`

	ModelID            string  `json:"modelId"`
	ModelVersion       string  `json:"modelVersion"`
	ModelType          string  `json:"modelType"`
	CurrentSensitivity float64 `json:"currentSensitivity"`
	SiteID             string  `json:"siteId,omitempty"`
}

func (HotwordDetected) Kind() Kind { return KindHotwordDetected }
