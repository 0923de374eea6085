package proto

// IntentGraphRequest asks the training component to publish its intent graph.
// Topic: rhasspy/train/getIntentGraph
type IntentGraphRequest struct {
	ID     string `json:"id"`
	SiteID string `json:"siteId,omitempty"`
}

func (IntentGraphRequest) Kind() Kind { return KindIntentGraphRequest }

// IntentGraph carries the serialized intent graph produced by training.
// Topic: rhasspy/train/intentGraph/{requestId}
type IntentGraph struct {
	RequestID string `json:"-"`

	GraphBytes []byte `json:"-"`
}

func (IntentGraph) Kind() Kind { return KindIntentGraph }

func (m *IntentGraph) Payload() []byte     { return m.GraphBytes }
func (m *IntentGraph) SetPayload(b []byte) { m.GraphBytes = b }
