package client

// Frame is the wire envelope the bundled transports exchange. Payload bytes
// are opaque to the transport; topics do the routing.
type Frame struct {
	Type      string   `json:"type"` // "publish", "subscribe", "unsubscribe"
	Topic     string   `json:"topic,omitempty"`
	Topics    []string `json:"topics,omitempty"`
	Payload   []byte   `json:"payload,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// Frame types understood by the bundled transports.
const (
	FramePublish     = "publish"
	FrameSubscribe   = "subscribe"
	FrameUnsubscribe = "unsubscribe"
)

// Transport moves frames to and from a broker. Implementations deliver
// frames one at a time through Read.
type Transport interface {
	Connect(addr string) error
	Send(frame Frame) error
	Read() (Frame, error) // for one-at-a-time processing
	Close() error
}
