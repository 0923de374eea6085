// Package client is a thin façade over a pub/sub transport: it subscribes to
// every registered topic filter, decodes incoming frames through the codec
// registry, dispatches typed messages to handlers and optionally feeds a
// dialogue session tracker.
package client

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voicebus/hermes/dialogue"
	"github.com/voicebus/hermes/proto"
	"github.com/voicebus/hermes/registry"
)

// DefaultRequestTimeout bounds request/response helpers such as Say.
const DefaultRequestTimeout = 30 * time.Second

type Client struct {
	transport Transport
	registry  *registry.Registry
	timeout   time.Duration

	sessionMu sync.RWMutex
	sessions  *dialogue.Manager

	handlerMu sync.RWMutex
	handlers  map[proto.Kind][]func(proto.Message)

	// Pending sayFinished correlations keyed by request id.
	resMu    sync.Mutex
	sayWaits map[string]chan *proto.TtsSayFinished
}

func NewClient(t Transport, reg *registry.Registry) *Client {
	return &Client{
		transport: t,
		registry:  reg,
		timeout:   DefaultRequestTimeout,
		handlers:  make(map[proto.Kind][]func(proto.Message)),
		sayWaits:  make(map[string]chan *proto.TtsSayFinished),
	}
}

// TrackSessions feeds every decoded message into the given session state
// machine before handlers run.
func (c *Client) TrackSessions(m *dialogue.Manager) {
	c.sessionMu.Lock()
	c.sessions = m
	c.sessionMu.Unlock()
}

// OnMessage registers a handler for one message kind. Handlers run on the
// Listen goroutine in arrival order.
func (c *Client) OnMessage(kind proto.Kind, fn func(proto.Message)) {
	c.handlerMu.Lock()
	c.handlers[kind] = append(c.handlers[kind], fn)
	c.handlerMu.Unlock()
}

// Connect dials the broker and subscribes to every registered topic filter.
func (c *Client) Connect(addr string) error {
	if err := c.transport.Connect(addr); err != nil {
		return err
	}
	filters := c.registry.Filters()
	err := c.transport.Send(Frame{
		Type:      FrameSubscribe,
		Topics:    filters,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("subscribe failed: %w", err)
	}
	slog.Info("connected", "addr", addr, "filters", len(filters))
	return nil
}

// Listen reads frames until the transport fails. Undecodable frames are
// logged and skipped, never fatal.
func (c *Client) Listen() error {
	for {
		frame, err := c.transport.Read()
		if err != nil {
			return err
		}
		if frame.Type != FramePublish {
			slog.Debug("Ignoring non-publish frame", "type", frame.Type)
			continue
		}

		msg, err := c.registry.Decode(frame.Topic, frame.Payload)
		if err != nil {
			var unknown *registry.UnknownTopicError
			if errors.As(err, &unknown) {
				slog.Debug("Unknown topic", "topic", frame.Topic)
			} else {
				slog.Warn("Dropping undecodable frame", "topic", frame.Topic, "error", err.Error())
			}
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg proto.Message) {
	c.sessionMu.RLock()
	sessions := c.sessions
	c.sessionMu.RUnlock()
	if sessions != nil {
		sessions.Observe(msg)
	}

	if fin, ok := msg.(*proto.TtsSayFinished); ok {
		c.resolveSay(fin)
	}

	c.handlerMu.RLock()
	handlers := c.handlers[msg.Kind()]
	c.handlerMu.RUnlock()
	for _, fn := range handlers {
		fn(msg)
	}
}

// Publish encodes a typed message and sends it on its exact topic.
func (c *Client) Publish(msg proto.Message) error {
	concreteTopic, payload, err := c.registry.Encode(msg)
	if err != nil {
		return err
	}
	slog.Debug("Publishing", "topic", concreteTopic, "kind", string(msg.Kind()), "size", len(payload))
	return c.transport.Send(Frame{
		Type:      FramePublish,
		Topic:     concreteTopic,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	})
}

// Say publishes a text-to-speech request with a generated id and waits for
// the matching sayFinished notification.
func (c *Client) Say(text, siteID string) error {
	id := uuid.NewString()
	ch := make(chan *proto.TtsSayFinished, 1)

	c.resMu.Lock()
	c.sayWaits[id] = ch
	c.resMu.Unlock()
	defer func() {
		c.resMu.Lock()
		delete(c.sayWaits, id)
		c.resMu.Unlock()
	}()

	err := c.Publish(&proto.TtsSay{
		Text:   text,
		ID:     id,
		SiteID: proto.SiteOrDefault(siteID),
	})
	if err != nil {
		return err
	}

	select {
	case <-ch:
		return nil
	case <-time.After(c.timeout):
		return fmt.Errorf("timeout waiting for sayFinished (id %s)", id)
	}
}

func (c *Client) resolveSay(fin *proto.TtsSayFinished) {
	c.resMu.Lock()
	ch, ok := c.sayWaits[fin.ID]
	if ok {
		delete(c.sayWaits, fin.ID)
	}
	c.resMu.Unlock()
	if ok {
		ch <- fin
	}
}

// StartSession publishes a dialogue start request for a site.
func (c *Client) StartSession(siteID, customData string, init proto.DialogueSessionInit) error {
	return c.Publish(&proto.DialogueStartSession{
		Init:       init,
		SiteID:     proto.SiteOrDefault(siteID),
		CustomData: customData,
	})
}

// EndSession publishes a dialogue end request for a session.
func (c *Client) EndSession(siteID, sessionID, text string) error {
	return c.Publish(&proto.DialogueEndSession{
		SessionID: sessionID,
		SiteID:    proto.SiteOrDefault(siteID),
		Text:      text,
	})
}

func (c *Client) Close() error {
	return c.transport.Close()
}
