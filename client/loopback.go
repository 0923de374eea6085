package client

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Loopback is an in-process broker for tests and single-binary wiring.
// Every connection created by Dial sees frames published by every other
// connection whose filters match.
type Loopback struct {
	mu    sync.RWMutex
	conns map[*LoopbackConn]struct{}
}

func NewLoopback() *Loopback {
	return &Loopback{conns: make(map[*LoopbackConn]struct{})}
}

// Dial creates a new connection attached to this broker.
func (l *Loopback) Dial() *LoopbackConn {
	conn := &LoopbackConn{hub: l, ch: make(chan Frame, 256)}
	l.mu.Lock()
	l.conns[conn] = struct{}{}
	l.mu.Unlock()
	return conn
}

func (l *Loopback) publish(frame Frame) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for conn := range l.conns {
		if !conn.matches(frame.Topic) {
			continue
		}
		select {
		case conn.ch <- frame:
		default:
			slog.Error("Dropped frame (buffer full)", "topic", frame.Topic)
		}
	}
}

func (l *Loopback) drop(conn *LoopbackConn) {
	l.mu.Lock()
	delete(l.conns, conn)
	l.mu.Unlock()
}

// LoopbackConn is one end of an in-process connection.
type LoopbackConn struct {
	hub *Loopback
	ch  chan Frame

	mu      sync.Mutex
	filters []string
	closed  bool
}

func (c *LoopbackConn) Connect(addr string) error { return nil }

func (c *LoopbackConn) Send(frame Frame) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("connection closed")
	}
	c.mu.Unlock()

	switch frame.Type {
	case FrameSubscribe:
		c.mu.Lock()
		c.filters = append(c.filters, frame.Topics...)
		if frame.Topic != "" {
			c.filters = append(c.filters, frame.Topic)
		}
		c.mu.Unlock()
	case FrameUnsubscribe:
		c.mu.Lock()
		kept := c.filters[:0]
		for _, f := range c.filters {
			remove := f == frame.Topic
			for _, t := range frame.Topics {
				if f == t {
					remove = true
				}
			}
			if !remove {
				kept = append(kept, f)
			}
		}
		c.filters = kept
		c.mu.Unlock()
	case FramePublish:
		c.hub.publish(frame)
	default:
		return fmt.Errorf("unsupported frame type %q", frame.Type)
	}
	return nil
}

func (c *LoopbackConn) Read() (Frame, error) {
	frame, ok := <-c.ch
	if !ok {
		return Frame{}, fmt.Errorf("connection closed")
	}
	return frame, nil
}

func (c *LoopbackConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.hub.drop(c)
	close(c.ch)
	return nil
}

func (c *LoopbackConn) matches(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.filters {
		if filterMatches(f, topic) {
			return true
		}
	}
	return false
}

// filterMatches applies MQTT-style filter matching: "+" matches exactly one
// segment, a trailing "#" matches zero or more.
func filterMatches(filter, topic string) bool {
	fs := strings.Split(filter, "/")
	ts := strings.Split(topic, "/")

	for i, f := range fs {
		if f == "#" {
			return i == len(fs)-1
		}
		if i >= len(ts) {
			return false
		}
		if f != "+" && f != ts[i] {
			return false
		}
	}
	return len(fs) == len(ts)
}
