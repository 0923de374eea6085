package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gorilla/websocket"
)

// WebSocketTransport carries frames over a websocket connection. Publish
// frames travel as binary websocket messages with the payload out of band
// after a newline-terminated JSON header, so WAV audio is never base64
// encoded. Control frames stay readable text.
type WebSocketTransport struct {
	conn *websocket.Conn
}

func NewWebSocketTransport() *WebSocketTransport {
	return &WebSocketTransport{}
}

func (t *WebSocketTransport) Connect(addr string) error {
	u, err := url.Parse(addr)
	if err != nil {
		return fmt.Errorf("invalid WebSocket URL: %w", err)
	}

	// If no scheme is provided, assume ws://
	if u.Scheme == "" {
		u.Scheme = "ws"
	}

	// Convert tcp addresses to WebSocket URLs
	if u.Scheme == "tcp" {
		u.Scheme = "ws"
		u.Path = "/"
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to WebSocket server: %w", err)
	}

	t.conn = conn
	return nil
}

func (t *WebSocketTransport) Send(frame Frame) error {
	if t.conn == nil {
		return fmt.Errorf("transport is not connected")
	}

	if frame.Type == FramePublish {
		data, err := packFrame(frame)
		if err != nil {
			return err
		}
		if err := t.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return fmt.Errorf("failed to send WebSocket message: %w", err)
		}
	} else {
		data, err := json.Marshal(frame)
		if err != nil {
			return fmt.Errorf("failed to marshal frame: %w", err)
		}
		if err := t.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return fmt.Errorf("failed to send WebSocket message: %w", err)
		}
	}

	slog.Debug("Sent WebSocket frame", "type", frame.Type, "topic", frame.Topic, "size", len(frame.Payload))
	return nil
}

func (t *WebSocketTransport) Read() (Frame, error) {
	if t.conn == nil {
		return Frame{}, fmt.Errorf("transport is not connected")
	}

	msgType, data, err := t.conn.ReadMessage()
	if err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
			return Frame{}, fmt.Errorf("WebSocket connection error: %w", err)
		}
		return Frame{}, fmt.Errorf("connection closed: %w", err)
	}

	if msgType == websocket.BinaryMessage {
		return unpackFrame(data)
	}

	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return Frame{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return frame, nil
}

func (t *WebSocketTransport) Close() error {
	if t.conn == nil {
		return nil
	}

	// Send close message
	err := t.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		// Log error but don't return it - we still want to close the connection
		slog.Warn("Failed to send close message", "error", err)
	}

	return t.conn.Close()
}

// packFrame flattens a publish frame into a JSON header line followed by the
// raw payload bytes.
func packFrame(frame Frame) ([]byte, error) {
	header := frame
	header.Payload = nil
	data, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame header: %w", err)
	}
	data = append(data, '\n')
	return append(data, frame.Payload...), nil
}

// unpackFrame splits a binary message at the first newline. The header JSON
// contains no raw newlines, so everything after the first one is payload.
func unpackFrame(data []byte) (Frame, error) {
	head, payload, found := bytes.Cut(data, []byte{'\n'})
	if !found {
		return Frame{}, fmt.Errorf("binary frame missing header delimiter")
	}
	var frame Frame
	if err := json.Unmarshal(head, &frame); err != nil {
		return Frame{}, fmt.Errorf("invalid frame header: %w", err)
	}
	frame.Payload = payload
	return frame, nil
}
