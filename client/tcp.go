package client

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
)

// TCPTransport carries newline-delimited JSON headers over a TCP stream.
// Publish payloads follow their header as a length-prefixed block of raw
// bytes, so a WAV frame is never base64 encoded and never scanned for
// delimiters.
type TCPTransport struct {
	conn   net.Conn
	reader *bufio.Reader
}

// tcpHeader is the on-wire header line. PayloadSize tells the reader how
// many raw payload bytes follow the newline.
type tcpHeader struct {
	Frame
	PayloadSize int `json:"payloadSize,omitempty"`
}

func NewTCPTransport() *TCPTransport {
	return &TCPTransport{}
}

func (t *TCPTransport) Connect(addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	t.conn = conn
	t.reader = bufio.NewReader(conn)
	return nil
}

func (t *TCPTransport) Send(frame Frame) error {
	header := tcpHeader{Frame: frame, PayloadSize: len(frame.Payload)}
	header.Payload = nil

	data, err := json.Marshal(header)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	data = append(data, frame.Payload...)

	_, err = t.conn.Write(data)
	return err
}

func (t *TCPTransport) Read() (Frame, error) {
	line, err := t.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, fmt.Errorf("connection closed")
		}
		return Frame{}, err
	}

	var header tcpHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return Frame{}, fmt.Errorf("invalid frame header: %w", err)
	}

	if header.PayloadSize > 0 {
		payload := make([]byte, header.PayloadSize)
		if _, err := io.ReadFull(t.reader, payload); err != nil {
			return Frame{}, fmt.Errorf("truncated payload: %w", err)
		}
		header.Frame.Payload = payload
	}
	return header.Frame, nil
}

func (t *TCPTransport) Close() error {
	return t.conn.Close()
}
