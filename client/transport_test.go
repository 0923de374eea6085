package client

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoWebSocketServer upgrades every request and echoes messages back with
// their original message type.
func echoWebSocketServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(msgType, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWebSocketTransport_RoundTrip(t *testing.T) {
	srv := echoWebSocketServer(t)

	tr := NewWebSocketTransport()
	require.NoError(t, tr.Connect("ws"+strings.TrimPrefix(srv.URL, "http")))
	defer tr.Close()

	sub := Frame{Type: FrameSubscribe, Topics: []string{"hermes/tts/#"}, Timestamp: 42}
	require.NoError(t, tr.Send(sub))

	got, err := tr.Read()
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	// Payload bytes that would corrupt text framing, including newlines.
	wav := []byte{'R', 'I', 'F', 'F', '\n', 0, '\n', 'W', 'A', 'V', 'E'}
	pub := Frame{
		Type:      FramePublish,
		Topic:     "hermes/audioServer/kitchen/playBytes/req-1",
		Payload:   wav,
		Timestamp: 43,
	}
	require.NoError(t, tr.Send(pub))

	got, err = tr.Read()
	require.NoError(t, err)
	assert.Equal(t, pub.Topic, got.Topic)
	assert.Equal(t, wav, got.Payload)
	assert.Equal(t, pub.Timestamp, got.Timestamp)
}

func TestWebSocketTransport_NotConnected(t *testing.T) {
	tr := NewWebSocketTransport()
	assert.Error(t, tr.Send(Frame{Type: FramePublish, Topic: "hermes/tts/say"}))
	_, err := tr.Read()
	assert.Error(t, err)
	assert.NoError(t, tr.Close())
}

func TestPackFrame_RoundTrip(t *testing.T) {
	in := Frame{
		Type:      FramePublish,
		Topic:     "hermes/audioServer/kitchen/audioFrame",
		Payload:   []byte{0, '\n', 1, '\n', 2},
		Timestamp: 7,
	}

	data, err := packFrame(in)
	require.NoError(t, err)

	out, err := unpackFrame(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = unpackFrame([]byte(`{"type":"publish"}`))
	assert.Error(t, err, "a binary frame without a header delimiter is rejected")
}

func TestTCPTransport_RoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		accepted <- conn
	}()

	cli := NewTCPTransport()
	require.NoError(t, cli.Connect(ln.Addr().String()))
	defer cli.Close()

	serverConn := <-accepted
	srv := &TCPTransport{conn: serverConn, reader: bufio.NewReader(serverConn)}
	defer srv.Close()

	// Payload bytes that would break line-delimited framing.
	wav := []byte{'R', 'I', 'F', 'F', '\n', '\n', 0, 'W', 'A', 'V', 'E'}
	pub := Frame{
		Type:      FramePublish,
		Topic:     "hermes/audioServer/kitchen/audioFrame",
		Payload:   wav,
		Timestamp: 7,
	}
	require.NoError(t, cli.Send(pub))

	got, err := srv.Read()
	require.NoError(t, err)
	assert.Equal(t, pub, got)

	sub := Frame{Type: FrameSubscribe, Topics: []string{"hermes/intent/+"}, Timestamp: 8}
	require.NoError(t, srv.Send(sub))

	got, err = cli.Read()
	require.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestTCPTransport_ReadAfterPeerClose(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		accepted <- conn
	}()

	cli := NewTCPTransport()
	require.NoError(t, cli.Connect(ln.Addr().String()))
	defer cli.Close()

	(<-accepted).Close()

	_, err = cli.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}
