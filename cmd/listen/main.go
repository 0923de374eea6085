// Command hermes-listen subscribes to the full protocol vocabulary and logs
// every decoded message, a wire-level debugging aid.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/voicebus/hermes/client"
	"github.com/voicebus/hermes/proto"
	"github.com/voicebus/hermes/registry"
)

func main() {
	var (
		brokerAddr    = flag.String("broker", "ws://localhost:8080", "broker address")
		transportKind = flag.String("transport", "ws", "broker transport: ws or tcp")
	)
	flag.Parse()

	logger := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logger))

	var transport client.Transport
	switch *transportKind {
	case "ws":
		transport = client.NewWebSocketTransport()
	case "tcp":
		transport = client.NewTCPTransport()
	default:
		fmt.Fprintf(os.Stderr, "unknown transport %q\n", *transportKind)
		os.Exit(1)
	}

	reg := registry.Default()
	c := client.NewClient(transport, reg)
	for _, kind := range reg.Kinds() {
		c.OnMessage(kind, func(msg proto.Message) {
			if bin, ok := msg.(proto.BinaryMessage); ok {
				slog.Info("Message", "kind", string(kind), "bytes", len(bin.Payload()))
				return
			}
			slog.Info("Message", "kind", string(kind), "message", fmt.Sprintf("%+v", msg))
		})
	}

	if err := c.Connect(*brokerAddr); err != nil {
		slog.Error("Failed to connect", "addr", *brokerAddr, "error", err.Error())
		os.Exit(1)
	}
	defer c.Close()

	if err := c.Listen(); err != nil {
		slog.Error("Connection lost", "error", err.Error())
		os.Exit(1)
	}
}
