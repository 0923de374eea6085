// Command hermes-say speaks one sentence through the text to speech
// component and waits for it to finish.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/voicebus/hermes/client"
	"github.com/voicebus/hermes/registry"
)

func main() {
	var (
		brokerAddr    = flag.String("broker", "ws://localhost:8080", "broker address")
		transportKind = flag.String("transport", "ws", "broker transport: ws or tcp")
		siteID        = flag.String("site", "default", "site to speak at")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hermes-say [flags] <text>")
		os.Exit(2)
	}
	text := flag.Arg(0)

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

	c := client.NewClient(transport, registry.Default())
	if err := c.Connect(*brokerAddr); err != nil {
		slog.Error("Failed to connect", "addr", *brokerAddr, "error", err.Error())
		os.Exit(1)
	}
	defer c.Close()
	go c.Listen()

	if err := c.Say(text, *siteID); err != nil {
		slog.Error("Say failed", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("Done speaking", "site", *siteID)
}
