// Command hermes-monitor connects to a broker, tracks dialogue sessions
// across sites and serves a JSON introspection API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voicebus/hermes/client"
	"github.com/voicebus/hermes/dialogue"
	"github.com/voicebus/hermes/registry"
	"github.com/voicebus/hermes/web"
)

type App struct {
	Client   *client.Client
	Sessions *dialogue.Manager
	HTTP     *http.Server
	Interval time.Duration
}

func NewApp(c *client.Client, sessions *dialogue.Manager, httpServer *http.Server, interval time.Duration) *App {
	return &App{Client: c, Sessions: sessions, HTTP: httpServer, Interval: interval}
}

func (a *App) Start(ctx context.Context) {
	go func() {
		if err := a.Client.Listen(); err != nil {
			slog.Error("Broker connection lost", "error", err.Error())
		}
	}()

	go func() {
		slog.Info("Serving introspection API", "addr", a.HTTP.Addr)
		if err := a.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err.Error())
		}
	}()

	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, c := range a.Sessions.CheckTimeouts() {
				slog.Warn("Session abandoned",
					"siteId", c.SiteID, "sessionId", c.SessionID, "state", c.State.String())
			}
		case <-ctx.Done():
			slog.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			a.HTTP.Shutdown(shutdownCtx)
			cancel()
			a.Client.Close()
			return
		}
	}
}

func main() {
	var (
		brokerAddr     = flag.String("broker", "ws://localhost:8080", "broker address")
		transportKind  = flag.String("transport", "ws", "broker transport: ws or tcp")
		httpAddr       = flag.String("http", ":8091", "introspection API listen address")
		sessionTimeout = flag.Duration("session-timeout", dialogue.DefaultTimeout, "abandon sessions stuck in starting/ending after this long")
		checkInterval  = flag.Duration("check-interval", 5*time.Second, "how often to sweep for timed-out sessions")
		debug          = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
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
	sessions := dialogue.NewManager(dialogue.Config{Timeout: *sessionTimeout})

	c := client.NewClient(transport, reg)
	c.TrackSessions(sessions)
	if err := c.Connect(*brokerAddr); err != nil {
		slog.Error("Failed to connect to broker", "addr", *brokerAddr, "error", err.Error())
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    *httpAddr,
		Handler: web.NewServer(reg, sessions).Routes(),
	}

	app := NewApp(c, sessions, httpServer, *checkInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Start(ctx)
}
