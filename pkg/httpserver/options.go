package httpserver

import (
	"fmt"
	"log/slog"
	"net"
	"time"
)

// Option configures a Server. Constructors panic on values that can only
// come from a programming error, so a misconfigured server never starts.
type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading a whole request, body included.
func WithReadTimeout(d time.Duration) Option {
	return timeout("read", d, func(c *config) *time.Duration { return &c.readTimeout })
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return timeout("read header", d, func(c *config) *time.Duration { return &c.readHeaderTimeout })
}

func WithWriteTimeout(d time.Duration) Option {
	return timeout("write", d, func(c *config) *time.Duration { return &c.writeTimeout })
}

// WithIdleTimeout bounds how long a keep-alive connection waits for its next
// request.
func WithIdleTimeout(d time.Duration) Option {
	return timeout("idle", d, func(c *config) *time.Duration { return &c.idleTimeout })
}

// WithShutdownTimeout bounds the graceful shutdown. Connections still open
// afterwards are closed.
func WithShutdownTimeout(d time.Duration) Option {
	return timeout("shutdown", d, func(c *config) *time.Duration { return &c.shutdownTimeout })
}

func timeout(name string, d time.Duration, field func(*config) *time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s timeout must be positive, got %s", name, d))
	}
	return func(c *config) { *field(c) = d }
}

// WithLogger sets the server logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook is called with the bound address once the server accepts
// connections.
func WithStartHook(h func(net.Addr)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook is called after the server has shut down.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
