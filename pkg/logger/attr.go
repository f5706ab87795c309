package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field names the first failing field of a rejected payload.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// FieldCount is the number of fields that failed validation.
func FieldCount(n int) slog.Attr {
	return slog.Int("failed_fields", n)
}

// SchemaCount is the number of schemas in a loaded registry.
func SchemaCount(n int) slog.Attr {
	return slog.Int("schemas", n)
}

// Source names where schema documents were loaded from.
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// RequestID returns an empty Attr for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// HTTPRequest groups the outcome of a served request under "http".
func HTTPRequest(method, path string, status, bytes int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Int("bytes", bytes),
	)
}
