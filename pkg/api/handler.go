package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/incoming/pkg/httpserver"
	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/payload"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

// Handler serves the schemas of a built registry. The registry can be
// swapped while requests are in flight.
type Handler struct {
	catalog  atomic.Pointer[catalog]
	logger   *slog.Logger
	maxDepth int
	checks   []httpserver.Check
}

// catalog is an immutable snapshot of a registry and its validators.
type catalog struct {
	registry   *validator.Registry
	validators map[string]*validator.Validator
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxDepth bounds nested schema validation, see validator.WithMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(h *Handler) { h.maxDepth = depth }
}

// WithReadinessChecks turns the health route into a readiness probe.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// NewHandler creates a handler for the schemas of reg, which must be built.
func NewHandler(reg *validator.Registry, opts ...Option) *Handler {
	h := &Handler{
		logger:   logger.NewNop(),
		maxDepth: validator.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.SetRegistry(reg)
	return h
}

// SetRegistry replaces the served schemas. Requests already running keep
// the registry they started with.
func (h *Handler) SetRegistry(reg *validator.Registry) {
	c := &catalog{
		registry:   reg,
		validators: make(map[string]*validator.Validator),
	}
	for _, name := range reg.Names() {
		if s, ok := reg.Lookup(name); ok {
			c.validators[name] = validator.New(s,
				validator.WithLogger(h.logger),
				validator.WithMaxDepth(h.maxDepth),
			)
		}
	}
	h.catalog.Store(c)
}

// Routes returns the router serving every API route.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, h.logger, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, h.logger, r, ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(h.logger, h.checks...))
	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", h.listSchemas)
		r.Get("/{name}", h.getSchema)
		r.Post("/{name}/validate", h.validate)
	})
	return r
}

// NewRouter is a shortcut for NewHandler(reg, opts...).Routes().
func NewRouter(reg *validator.Registry, opts ...Option) http.Handler {
	return NewHandler(reg, opts...).Routes()
}

func (h *Handler) listSchemas(w http.ResponseWriter, r *http.Request) {
	reg := h.catalog.Load().registry
	names := reg.Names()
	out := make([]SchemaInfo, 0, len(names))
	for _, name := range names {
		if s, ok := reg.Lookup(name); ok {
			out = append(out, describe(s))
		}
	}
	writeData(w, h.logger, r, out)
}

func (h *Handler) getSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, ok := h.catalog.Load().registry.Lookup(name)
	if !ok {
		writeError(w, h.logger, r, fmt.Errorf("%w %q", ErrUnknownSchema, name))
		return
	}
	writeData(w, h.logger, r, describe(s))
}

// ValidationResult is the data of a successful validate call.
type ValidationResult struct {
	Schema string `json:"schema"`
	Valid  bool   `json:"valid"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := h.catalog.Load().validators[name]
	if !ok {
		writeError(w, h.logger, r, fmt.Errorf("%w %q", ErrUnknownSchema, name))
		return
	}

	opts, err := overridesFromQuery(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	p, err := payload.FromRequest(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	res := v.Validate(p, opts...)
	if err := res.Err(); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeData(w, h.logger, r, ValidationResult{Schema: name, Valid: true})
}

func overridesFromQuery(r *http.Request) ([]validator.ValidateOption, error) {
	q := r.URL.Query()
	var opts []validator.ValidateOption

	for _, p := range []struct {
		key string
		opt func(bool) validator.ValidateOption
	}{
		{"strict", validator.OverrideStrict},
		{"required", validator.OverrideRequired},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s=%q: expected a boolean", ErrInvalidQuery, p.key, raw)
		}
		opts = append(opts, p.opt(b))
	}
	return opts, nil
}
