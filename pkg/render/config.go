package render

import (
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlelem/internal/errors"
	"github.com/vango-dev/htmlelem/pkg/elem"
)

// Default tracer name for render spans.
const defaultTracerName = "github.com/vango-dev/htmlelem/pkg/render"

// Config configures a Renderer.
type Config struct {
	// Escape is the fallback escape function for every pass. It applies
	// when no explicit function is given and the root node has none of its
	// own. Nil defers to elem.DefaultEscape.
	Escape elem.EscapeFunc

	// Logger receives a Debug record per pass and an Error record per
	// failed pass. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records Prometheus metrics. Nil disables metrics.
	Metrics *Metrics

	// TracerName is the instrumentation name of the tracer.
	TracerName string

	// TracerProvider supplies the tracer. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// Option configures a Renderer.
type Option func(*Config)

// WithEscape sets the fallback escape function.
func WithEscape(fn elem.EscapeFunc) Option {
	return func(c *Config) {
		c.Escape = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		Escape:     nil,
		Logger:     slog.Default(),
		Metrics:    nil,
		TracerName: defaultTracerName,
	}
}

// ParseEscape maps an escape mode name to its function. "html" escapes text
// with elem.EscapeHTML; "none" and "raw" leave it as is.
func ParseEscape(mode string) (elem.EscapeFunc, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "html", "":
		return elem.EscapeHTML, nil
	case "none", "raw":
		return elem.NoEscape, nil
	default:
		return nil, errors.New("E200").
			WithDetail("Unknown escape mode " + `"` + mode + `"`).
			WithSuggestion("Use --escape html or --escape none")
	}
}
