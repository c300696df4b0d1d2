package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlelem/internal/errors"
	"github.com/vango-dev/htmlelem/pkg/elem"
)

// Renderer writes element trees to output sinks.
type Renderer struct {
	config Config
	tracer trace.Tracer
}

// NewRenderer creates a Renderer from DefaultConfig and opts.
func NewRenderer(opts ...Option) *Renderer {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Renderer{
		config: config,
		tracer: newTracer(config),
	}
}

// Config returns a copy of the renderer configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(ctx context.Context, node *elem.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(ctx, &buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node to w. A failed write stops the pass; bytes
// written before the failure stay in w.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node *elem.Node) error {
	return r.render(ctx, w, node, nil)
}

// RenderWith is RenderToWriter with an explicit escape function, which takes
// precedence over the root node's own function and Config.Escape.
func (r *Renderer) RenderWith(ctx context.Context, w io.Writer, node *elem.Node, fn elem.EscapeFunc) error {
	return r.render(ctx, w, node, fn)
}

// Output renders node to standard output.
func (r *Renderer) Output(ctx context.Context, node *elem.Node) error {
	return r.render(ctx, os.Stdout, node, nil)
}

func (r *Renderer) render(ctx context.Context, w io.Writer, node *elem.Node, explicit elem.EscapeFunc) error {
	if node == nil {
		err := errors.New("E101")
		r.config.Logger.ErrorContext(ctx, "render failed", "error", err)
		return err
	}
	tag := node.TagName()

	ctx, span := startSpan(ctx, r.tracer, tag, node.SelfClosing(), node.ChildCount())

	start := time.Now()
	n, err := node.Render(w, explicit, r.config.Escape)
	elapsed := time.Since(start)

	if err != nil {
		err = errors.New("E100").Wrap(err)
	}
	r.config.Metrics.observe(tag, n, elapsed, err)
	endSpan(span, n, err)

	if err != nil {
		r.config.Logger.ErrorContext(ctx, "render failed",
			"tag", tag,
			"bytes", n,
			"error", err,
		)
		return err
	}

	r.config.Logger.DebugContext(ctx, "rendered",
		"tag", tag,
		"bytes", n,
		"duration", elapsed,
	)
	return nil
}
