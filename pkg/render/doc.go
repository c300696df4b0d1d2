// Package render writes element trees to output sinks with logging, metrics
// and tracing around each pass.
//
// A Renderer carries an immutable Config. Its Escape function is the
// fallback handed to the root node of every pass, so a program can choose an
// escape policy without touching the process-wide default in pkg/elem.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.WithEscape(elem.EscapeHTML))
//	html, err := r.RenderToString(ctx, node)
//
// To stream to a writer:
//
//	err := r.RenderToWriter(ctx, w, node)
//
// # Metrics
//
// Prometheus collectors are opt-in:
//
//	m := render.NewMetrics(render.WithNamespace("myapp"))
//	r := render.NewRenderer(render.WithMetrics(m))
//
// Metrics collected:
//   - htmlelem_renders_total: passes by root tag and status
//   - htmlelem_render_duration_seconds: pass duration by root tag
//   - htmlelem_rendered_bytes_total: bytes written to sinks
//
// # Tracing
//
// Each pass runs in a span named "htmlelem.render". The tracer comes from
// the global OpenTelemetry provider unless WithTracerProvider is given.
//
// A Renderer is safe for concurrent use. The trees it renders are not safe
// for concurrent mutation.
package render
