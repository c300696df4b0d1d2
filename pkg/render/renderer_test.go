package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	herrors "github.com/vango-dev/htmlelem/internal/errors"
	"github.com/vango-dev/htmlelem/pkg/elem"
)

var errSink = errors.New("sink closed")

// failingWriter accepts limit writes and then fails.
type failingWriter struct {
	buf   bytes.Buffer
	limit int
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.limit {
		return 0, errSink
	}
	return w.buf.Write(p)
}

func demoList() *elem.Node {
	return elem.New("ul",
		elem.WithAttributes(elem.A("id", "mylist")),
		elem.WithChildren(
			elem.New("li", elem.WithChildren("Item 1")),
			elem.New("li", elem.WithChildren("Item 2")),
		),
	)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRenderToString(t *testing.T) {
	r := NewRenderer(WithLogger(quietLogger()))

	got, err := r.RenderToString(context.Background(), demoList())
	require.NoError(t, err)
	assert.Equal(t, `<ul id="mylist"><li>Item 1</li><li>Item 2</li></ul>`, got)
}

func TestRenderToStringNilNode(t *testing.T) {
	r := NewRenderer(WithLogger(quietLogger()))

	got, err := r.RenderToString(context.Background(), nil)
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, herrors.HasCode(err, "E101"))
}

func TestConfigEscapeIsFallback(t *testing.T) {
	r := NewRenderer(WithLogger(quietLogger()), WithEscape(elem.EscapeHTML))
	ctx := context.Background()

	p := elem.New("p", elem.WithChildren("a<b", elem.New("b", elem.WithChildren("&"))))
	got, err := r.RenderToString(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "<p>a&lt;b<b>&amp;</b></p>", got)

	// The root's own function wins over the fallback.
	own := elem.New("p", elem.WithEscape(strings.ToUpper), elem.WithChildren("x<y"))
	got, err = r.RenderToString(ctx, own)
	require.NoError(t, err)
	assert.Equal(t, "<p>X<Y</p>", got)

	raw := elem.New("p", elem.WithoutEscape(), elem.WithChildren("<i>"))
	got, err = r.RenderToString(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "<p><i></p>", got)
}

func TestRenderWithExplicitEscape(t *testing.T) {
	r := NewRenderer(WithLogger(quietLogger()), WithEscape(elem.EscapeHTML))

	var buf bytes.Buffer
	n := elem.New("p", elem.WithEscape(elem.EscapeHTML), elem.WithChildren("<x>"))
	require.NoError(t, r.RenderWith(context.Background(), &buf, n, elem.NoEscape))
	assert.Equal(t, "<p><x></p>", buf.String())
}

func TestRenderToWriterSinkFailure(t *testing.T) {
	r := NewRenderer(WithLogger(quietLogger()))
	w := &failingWriter{limit: 2}

	err := r.RenderToWriter(context.Background(), w, demoList())
	require.Error(t, err)
	assert.True(t, herrors.HasCode(err, "E100"))
	assert.ErrorIs(t, err, errSink)
	assert.Equal(t, "<ul", w.buf.String())
}

func TestRenderLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRenderer(WithLogger(logger))

	_, err := r.RenderToString(context.Background(), elem.New("br"))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "msg=rendered")
	assert.Contains(t, logs.String(), "tag=br")
	assert.Contains(t, logs.String(), "bytes=9")

	logs.Reset()
	err = r.RenderToWriter(context.Background(), &failingWriter{}, elem.New("br"))
	require.Error(t, err)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), `msg="render failed"`)
	assert.Contains(t, logs.String(), "sink closed")
}

func TestRenderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"), WithConstLabels(prometheus.Labels{"app": "unit"}))
	r := NewRenderer(WithLogger(quietLogger()), WithMetrics(m))
	ctx := context.Background()

	_, err := r.RenderToString(ctx, demoList())
	require.NoError(t, err)
	_, err = r.RenderToString(ctx, demoList())
	require.NoError(t, err)
	require.Error(t, r.RenderToWriter(ctx, &failingWriter{}, demoList()))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("ul", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("ul", statusError)))
	size := float64(len(`<ul id="mylist"><li>Item 1</li><li>Item 2</li></ul>`))
	assert.Equal(t, 2*size, testutil.ToFloat64(m.bytesWritten))
	assert.Equal(t, 1, testutil.CollectAndCount(m.renderDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"test_renders_total",
		"test_render_duration_seconds",
		"test_rendered_bytes_total",
	}, names)
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe("p", 1, 0, nil) })
}

func TestRenderTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	r := NewRenderer(WithLogger(quietLogger()), WithTracerProvider(tp), WithTracerName("unit"))
	ctx := context.Background()

	_, err := r.RenderToString(ctx, demoList())
	require.NoError(t, err)
	require.Error(t, r.RenderToWriter(ctx, &failingWriter{}, elem.New("img")))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, spanName, ok.Name())
	assert.Equal(t, "unit", ok.InstrumentationScope().Name)
	assert.Equal(t, codes.Ok, ok.Status().Code)
	assert.Contains(t, ok.Attributes(), attrTag.String("ul"))
	assert.Contains(t, ok.Attributes(), attrChildCount.Int(2))
	assert.Contains(t, ok.Attributes(), attribute.Int64("htmlelem.bytes", 51))

	failed := spans[1]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Contains(t, failed.Attributes(), attrSelfClose.Bool(true))
	require.Len(t, failed.Events(), 1)
	assert.Equal(t, "exception", failed.Events()[0].Name)
}

func TestRendererConcurrentUse(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	r := NewRenderer(WithLogger(quietLogger()), WithMetrics(m), WithEscape(elem.EscapeHTML))
	tree := demoList()
	want := tree.String()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.RenderToString(context.Background(), tree)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("ul", statusOK)))
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Nil(t, c.Escape)
	assert.NotNil(t, c.Logger)
	assert.Nil(t, c.Metrics)
	assert.Equal(t, defaultTracerName, c.TracerName)

	r := NewRenderer(WithLogger(nil))
	assert.NotNil(t, r.Config().Logger)
}

func TestParseEscape(t *testing.T) {
	fn, err := ParseEscape("html")
	require.NoError(t, err)
	assert.Equal(t, "&lt;", fn("<"))

	fn, err = ParseEscape(" NONE ")
	require.NoError(t, err)
	assert.Equal(t, "<", fn("<"))

	_, err = ParseEscape("xml")
	require.Error(t, err)
	assert.True(t, herrors.HasCode(err, "E200"))
}

func TestOutputWritesToStdout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	renderer := NewRenderer(WithLogger(quietLogger()))
	require.NoError(t, renderer.Output(context.Background(), elem.New("hr")))
	require.NoError(t, w.Close())

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<hr></hr>", string(got))
}
