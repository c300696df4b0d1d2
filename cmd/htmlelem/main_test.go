package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlelem/internal/errors"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	want := `<ul id="mylist" class="fancy-list"><li>Item 1</li><li>Item 2</li><li>Item 3</li><li>Item 4</li></ul>`

	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, want+"\n"+want+"\n", out)

	out, _, err = execute(t, "demo", "--shorthand")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "text children",
			args: []string{"tag", "p", "Hello,", " World!"},
			want: "<p>Hello, World!</p>\n",
		},
		{
			name: "escaped by default",
			args: []string{"tag", "p", "a < b"},
			want: "<p>a &lt; b</p>\n",
		},
		{
			name: "escape none",
			args: []string{"--escape", "none", "tag", "p", "<b>bold</b>"},
			want: "<p><b>bold</b></p>\n",
		},
		{
			name: "id first then class",
			args: []string{"tag", "a", "--attr", "href=/docs?a=1", "--class", "nav", "--class", "active", "--id", "docs", "Docs"},
			want: `<a id="docs" class="nav active" href="/docs?a=1">Docs</a>` + "\n",
		},
		{
			name: "void tag",
			args: []string{"tag", "img", "--attr", "src=logo.png", "--attr", "alt=Logo", "ignored"},
			want: `<img src="logo.png" alt="Logo" />` + "\n",
		},
		{
			name: "data attribute",
			args: []string{"tag", "div", "--attr", "data-role=main"},
			want: `<div data-role="main"></div>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTagDropsDisallowedAttribute(t *testing.T) {
	out, stderr, err := execute(t, "tag", "div", "--attr", "bogus=1", "--attr", "title=t")
	require.NoError(t, err)
	assert.Equal(t, `<div title="t"></div>`+"\n", out)
	assert.Contains(t, stderr, `attribute "bogus" is not allowed on <div>`)
	assert.Contains(t, stderr, "msg=\"attribute dropped\"")
}

func TestTagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"empty tag", []string{"tag", " "}, "E202"},
		{"bad attr flag", []string{"tag", "p", "--attr", "novalue"}, "E201"},
		{"empty attr name", []string{"tag", "p", "--attr", "=x"}, "E201"},
		{"unknown escape", []string{"--escape", "xml", "tag", "p"}, "E200"},
		{"unknown log level", []string{"--log-level", "loud", "demo"}, "E203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "tag", "br")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=rendered")
	assert.Contains(t, stderr, "tag=br")
}

func TestMetricsFlag(t *testing.T) {
	out, stderr, err := execute(t, "--metrics", "tag", "p", "x")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>\n", out)
	assert.Contains(t, stderr, `htmlelem_renders_total{status="ok",tag="p"} 1`)
	assert.Contains(t, stderr, "htmlelem_rendered_bytes_total 8")
	assert.Contains(t, stderr, `htmlelem_render_duration_seconds_count{tag="p"} 1`)

	_, stderr, err = execute(t, "demo")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "htmlelem_renders_total")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Go version:"))
}
