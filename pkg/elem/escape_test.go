package elem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<script>", "&lt;script&gt;"},
		{"quotes", `"it's"`, "&#34;it&#39;s&#34;"},
		{"unicode", "Hello 世界", "Hello 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.input))
		})
	}
}

func TestDefaultEscape(t *testing.T) {
	require.Nil(t, DefaultEscape())

	SetDefaultEscape(EscapeHTML)
	t.Cleanup(func() { SetDefaultEscape(nil) })

	require.NotNil(t, DefaultEscape())
	assert.Equal(t, "<p>&lt;</p>", New("p", WithChildren("<")).String())

	SetDefaultEscape(nil)
	assert.Nil(t, DefaultEscape())
	assert.Equal(t, "<p><</p>", New("p", WithChildren("<")).String())
}

func TestResolveEscapePriority(t *testing.T) {
	SetDefaultEscape(func(s string) string { return "default:" + s })
	t.Cleanup(func() { SetDefaultEscape(nil) })

	explicit := func(s string) string { return "explicit:" + s }
	own := func(s string) string { return "own:" + s }
	fallback := func(s string) string { return "fallback:" + s }

	withOwn := New("p", WithEscape(own))
	plain := New("p")
	ignored := New("p", WithoutEscape(), WithEscape(own))

	assert.Equal(t, "explicit:x", withOwn.ResolveEscape(explicit, fallback)("x"))
	assert.Equal(t, "own:x", withOwn.ResolveEscape(nil, fallback)("x"))
	assert.Equal(t, "fallback:x", plain.ResolveEscape(nil, fallback)("x"))
	assert.Equal(t, "default:x", plain.ResolveEscape(nil, nil)("x"))
	assert.Nil(t, ignored.ResolveEscape(explicit, fallback))
}

func TestDefaultEscapeDoesNotOverrideExplicit(t *testing.T) {
	SetDefaultEscape(EscapeHTML)
	t.Cleanup(func() { SetDefaultEscape(nil) })

	n := New("p", WithChildren("a<b"))
	assert.Equal(t, "<p>A<B</p>", n.OuterHTML(strings.ToUpper))
}
