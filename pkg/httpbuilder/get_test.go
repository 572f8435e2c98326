package httpbuilder

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuilderAppendsQuery(t *testing.T) {
	b := NewGetBuilder("http://example.com/search")
	require.NoError(t, b.Add("a", "1"))
	require.NoError(t, b.Add("b", "2"))

	assert.Equal(t, "http://example.com/search?a=1&b=2", b.URL())
	assert.Equal(t, "a=1&b=2", b.Query())
	assert.Equal(t, 2, b.Count())
}

func TestGetBuilderExistingQuery(t *testing.T) {
	b := NewGetBuilder("http://example.com/search?x=9")
	require.NoError(t, b.Add("a", "1"))

	assert.Equal(t, "http://example.com/search?x=9&a=1", b.URL())
}

func TestGetBuilderStripsTrailingSeparator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "question mark", in: "http://example.com/p?", want: "http://example.com/p?a=1"},
		{name: "ampersand", in: "http://example.com/p?x=9&", want: "http://example.com/p?x=9&a=1"},
		{name: "only one stripped", in: "http://example.com/p?x=9&&", want: "http://example.com/p?x=9&&a=1"},
		{name: "nothing to strip", in: "http://example.com/p", want: "http://example.com/p?a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewGetBuilder(tt.in)
			require.NoError(t, b.Add("a", "1"))
			assert.Equal(t, tt.want, b.URL())
		})
	}
}

func TestGetBuilderStripWithoutParameters(t *testing.T) {
	assert.Equal(t, "http://example.com/p", NewGetBuilder("http://example.com/p?").URL())
	assert.Equal(t, "http://example.com/p?x=1", NewGetBuilder("http://example.com/p?x=1&").URL())
}

func TestGetBuilderFlagAndEmptyValue(t *testing.T) {
	b := NewGetBuilder("http://example.com/")
	require.NoError(t, b.AddFlag("flag"))
	require.NoError(t, b.Add("name", ""))
	require.NoError(t, b.AddValue("nil", nil))

	assert.Equal(t, "http://example.com/?flag&name=&nil", b.URL())
}

func TestGetBuilderEncodesReservedCharacters(t *testing.T) {
	b := NewGetBuilder("http://example.com/")
	require.NoError(t, b.Add("q&a", "x=y z"))
	require.NoError(t, b.Add("path", "/a?b"))

	assert.Equal(t, "http://example.com/?q%26a=x%3Dy+z&path=%2Fa%3Fb", b.URL())
}

func TestGetBuilderBuild(t *testing.T) {
	defaults := NewDefaultHeaders(map[string]string{"User-Agent": "samvad-test"})
	b := NewGetBuilder("https://example.com/api", WithDefaultHeaders(defaults))
	require.NoError(t, b.Add("id", "7"))

	conn, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, conn.Method)
	assert.Equal(t, "https://example.com/api?id=7", conn.URL)
	assert.Equal(t, "UTF-8", conn.Header["Accept-Charset"])
	assert.Equal(t, "samvad-test", conn.Header["User-Agent"])
	assert.Empty(t, conn.Body)
}

func TestGetBuilderDefaultHeadersSeenAtBuildTime(t *testing.T) {
	defaults := NewDefaultHeaders(nil)
	b := NewGetBuilder("http://example.com/", WithDefaultHeaders(defaults))

	defaults.Add("X-Late", "1")
	conn, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "1", conn.Header["X-Late"])

	defaults.Remove("X-Late")
	conn, err = b.Build()
	require.NoError(t, err)
	assert.NotContains(t, conn.Header, "X-Late")
}

func TestGetBuilderDefaultHeaderOverridesAcceptCharset(t *testing.T) {
	defaults := NewDefaultHeaders(map[string]string{"Accept-Charset": "ISO-8859-1"})
	conn, err := NewGetBuilder("http://example.com/", WithDefaultHeaders(defaults)).Build()
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", conn.Header["Accept-Charset"])
}

func TestGetBuilderBuildMalformedURL(t *testing.T) {
	for _, raw := range []string{
		"example.com/no-scheme",
		"ftp://example.com/file",
		"http://",
		"http://exa mple.com/%zz",
	} {
		_, err := NewGetBuilder(raw).Build()
		assert.ErrorIs(t, err, ErrMalformedURL, raw)
	}
}
