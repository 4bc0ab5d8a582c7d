package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		segment string
		want    ShortcodeKind
	}{
		{"create", KindForm},
		{"snippet", KindForm},
		{"upload", KindForm},
		{"c-abc123", KindSnippet},
		{"c-abc123.py", KindSnippet},
		{"f-abc123", KindFile},
		{"abc123", KindPlain},
		{"creates", KindPlain},
		{"code", KindPlain},
		{"Create", KindPlain},
	}
	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.segment))
		})
	}

	assert.True(t, IsSnippetShortcode("c-abc123"))
	assert.True(t, IsFileShortcode("f-abc123"))
	assert.False(t, IsSnippetShortcode("abc123"))
	assert.False(t, IsFileShortcode("abc123"))
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		in, key, ext string
	}{
		{"abc", "abc", ""},
		{"abc.py", "abc", "py"},
		{"abc.min.JS", "abc.min", "js"},
		{"abc.", "abc.", ""},
		{".env", ".env", ""},
	}
	for _, tt := range tests {
		key, ext := SplitExtension(tt.in)
		assert.Equal(t, tt.key, key, tt.in)
		assert.Equal(t, tt.ext, ext, tt.in)
	}
}

func TestSnippetContentType(t *testing.T) {
	assert.Equal(t, "text/x-python; charset=utf-8", SnippetContentType("py"))
	assert.Equal(t, "application/x-yaml; charset=utf-8", SnippetContentType("yml"))
	assert.Equal(t, "application/json; charset=utf-8", SnippetContentType("JSON"))
	assert.Equal(t, "text/plain; charset=utf-8", SnippetContentType(""))
	assert.Equal(t, "text/plain; charset=utf-8", SnippetContentType("exe"))
}

func TestLegacyRedirectTarget(t *testing.T) {
	now := time.Date(2024, 2, 29, 23, 30, 0, 0, time.FixedZone("X", -5*3600))

	assert.Equal(t, "https://a.example/x?date=20240301", LegacyRedirectTarget("wl-", "wl-1", "https://a.example/x", now))
	assert.Equal(t, "https://a.example/x?y=1&date=20240301#top", LegacyRedirectTarget("wl-", "wl-1", "https://a.example/x?y=1#top", now))
	assert.Equal(t, "https://a.example/x", LegacyRedirectTarget("wl-", "abc", "https://a.example/x", now))
	assert.Equal(t, "https://a.example/x", LegacyRedirectTarget("", "wl-1", "https://a.example/x", now))
}

func TestRandomCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Za-z]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := randomCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("API"))
	assert.True(t, IsReserved("reset-password"))
	assert.False(t, IsReserved("foo"))
}
