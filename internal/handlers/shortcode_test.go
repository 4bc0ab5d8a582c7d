package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/services"
)

type shortcodeMocks struct {
	links *MockLinkResolver
	views *MockViewRecorder
	bios  *MockBioGetter
}

func newShortcodeHandler(t *testing.T) (*ShortcodeHandler, shortcodeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := shortcodeMocks{
		links: NewMockLinkResolver(ctrl),
		views: NewMockViewRecorder(ctrl),
		bios:  NewMockBioGetter(ctrl),
	}
	pages, err := NewPages()
	require.NoError(t, err)

	h := NewShortcodeHandler(m.links, m.views, m.bios, pages, "wl-").
		WithClock(func() time.Time { return time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC) })
	return h, m
}

func serveShortcode(h *ShortcodeHandler, method, target string, r *http.Request) *httptest.ResponseRecorder {
	if r == nil {
		r = httptest.NewRequest(method, target, nil)
	}
	u, _ := url.Parse(target)
	r = withShortcode(r, strings.TrimPrefix(u.Path, "/"))
	rr := httptest.NewRecorder()
	if method == http.MethodPost {
		h.UnlockBin(rr, r)
	} else {
		h.Get(rr, r)
	}
	return rr
}

func TestShortcodeHandler_Redirect(t *testing.T) {
	h, m := newShortcodeHandler(t)

	link := &models.ShortLinkDB{Shortcode: "foo", TargetURL: "https://example.com"}
	event := models.AnalyticsEvent{Shortcode: "foo", TargetURL: "https://example.com", Country: "XX"}

	m.links.EXPECT().Resolve(gomock.Any(), "foo").Return(link, nil)
	m.views.EXPECT().NewEvent(gomock.Any(), "foo", "https://example.com").Return(event)
	m.views.EXPECT().RecordAsync(event)

	rr := serveShortcode(h, http.MethodGet, "/foo", nil)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.com", rr.Header().Get("Location"))
}

func TestShortcodeHandler_LegacyDatestamp(t *testing.T) {
	h, m := newShortcodeHandler(t)

	link := &models.ShortLinkDB{Shortcode: "wl-news", TargetURL: "https://example.com/a?x=1"}
	m.links.EXPECT().Resolve(gomock.Any(), "wl-news").Return(link, nil)
	m.views.EXPECT().NewEvent(gomock.Any(), "wl-news", link.TargetURL).Return(models.AnalyticsEvent{})
	m.views.EXPECT().RecordAsync(gomock.Any())

	rr := serveShortcode(h, http.MethodGet, "/wl-news", nil)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.com/a?x=1&date=20240501", rr.Header().Get("Location"))
}

func TestShortcodeHandler_QueryModes(t *testing.T) {
	h, m := newShortcodeHandler(t)

	link := &models.ShortLinkDB{Shortcode: "foo", TargetURL: "https://example.com"}
	m.links.EXPECT().Resolve(gomock.Any(), "foo").Return(link, nil).Times(2)

	rr := serveShortcode(h, http.MethodGet, "/foo?data=1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://example.com", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

	rr = serveShortcode(h, http.MethodGet, "/foo?edit=1", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/create?edit=foo", rr.Header().Get("Location"))
}

func TestShortcodeHandler_Snippet(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
	}{
		{name: "no extension", path: "/c-bar", contentType: "text/plain; charset=utf-8"},
		{name: "python", path: "/c-bar.py", contentType: "text/x-python; charset=utf-8"},
		{name: "unknown extension", path: "/c-bar.xyz", contentType: "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newShortcodeHandler(t)
			m.links.EXPECT().Resolve(gomock.Any(), "c-bar").
				Return(&models.ShortLinkDB{Shortcode: "c-bar", TargetURL: "print(1)", IsSnippet: true}, nil)

			rr := serveShortcode(h, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "print(1)", rr.Body.String())
			assert.Equal(t, tt.contentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestShortcodeHandler_Fallbacks(t *testing.T) {
	t.Run("snippet under plain key", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().Resolve(gomock.Any(), "bar").Return(nil, nil)
		m.links.EXPECT().Resolve(gomock.Any(), "c-bar").
			Return(&models.ShortLinkDB{Shortcode: "c-bar", TargetURL: "x", IsSnippet: true}, nil)

		rr := serveShortcode(h, http.MethodGet, "/bar", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "x", rr.Body.String())
	})

	t.Run("bio page", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().Resolve(gomock.Any(), "alice").Return(nil, nil)
		m.links.EXPECT().Resolve(gomock.Any(), "c-alice").Return(nil, nil)
		m.bios.EXPECT().Get(gomock.Any(), "alice").Return(&models.BioPage{
			Handle: "alice",
			Title:  "Alice & Co",
			Links:  []models.BioLink{{Title: "Site", URL: "https://alice.dev"}},
		}, nil)

		rr := serveShortcode(h, http.MethodGet, "/alice", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Alice &amp; Co")
		assert.Contains(t, rr.Body.String(), "https://alice.dev")
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().Resolve(gomock.Any(), "nope").Return(nil, nil)
		m.links.EXPECT().Resolve(gomock.Any(), "c-nope").Return(nil, nil)
		m.bios.EXPECT().Get(gomock.Any(), "nope").Return(nil, nil)

		rr := serveShortcode(h, http.MethodGet, "/nope", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	})

	t.Run("store failure", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().Resolve(gomock.Any(), "foo").Return(nil, errors.New("db down"))

		rr := serveShortcode(h, http.MethodGet, "/foo", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestShortcodeHandler_Forms(t *testing.T) {
	h, m := newShortcodeHandler(t)

	rr := serveShortcode(h, http.MethodGet, "/snippet", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login?redirect_url=%2Fsnippet", rr.Header().Get("Location"))

	user := &models.UserDB{UID: uuid.New(), Name: "A"}
	m.links.EXPECT().Resolve(gomock.Any(), "foo").
		Return(&models.ShortLinkDB{Shortcode: "foo", TargetURL: "https://example.com"}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/create?edit=foo", nil), user)
	rr = serveShortcode(h, http.MethodGet, "/create?edit=foo", req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `value="https://example.com"`)
	assert.Contains(t, rr.Body.String(), `value="foo"`)
}

func TestShortcodeHandler_FileBin(t *testing.T) {
	bin := &models.ShortLinkDB{
		Shortcode: "f-abc",
		TargetURL: `["https://cdn.test/f-abc/01-report%20final.pdf","https://cdn.test/f-abc/02-b.txt"]`,
		IsFile:    true,
	}

	t.Run("listing", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().Resolve(gomock.Any(), "f-abc").Return(bin, nil)

		rr := serveShortcode(h, http.MethodGet, "/f-abc", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), ">report final.pdf<")
		assert.Contains(t, rr.Body.String(), ">b.txt<")
	})

	t.Run("corrupt value", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		corrupt := *bin
		corrupt.TargetURL = `{"not":"a list"}`
		m.links.EXPECT().Resolve(gomock.Any(), "f-abc").Return(&corrupt, nil)

		rr := serveShortcode(h, http.MethodGet, "/f-abc", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("protected", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		protected := *bin
		protected.IsPasswordProtected = true
		m.links.EXPECT().Resolve(gomock.Any(), "f-abc").Return(&protected, nil).Times(2)

		rr := serveShortcode(h, http.MethodGet, "/f-abc", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `action="/f-abc"`)
		assert.NotContains(t, rr.Body.String(), "b.txt")

		m.links.EXPECT().VerifyBinPassword(gomock.Any(), "f-abc", "wrong").Return(false, nil)
		req := httptest.NewRequest(http.MethodPost, "/f-abc", strings.NewReader("password=wrong"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr = serveShortcode(h, http.MethodPost, "/f-abc", req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Incorrect password")

		m.links.EXPECT().VerifyBinPassword(gomock.Any(), "f-abc", "right").Return(true, nil)
		req = httptest.NewRequest(http.MethodPost, "/f-abc", strings.NewReader("password=right"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr = serveShortcode(h, http.MethodPost, "/f-abc", req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "b.txt")
	})

	t.Run("unlock missing bin", func(t *testing.T) {
		h, m := newShortcodeHandler(t)
		m.links.EXPECT().VerifyBinPassword(gomock.Any(), "f-zzz", "x").
			Return(false, &services.Failure{Kind: services.ErrNotFound, Message: "Link not found"})

		req := httptest.NewRequest(http.MethodPost, "/f-zzz", strings.NewReader("password=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := serveShortcode(h, http.MethodPost, "/f-zzz", req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "report final.pdf", fileName("https://cdn.test/f-abc/01-report%20final.pdf"))
	assert.Equal(t, "plain.txt", fileName("https://cdn.test/f-abc/plain.txt"))
}
