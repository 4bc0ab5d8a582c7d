package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/services"
)

//go:generate mockgen -source=shortcode.go -destination=shortcode_mock.go -package=handlers

// LinkResolver looks up stored entries by their full shortcode.
type LinkResolver interface {
	Resolve(ctx context.Context, shortcode string) (*models.ShortLinkDB, error)
	VerifyBinPassword(ctx context.Context, shortcode, binPassword string) (bool, error)
}

// ViewRecorder records redirect views without blocking the response.
type ViewRecorder interface {
	NewEvent(r *http.Request, shortcode, target string) models.AnalyticsEvent
	RecordAsync(e models.AnalyticsEvent)
}

// BioGetter looks up bio pages.
type BioGetter interface {
	Get(ctx context.Context, handle string) (*models.BioPage, error)
}

var formTitles = map[string]string{
	"create":  "Shorten a link",
	"snippet": "Share a snippet",
	"upload":  "Upload files",
}

var binNamePrefix = regexp.MustCompile(`^\d+-`)

// ShortcodeHandler serves the single path segment namespace shared by
// redirects, snippets, file bins, bio pages and the protected forms.
type ShortcodeHandler struct {
	links        LinkResolver
	views        ViewRecorder
	bios         BioGetter
	pages        *Pages
	legacyPrefix string
	now          func() time.Time
}

// NewShortcodeHandler creates a new ShortcodeHandler instance.
func NewShortcodeHandler(links LinkResolver, views ViewRecorder, bios BioGetter, pages *Pages, legacyPrefix string) *ShortcodeHandler {
	return &ShortcodeHandler{
		links:        links,
		views:        views,
		bios:         bios,
		pages:        pages,
		legacyPrefix: legacyPrefix,
		now:          time.Now,
	}
}

// WithClock replaces the time source.
func (h *ShortcodeHandler) WithClock(now func() time.Time) *ShortcodeHandler {
	h.now = now
	return h
}

// Get dispatches GET /{shortcode}.
// @Summary Resolve shortcode
// @Description Redirects, serves a snippet, lists a file bin, renders a bio page or a form
// @Tags shortcodes
// @Param shortcode path string true "Shortcode"
// @Param data query string false "1 returns the raw target as text"
// @Param edit query string false "1 reopens the create form"
// @Success 200 {string} string "Snippet, file listing, bio page or form"
// @Success 302 {string} string "Redirect"
// @Failure 404 {string} string "Not found page"
// @Router /{shortcode} [get]
func (h *ShortcodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "shortcode")

	switch services.Classify(segment) {
	case services.KindForm:
		h.serveForm(w, r, segment)
	case services.KindSnippet:
		if !h.serveSnippet(w, r, segment) {
			h.pages.NotFound(w, r)
		}
	case services.KindFile:
		h.serveFileBin(w, r, segment)
	default:
		h.servePlain(w, r, segment)
	}
}

// UnlockBin handles the password form of a protected file bin.
// @Summary Unlock file bin
// @Tags shortcodes
// @Accept x-www-form-urlencoded
// @Param shortcode path string true "f- shortcode"
// @Param password formData string true "Bin password"
// @Success 200 {string} string "File listing"
// @Failure 401 {string} string "Password form"
// @Router /{shortcode} [post]
func (h *ShortcodeHandler) UnlockBin(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "shortcode")
	if services.Classify(segment) != services.KindFile {
		h.pages.NotFound(w, r)
		return
	}

	ok, err := h.links.VerifyBinPassword(r.Context(), segment, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		logger.Log.Errorw("failed to verify bin password", "request_id", middlewares.GetRequestID(r.Context()), "shortcode", segment, "error", err)
		h.pages.InternalError(w, r)
		return
	}
	if !ok {
		h.pages.Render(w, http.StatusUnauthorized, PageBinPassword, binPasswordPage{
			pageData:  newPageData(r),
			Shortcode: segment,
			Error:     "Incorrect password",
		})
		return
	}

	link, found := h.resolve(w, r, segment)
	if !found {
		return
	}
	h.renderFiles(w, r, link)
}

func (h *ShortcodeHandler) serveForm(w http.ResponseWriter, r *http.Request, word string) {
	if !middlewares.GetAuthFromContext(r.Context()).Authenticated() {
		http.Redirect(w, r, middlewares.LoginRedirect(r.URL.RequestURI()), http.StatusFound)
		return
	}

	page := formPage{
		pageData: newPageData(r),
		Word:     word,
		Title:    formTitles[word],
		Edit:     r.URL.Query().Get("edit"),
	}
	if page.Edit != "" {
		link, err := h.links.Resolve(r.Context(), page.Edit)
		if err != nil {
			h.pages.InternalError(w, r)
			return
		}
		if link != nil && !link.IsSnippet && !link.IsFile {
			page.Target = link.TargetURL
		}
	}
	h.pages.Render(w, http.StatusOK, PageForm, page)
}

// serveSnippet serves the snippet stored for segment ("c-key" or
// "c-key.ext") and reports whether one exists.
func (h *ShortcodeHandler) serveSnippet(w http.ResponseWriter, r *http.Request, segment string) bool {
	key, ext := services.SplitExtension(strings.TrimPrefix(segment, models.SnippetPrefix))
	link, err := h.links.Resolve(r.Context(), models.SnippetPrefix+key)
	if err != nil {
		h.pages.InternalError(w, r)
		return true
	}
	if link == nil || !link.IsSnippet {
		return false
	}

	w.Header().Set("Content-Type", services.SnippetContentType(ext))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "sandbox")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(link.TargetURL))
	return true
}

func (h *ShortcodeHandler) serveFileBin(w http.ResponseWriter, r *http.Request, segment string) {
	link, found := h.resolve(w, r, segment)
	if !found {
		return
	}
	if link.IsPasswordProtected {
		h.pages.Render(w, http.StatusOK, PageBinPassword, binPasswordPage{
			pageData:  newPageData(r),
			Shortcode: segment,
		})
		return
	}
	h.renderFiles(w, r, link)
}

// resolve looks up a file bin. It answers 404 or 500 itself and reports
// whether the caller can continue.
func (h *ShortcodeHandler) resolve(w http.ResponseWriter, r *http.Request, segment string) (*models.ShortLinkDB, bool) {
	link, err := h.links.Resolve(r.Context(), segment)
	if err != nil {
		h.pages.InternalError(w, r)
		return nil, false
	}
	if link == nil || !link.IsFile {
		h.pages.NotFound(w, r)
		return nil, false
	}
	return link, true
}

func (h *ShortcodeHandler) renderFiles(w http.ResponseWriter, r *http.Request, link *models.ShortLinkDB) {
	urls, err := link.FileURLs()
	if err != nil {
		logger.Log.Errorw("corrupt file bin", "request_id", middlewares.GetRequestID(r.Context()), "shortcode", link.Shortcode, "error", err)
		h.pages.InternalError(w, r)
		return
	}

	files := make([]fileEntry, 0, len(urls))
	for _, u := range urls {
		files = append(files, fileEntry{Name: fileName(u), URL: u})
	}
	h.pages.Render(w, http.StatusOK, PageFiles, filesPage{pageData: newPageData(r), Files: files})
}

func (h *ShortcodeHandler) servePlain(w http.ResponseWriter, r *http.Request, key string) {
	link, err := h.links.Resolve(r.Context(), key)
	if err != nil {
		h.pages.InternalError(w, r)
		return
	}

	if link != nil && !link.IsSnippet && !link.IsFile {
		query := r.URL.Query()
		switch {
		case query.Get("data") == "1":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(link.TargetURL))
		case query.Get("edit") == "1":
			http.Redirect(w, r, "/create?edit="+url.QueryEscape(key), http.StatusFound)
		default:
			h.views.RecordAsync(h.views.NewEvent(r, key, link.TargetURL))
			http.Redirect(w, r, services.LegacyRedirectTarget(h.legacyPrefix, key, link.TargetURL, h.now()), http.StatusFound)
		}
		return
	}

	if h.serveSnippet(w, r, models.SnippetPrefix+key) {
		return
	}

	page, err := h.bios.Get(r.Context(), key)
	if err != nil {
		h.pages.InternalError(w, r)
		return
	}
	if page != nil {
		h.pages.Render(w, http.StatusOK, PageBio, bioPage{
			pageData:    newPageData(r),
			Page:        page,
			Description: template.HTML(page.Description),
		})
		return
	}

	h.pages.NotFound(w, r)
}

// fileName is the display name of an uploaded object URL.
func fileName(objectURL string) string {
	name := objectURL
	if u, err := url.Parse(objectURL); err == nil {
		name = u.Path
	}
	name = path.Base(name)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return binNamePrefix.ReplaceAllString(name, "")
}
