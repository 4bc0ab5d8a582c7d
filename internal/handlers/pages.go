package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageLogin       = "login"
	PageSignup      = "signup"
	PageReset       = "reset"
	PageForm        = "form"
	PageFiles       = "files"
	PageBinPassword = "bin_password"
	PageBio         = "bio"
	PageError       = "error"
)

// Pages holds the parsed server rendered pages.
type Pages struct {
	templates map[string]*template.Template
}

// NewPages parses every page together with the shared layout.
func NewPages() (*Pages, error) {
	names := []string{PageLogin, PageSignup, PageReset, PageForm, PageFiles, PageBinPassword, PageBio, PageError}
	p := &Pages{templates: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.ParseFS(templateFS,
			"templates/base.html",
			"templates/script.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

// Render writes page name with the given status.
func (p *Pages) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := p.templates[name]
	if !ok {
		logger.Log.Errorw("unknown page", "page", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// NotFound renders the 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

// InternalError renders the 500 page.
func (p *Pages) InternalError(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	p.Render(w, status, PageError, errorPage{
		pageData: newPageData(r),
		Status:   status,
		Message:  message,
	})
}

type pageData struct {
	User *models.PublicUser
}

func newPageData(r *http.Request) pageData {
	return pageData{User: middlewares.GetAuthFromContext(r.Context()).User.Public()}
}

type errorPage struct {
	pageData
	Status  int
	Message string
}

type authPage struct {
	pageData
	RedirectURL string
	Token       string
}

type formPage struct {
	pageData
	Word   string
	Title  string
	Edit   string
	Target string
}

type fileEntry struct {
	Name string
	URL  string
}

type filesPage struct {
	pageData
	Files []fileEntry
}

type binPasswordPage struct {
	pageData
	Shortcode string
	Error     string
}

type bioPage struct {
	pageData
	Page        *models.BioPage
	Description template.HTML
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// NewLoginPageHandler renders the login page.
func NewLoginPageHandler(pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Render(w, http.StatusOK, PageLogin, authPage{
			pageData:    newPageData(r),
			RedirectURL: safeRedirect(r.URL.Query().Get("redirect_url")),
		})
	}
}

// NewSignupPageHandler renders the signup page.
func NewSignupPageHandler(pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Render(w, http.StatusOK, PageSignup, authPage{
			pageData:    newPageData(r),
			RedirectURL: safeRedirect(r.URL.Query().Get("redirect_url")),
		})
	}
}

// NewResetPageHandler renders the reset request form, or the new password
// form when the link from the reset mail carries a token.
func NewResetPageHandler(pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Render(w, http.StatusOK, PageReset, authPage{
			pageData: newPageData(r),
			Token:    r.URL.Query().Get("token"),
		})
	}
}

// NewHealthHandler reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router /healthz [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "ok"})
	}
}
