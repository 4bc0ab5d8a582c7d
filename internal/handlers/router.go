package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
)

// AuthAPI is everything the auth endpoints need.
type AuthAPI interface {
	Signuper
	Loginer
	PasswordResetter
	AccountManager
}

// LinkAPI is everything the link endpoints and the dispatcher need.
type LinkAPI interface {
	LinkCreator
	FileBinCreator
	LinkManager
	LinkResolver
}

// BioAPI is everything the bio endpoints need.
type BioAPI interface {
	BioUpserter
	BioGetter
}

// RouterDeps wires the router to its services.
type RouterDeps struct {
	Sessions middlewares.SessionVerifier
	Auth     AuthAPI
	Links    LinkAPI
	Views    ViewRecorder
	Bios     BioAPI
	Pages    *Pages

	// DB runs link writes in a request transaction. Nil disables it.
	DB *sqlx.DB

	BaseURL      string
	LegacyPrefix string
	SwaggerURL   string
}

// NewRouter builds the HTTP routes of the application.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionMiddleware(deps.Sessions))

	tx := func(next http.Handler) http.Handler { return next }
	if deps.DB != nil {
		tx = middlewares.TxMiddleware(deps.DB)
	}

	shortcodes := NewShortcodeHandler(deps.Links, deps.Views, deps.Bios, deps.Pages, deps.LegacyPrefix)

	r.NotFound(deps.Pages.NotFound)
	r.Get("/healthz", NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.SwaggerURL)))

	// Pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/create", http.StatusFound)
	})
	r.Get("/login", NewLoginPageHandler(deps.Pages))
	r.Get("/signup", NewSignupPageHandler(deps.Pages))
	r.Get("/reset-password", NewResetPageHandler(deps.Pages))

	r.With(tx).Post("/", NewCreateLinkHandler(deps.Links))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", NewSignupHandler(deps.Auth))
		r.Post("/login", NewLoginHandler(deps.Auth))
		r.Post("/logout", NewLogoutHandler())
		r.Post("/reset-password", NewRequestResetHandler(deps.Auth))
		r.Post("/reset-password/confirm", NewConfirmResetHandler(deps.Auth))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)
			r.Get("/me", NewMeHandler())
			r.Post("/profile", NewUpdateProfileHandler(deps.Auth))
			r.Post("/password", NewChangePasswordHandler(deps.Auth))
			r.Post("/profile/picture", NewUploadPictureHandler(deps.Auth))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession)
		r.With(tx).Post("/upload", NewUploadHandler(deps.Links))
		r.Post("/api/bio", NewUpsertBioHandler(deps.Bios, deps.BaseURL))

		r.Route("/api/links", func(r chi.Router) {
			r.Get("/", NewListLinksHandler(deps.Links))
			r.With(tx).Put("/{shortcode}", NewUpdateLinkHandler(deps.Links))
			r.With(tx).Delete("/{shortcode}", NewDeleteLinkHandler(deps.Links))
			r.Get("/{shortcode}/analytics", NewLinkAnalyticsHandler(deps.Links))
		})
	})

	r.Get("/{shortcode}", shortcodes.Get)
	r.Post("/{shortcode}", shortcodes.UnlockBin)

	return r
}
