package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/services"
)

//go:generate mockgen -source=links.go -destination=links_mock.go -package=handlers

const (
	maxUploadBytes   = services.MaxBinSize + 1<<20
	uploadMemoryBuf  = 32 << 20
	createBodyBytes  = 2 << 20
	uploadFilesField = "files"
)

// LinkCreator creates redirects and snippets.
type LinkCreator interface {
	Create(ctx context.Context, in services.CreateLinkInput) (*services.CreatedLink, error)
}

// FileBinCreator creates file bins.
type FileBinCreator interface {
	CreateFileBin(ctx context.Context, creatorID *uuid.UUID, files []services.UploadFile, binPassword, deleteAfter string) (*services.CreatedLink, error)
}

// LinkManager lets owners inspect and change their links.
type LinkManager interface {
	ListByCreator(ctx context.Context, uid uuid.UUID) ([]models.ShortLinkDB, error)
	Update(ctx context.Context, uid uuid.UUID, shortcode, target string) (*models.ShortLinkDB, error)
	Delete(ctx context.Context, uid uuid.UUID, shortcode string) error
	Analytics(ctx context.Context, uid uuid.UUID, shortcode string) ([]models.AnalyticsEvent, error)
}

// CreateLinkRequest creates a redirect (url) or a snippet (snippet).
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Destination of a redirect
	// default: https://example.com
	URL string `json:"url,omitempty"`

	// Raw text of a snippet
	Snippet string `json:"snippet,omitempty"`

	// Use custom_code instead of a random code
	Custom bool `json:"custom,omitempty"`

	// default: foo
	CustomCode string `json:"custom_code,omitempty"`

	// Overwrites an existing entry when it matches the configured code
	AdminOverrideCode string `json:"admin_override_code,omitempty"`

	// Go duration after which the entry is deleted, e.g. 24h
	DeleteAfter string `json:"delete_after,omitempty"`
}

// CreateLinkResponse is returned after a link, snippet or file bin is created.
// swagger:model CreateLinkResponse
type CreateLinkResponse struct {
	Success bool `json:"success"`

	// default: foo
	Shortcode string `json:"shortcode"`

	// default: https://rdrx.co/foo
	URL string `json:"url"`
}

// LinksResponse lists the links of the signed in user.
// swagger:model LinksResponse
type LinksResponse struct {
	Success bool                 `json:"success"`
	Links   []models.ShortLinkDB `json:"links"`
}

// UpdateLinkRequest replaces the target of a link.
// swagger:model UpdateLinkRequest
type UpdateLinkRequest struct {
	Target string `json:"target"`
}

// LinkResponse carries one link.
// swagger:model LinkResponse
type LinkResponse struct {
	Success bool                `json:"success"`
	Link    *models.ShortLinkDB `json:"link"`
}

// AnalyticsResponse is the view log of a link.
// swagger:model AnalyticsResponse
type AnalyticsResponse struct {
	Success   bool                    `json:"success"`
	Shortcode string                  `json:"shortcode"`
	Views     int                     `json:"views"`
	Countries map[string]int          `json:"countries"`
	Events    []models.AnalyticsEvent `json:"events"`
}

func creatorID(r *http.Request) *uuid.UUID {
	auth := middlewares.GetAuthFromContext(r.Context())
	if !auth.Authenticated() {
		return nil
	}
	uid := auth.User.UID
	return &uid
}

// NewCreateLinkHandler returns an HTTP handler creating a redirect or a snippet.
// @Summary Create short link
// @Description Stores a redirect or a snippet under a random or custom shortcode
// @Tags links
// @Accept json
// @Produce json
// @Param request body handlers.CreateLinkRequest true "Link"
// @Success 200 {object} handlers.CreateLinkResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "Shortcode already in use"
// @Router / [post]
func NewCreateLinkHandler(svc LinkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, createBodyBytes)

		var req CreateLinkRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := svc.Create(r.Context(), services.CreateLinkInput{
			URL:               req.URL,
			Snippet:           req.Snippet,
			Custom:            req.Custom,
			CustomCode:        req.CustomCode,
			AdminOverrideCode: req.AdminOverrideCode,
			DeleteAfter:       req.DeleteAfter,
			CreatorID:         creatorID(r),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CreateLinkResponse{Success: true, Shortcode: created.Shortcode, URL: created.URL})
	}
}

// NewUploadHandler returns an HTTP handler creating a file bin from the
// multipart field "files".
// @Summary Upload files
// @Tags links
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files of the bin"
// @Param password formData string false "Password protecting the bin"
// @Param delete_after formData string false "Go duration after which the bin is deleted"
// @Success 200 {object} handlers.CreateLinkResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid upload"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc FileBinCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(uploadMemoryBuf); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid upload")
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logger.Log.Warnw("failed to remove multipart temp files", "error", err)
			}
		}()

		headers := r.MultipartForm.File[uploadFilesField]
		files := make([]services.UploadFile, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				logger.Log.Errorw("failed to open uploaded file", "request_id", middlewares.GetRequestID(r.Context()), "name", fh.Filename, "error", err)
				writeMessage(w, http.StatusBadRequest, "Invalid upload")
				return
			}
			defer f.Close()
			files = append(files, services.UploadFile{
				Name:        fh.Filename,
				Size:        fh.Size,
				ContentType: fh.Header.Get("Content-Type"),
				Body:        f,
			})
		}

		created, err := svc.CreateFileBin(r.Context(), creatorID(r), files, r.FormValue("password"), r.FormValue("delete_after"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CreateLinkResponse{Success: true, Shortcode: created.Shortcode, URL: created.URL})
	}
}

// NewListLinksHandler lists the links of the signed in user.
// @Summary List my links
// @Tags links
// @Produce json
// @Success 200 {object} handlers.LinksResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /api/links [get]
// @Security BearerAuth
func NewListLinksHandler(svc LinkManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := middlewares.GetAuthFromContext(r.Context())
		links, err := svc.ListByCreator(r.Context(), auth.User.UID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if links == nil {
			links = []models.ShortLinkDB{}
		}
		writeJSON(w, http.StatusOK, LinksResponse{Success: true, Links: links})
	}
}

// NewUpdateLinkHandler replaces the target of an owned link.
// @Summary Update link
// @Tags links
// @Accept json
// @Produce json
// @Param shortcode path string true "Stored shortcode"
// @Param request body handlers.UpdateLinkRequest true "New target"
// @Success 200 {object} handlers.LinkResponse
// @Failure 403 {object} handlers.ErrorResponse "You do not own this link"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /api/links/{shortcode} [put]
// @Security BearerAuth
func NewUpdateLinkHandler(svc LinkManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, createBodyBytes)

		var req UpdateLinkRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		auth := middlewares.GetAuthFromContext(r.Context())
		link, err := svc.Update(r.Context(), auth.User.UID, chi.URLParam(r, "shortcode"), req.Target)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LinkResponse{Success: true, Link: link})
	}
}

// NewDeleteLinkHandler deletes an owned link.
// @Summary Delete link
// @Tags links
// @Produce json
// @Param shortcode path string true "Stored shortcode"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "You do not own this link"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /api/links/{shortcode} [delete]
// @Security BearerAuth
func NewDeleteLinkHandler(svc LinkManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := middlewares.GetAuthFromContext(r.Context())
		if err := svc.Delete(r.Context(), auth.User.UID, chi.URLParam(r, "shortcode")); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Link deleted"})
	}
}

// NewLinkAnalyticsHandler returns the view log of an owned link.
// @Summary Link analytics
// @Tags links
// @Produce json
// @Param shortcode path string true "Stored shortcode"
// @Success 200 {object} handlers.AnalyticsResponse
// @Failure 403 {object} handlers.ErrorResponse "You do not own this link"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /api/links/{shortcode}/analytics [get]
// @Security BearerAuth
func NewLinkAnalyticsHandler(svc LinkManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shortcode := chi.URLParam(r, "shortcode")
		auth := middlewares.GetAuthFromContext(r.Context())
		events, err := svc.Analytics(r.Context(), auth.User.UID, shortcode)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if events == nil {
			events = []models.AnalyticsEvent{}
		}

		countries := make(map[string]int)
		for _, e := range events {
			countries[e.Country]++
		}
		writeJSON(w, http.StatusOK, AnalyticsResponse{
			Success:   true,
			Shortcode: shortcode,
			Views:     len(events),
			Countries: countries,
			Events:    events,
		})
	}
}

// BioUpserter saves bio pages.
type BioUpserter interface {
	Upsert(ctx context.Context, uid uuid.UUID, in services.BioPageInput) (*models.BioPage, error)
}

// BioRequest is the editable content of a bio page.
// swagger:model BioRequest
type BioRequest struct {
	// default: alice
	Handle      string           `json:"handle"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Links       []models.BioLink `json:"links"`
}

// BioResponse carries the saved page and its public URL.
// swagger:model BioResponse
type BioResponse struct {
	Success bool            `json:"success"`
	Page    *models.BioPage `json:"page"`
	URL     string          `json:"url"`
}

// NewUpsertBioHandler creates or updates the bio page of the signed in user.
// @Summary Save bio page
// @Tags bio
// @Accept json
// @Produce json
// @Param request body handlers.BioRequest true "Bio page"
// @Success 200 {object} handlers.BioResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "Handle already in use"
// @Router /api/bio [post]
// @Security BearerAuth
func NewUpsertBioHandler(svc BioUpserter, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, createBodyBytes)

		var req BioRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		auth := middlewares.GetAuthFromContext(r.Context())
		page, err := svc.Upsert(r.Context(), auth.User.UID, services.BioPageInput{
			Handle:      req.Handle,
			Title:       req.Title,
			Description: req.Description,
			Links:       req.Links,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BioResponse{Success: true, Page: page, URL: baseURL + "/" + page.Handle})
	}
}
