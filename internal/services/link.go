package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/password"
	"github.com/sbilibin2017/rdrx/internal/repositories"
)

//go:generate mockgen -source=link.go -destination=link_mock.go -package=services

const (
	maxCodeAttempts = 5

	MinDeleteAfter = time.Minute
	MaxDeleteAfter = 8760 * time.Hour

	MaxBinFiles = 20
	MaxBinSize  = 100 << 20
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LinkReader defines read-only operations for links.
type LinkReader interface {
	GetByShortcode(ctx context.Context, shortcode string) (*models.ShortLinkDB, error)
	ListByCreator(ctx context.Context, uid uuid.UUID) ([]models.ShortLinkDB, error)
	IsTaken(ctx context.Context, key string) (bool, error)
}

// LinkWriter defines write operations for links.
type LinkWriter interface {
	Save(ctx context.Context, link *models.ShortLinkDB) error
	Overwrite(ctx context.Context, link *models.ShortLinkDB) error
	UpdateTarget(ctx context.Context, shortcode, target string) error
	Delete(ctx context.Context, shortcode string) error
}

// DeletionStore schedules and forgets link deletions.
type DeletionStore interface {
	Save(ctx context.Context, d models.DeletionDB) error
	Delete(ctx context.Context, shortcode string) error
}

// LinkCache caches resolved links.
type LinkCache interface {
	Get(ctx context.Context, shortcode string) (*models.ShortLinkDB, error)
	Set(ctx context.Context, link *models.ShortLinkDB) error
	Delete(ctx context.Context, shortcode string) error
}

// AnalyticsLister reads the view log of a link.
type AnalyticsLister interface {
	ListByShortcode(ctx context.Context, shortcode string) ([]models.AnalyticsEvent, error)
}

// ObjectStore stores file bin contents.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	RemovePrefix(ctx context.Context, prefix string) error
}

// LinkConfig holds the deployment settings of LinkService.
type LinkConfig struct {
	BaseURL           string
	AdminOverrideCode string
}

// CreateLinkInput is a request to create a redirect or a snippet.
type CreateLinkInput struct {
	URL               string `validate:"omitempty,http_url,max=2048"`
	Snippet           string `validate:"omitempty,max=1048576"`
	Custom            bool
	CustomCode        string `validate:"omitempty,shortcode"`
	AdminOverrideCode string
	DeleteAfter       string
	CreatorID         *uuid.UUID
}

// UploadFile is one file of a file bin.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// CreatedLink is returned after a successful creation.
type CreatedLink struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
}

// LinkService manages redirects, snippets and file bins.
type LinkService struct {
	reader    LinkReader
	writer    LinkWriter
	deletions DeletionStore
	cache     LinkCache
	analytics AnalyticsLister
	objects   ObjectStore
	cfg       LinkConfig
	now       func() time.Time
}

// NewLinkService creates a new LinkService instance. cache may be nil.
func NewLinkService(
	reader LinkReader,
	writer LinkWriter,
	deletions DeletionStore,
	cache LinkCache,
	analytics AnalyticsLister,
	objects ObjectStore,
	cfg LinkConfig,
) *LinkService {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &LinkService{
		reader:    reader,
		writer:    writer,
		deletions: deletions,
		cache:     cache,
		analytics: analytics,
		objects:   objects,
		cfg:       cfg,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (svc *LinkService) WithClock(now func() time.Time) *LinkService {
	svc.now = now
	return svc
}

// Create stores a redirect or snippet under a custom or random key.
// A taken custom key is a conflict unless the admin override code matches,
// in which case the existing entry is overwritten.
func (svc *LinkService) Create(ctx context.Context, in CreateLinkInput) (*CreatedLink, error) {
	in.URL = strings.TrimSpace(in.URL)
	in.CustomCode = strings.TrimSpace(in.CustomCode)

	switch {
	case in.URL == "" && in.Snippet == "":
		return nil, fail(ErrValidation, "Either url or snippet is required")
	case in.URL != "" && in.Snippet != "":
		return nil, fail(ErrValidation, "Provide either url or snippet, not both")
	}
	if err := validateInput(in, "Either url or snippet is required"); err != nil {
		return nil, err
	}

	deleteAfter, err := parseDeleteAfter(in.DeleteAfter)
	if err != nil {
		return nil, err
	}

	isSnippet := in.Snippet != ""
	link := &models.ShortLinkDB{
		TargetURL: in.URL,
		CreatorID: in.CreatorID,
		IsSnippet: isSnippet,
	}
	if isSnippet {
		link.TargetURL = in.Snippet
	}

	var key string
	if in.Custom {
		key, err = svc.createCustom(ctx, link, in)
	} else {
		key, err = svc.createRandom(ctx, link)
	}
	if err != nil {
		return nil, err
	}

	if err := svc.scheduleDeletion(ctx, link.Shortcode, deleteAfter, false); err != nil {
		return nil, err
	}

	return &CreatedLink{Shortcode: key, URL: svc.cfg.BaseURL + "/" + link.Shortcode}, nil
}

func (svc *LinkService) createCustom(ctx context.Context, link *models.ShortLinkDB, in CreateLinkInput) (string, error) {
	key := in.CustomCode
	if err := checkCustomCode(key); err != nil {
		return "", err
	}
	link.Shortcode = storedShortcode(key, link.IsSnippet, false)

	override := svc.validOverride(in.AdminOverrideCode)

	taken, err := svc.reader.IsTaken(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to check shortcode", "key", key, "err", err)
		return "", err
	}
	if taken && !override {
		return "", fail(ErrConflict, "Shortcode already in use")
	}

	if override {
		if taken {
			if err := svc.clearNamespace(ctx, key); err != nil {
				return "", err
			}
		}
		if err := svc.writer.Overwrite(ctx, link); err != nil {
			logger.Log.Errorw("failed to overwrite link", "shortcode", link.Shortcode, "err", err)
			return "", err
		}
		svc.invalidate(ctx, link.Shortcode)
		logger.Log.Infow("link overwritten with admin override", "shortcode", link.Shortcode)
		return key, nil
	}

	if err := svc.writer.Save(ctx, link); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", fail(ErrConflict, "Shortcode already in use")
		}
		logger.Log.Errorw("failed to save link", "shortcode", link.Shortcode, "err", err)
		return "", err
	}
	return key, nil
}

func (svc *LinkService) createRandom(ctx context.Context, link *models.ShortLinkDB) (string, error) {
	return svc.allocate(ctx, func(key string) error {
		link.Shortcode = storedShortcode(key, link.IsSnippet, link.IsFile)
		return svc.writer.Save(ctx, link)
	})
}

// allocate draws random keys until save succeeds on a free one.
func (svc *LinkService) allocate(ctx context.Context, save func(key string) error) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		key, err := svc.freeKey(ctx)
		if err != nil {
			return "", err
		}

		err = save(key)
		if errors.Is(err, repositories.ErrDuplicate) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to save link", "key", key, "err", err)
			return "", err
		}
		return key, nil
	}
	return "", fmt.Errorf("no free shortcode after %d attempts", maxCodeAttempts)
}

// freeKey returns a random key not used by any link kind or bio page.
func (svc *LinkService) freeKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		key, err := randomCode()
		if err != nil {
			return "", err
		}
		taken, err := svc.reader.IsTaken(ctx, key)
		if err != nil {
			logger.Log.Errorw("failed to check shortcode", "key", key, "err", err)
			return "", err
		}
		if !taken {
			return key, nil
		}
	}
	return "", fmt.Errorf("no free shortcode after %d attempts", maxCodeAttempts)
}

// CreateFileBin uploads files under f-<key>/ and stores their URLs.
// Uploaded objects are removed again when the bin cannot be saved.
func (svc *LinkService) CreateFileBin(ctx context.Context, creatorID *uuid.UUID, files []UploadFile, binPassword, deleteAfter string) (*CreatedLink, error) {
	if len(files) == 0 {
		return nil, fail(ErrValidation, "At least one file is required")
	}
	if len(files) > MaxBinFiles {
		return nil, fail(ErrValidation, fmt.Sprintf("At most %d files can be uploaded at once", MaxBinFiles))
	}
	var total int64
	for _, f := range files {
		total += f.Size
	}
	if total > MaxBinSize {
		return nil, fail(ErrValidation, "Upload too large. Maximum total size is 100MB")
	}

	after, err := parseDeleteAfter(deleteAfter)
	if err != nil {
		return nil, err
	}

	link := &models.ShortLinkDB{CreatorID: creatorID, IsFile: true}
	if binPassword != "" {
		hash, err := password.Hash(binPassword)
		if err != nil {
			return nil, err
		}
		link.PasswordHash = &hash
		link.IsPasswordProtected = true
	}

	key, err := svc.freeKey(ctx)
	if err != nil {
		return nil, err
	}
	link.Shortcode = models.FilePrefix + key

	if err := svc.storeBin(ctx, link, files); err != nil {
		if rmErr := svc.objects.RemovePrefix(ctx, link.Shortcode+"/"); rmErr != nil {
			logger.Log.Errorw("failed to remove partial upload", "shortcode", link.Shortcode, "err", rmErr)
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fail(ErrConflict, "Shortcode already in use, please retry")
		}
		logger.Log.Errorw("failed to create file bin", "shortcode", link.Shortcode, "err", err)
		return nil, err
	}

	if err := svc.scheduleDeletion(ctx, link.Shortcode, after, true); err != nil {
		return nil, err
	}

	return &CreatedLink{Shortcode: key, URL: svc.cfg.BaseURL + "/" + link.Shortcode}, nil
}

func (svc *LinkService) storeBin(ctx context.Context, link *models.ShortLinkDB, files []UploadFile) error {
	urls := make([]string, 0, len(files))
	for i, f := range files {
		name := fmt.Sprintf("%02d-%s", i+1, sanitizeFileName(f.Name))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		url, err := svc.objects.Put(ctx, link.Shortcode+"/"+name, f.Body, f.Size, contentType)
		if err != nil {
			return err
		}
		urls = append(urls, url)
	}

	data, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	link.TargetURL = string(data)
	return svc.writer.Save(ctx, link)
}

// Resolve returns the link stored under shortcode, or nil.
// The cache is consulted first; cache failures only cost a database read.
func (svc *LinkService) Resolve(ctx context.Context, shortcode string) (*models.ShortLinkDB, error) {
	if svc.cache != nil {
		link, err := svc.cache.Get(ctx, shortcode)
		if err != nil {
			logger.Log.Warnw("link cache read failed", "shortcode", shortcode, "err", err)
		}
		if link != nil {
			return link, nil
		}
	}

	link, err := svc.reader.GetByShortcode(ctx, shortcode)
	if err != nil {
		logger.Log.Errorw("failed to get link", "shortcode", shortcode, "err", err)
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, link); err != nil {
			logger.Log.Warnw("link cache write failed", "shortcode", shortcode, "err", err)
		}
	}
	return link, nil
}

// VerifyBinPassword checks password against a protected file bin.
// Unprotected bins accept any password.
func (svc *LinkService) VerifyBinPassword(ctx context.Context, shortcode, binPassword string) (bool, error) {
	link, err := svc.reader.GetByShortcode(ctx, shortcode)
	if err != nil {
		return false, err
	}
	if link == nil {
		return false, fail(ErrNotFound, "Link not found")
	}
	if !link.IsPasswordProtected {
		return true, nil
	}
	if link.PasswordHash == nil {
		return false, nil
	}
	return password.Verify(binPassword, *link.PasswordHash), nil
}

// Update replaces the target of a redirect or the text of a snippet owned by uid.
func (svc *LinkService) Update(ctx context.Context, uid uuid.UUID, shortcode, target string) (*models.ShortLinkDB, error) {
	link, err := svc.owned(ctx, uid, shortcode)
	if err != nil {
		return nil, err
	}

	switch {
	case link.IsFile:
		return nil, fail(ErrValidation, "File bins cannot be edited")
	case link.IsSnippet:
		if target == "" {
			return nil, fail(ErrValidation, "Snippet cannot be empty")
		}
	default:
		target = strings.TrimSpace(target)
		in := struct {
			Target string `validate:"required,http_url,max=2048"`
		}{target}
		if err := validateInput(in, "Target URL is required"); err != nil {
			return nil, err
		}
	}

	if err := svc.writer.UpdateTarget(ctx, shortcode, target); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fail(ErrNotFound, "Link not found")
		}
		logger.Log.Errorw("failed to update link", "shortcode", shortcode, "err", err)
		return nil, err
	}
	svc.invalidate(ctx, shortcode)

	link.TargetURL = target
	return link, nil
}

// Delete removes a link owned by uid together with its stored files.
func (svc *LinkService) Delete(ctx context.Context, uid uuid.UUID, shortcode string) error {
	link, err := svc.owned(ctx, uid, shortcode)
	if err != nil {
		return err
	}

	return svc.purge(ctx, link)
}

// purge removes a link with its stored files, scheduled deletion and cache entry.
func (svc *LinkService) purge(ctx context.Context, link *models.ShortLinkDB) error {
	shortcode := link.Shortcode
	if link.IsFile {
		if err := svc.objects.RemovePrefix(ctx, shortcode+"/"); err != nil {
			logger.Log.Errorw("failed to remove bin objects", "shortcode", shortcode, "err", err)
			return err
		}
	}
	if err := svc.writer.Delete(ctx, shortcode); err != nil {
		logger.Log.Errorw("failed to delete link", "shortcode", shortcode, "err", err)
		return err
	}
	if err := svc.deletions.Delete(ctx, shortcode); err != nil {
		logger.Log.Errorw("failed to drop scheduled deletion", "shortcode", shortcode, "err", err)
		return err
	}
	svc.invalidate(ctx, shortcode)
	return nil
}

// clearNamespace purges every link kind stored under key so that an override
// leaves exactly one entry. Keys held by a bio page are a conflict.
func (svc *LinkService) clearNamespace(ctx context.Context, key string) error {
	var existing []*models.ShortLinkDB
	for _, shortcode := range []string{key, models.SnippetPrefix + key, models.FilePrefix + key} {
		link, err := svc.reader.GetByShortcode(ctx, shortcode)
		if err != nil {
			logger.Log.Errorw("failed to get link", "shortcode", shortcode, "err", err)
			return err
		}
		if link != nil {
			existing = append(existing, link)
		}
	}
	if len(existing) == 0 {
		return fail(ErrConflict, "Shortcode is used by a bio page")
	}

	for _, link := range existing {
		if err := svc.purge(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

// ListByCreator returns the links of uid, newest first.
func (svc *LinkService) ListByCreator(ctx context.Context, uid uuid.UUID) ([]models.ShortLinkDB, error) {
	links, err := svc.reader.ListByCreator(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to list links", "uid", uid, "err", err)
		return nil, err
	}
	return links, nil
}

// Analytics returns the view log of a link owned by uid.
func (svc *LinkService) Analytics(ctx context.Context, uid uuid.UUID, shortcode string) ([]models.AnalyticsEvent, error) {
	if _, err := svc.owned(ctx, uid, shortcode); err != nil {
		return nil, err
	}
	events, err := svc.analytics.ListByShortcode(ctx, shortcode)
	if err != nil {
		logger.Log.Errorw("failed to list analytics", "shortcode", shortcode, "err", err)
		return nil, err
	}
	return events, nil
}

func (svc *LinkService) owned(ctx context.Context, uid uuid.UUID, shortcode string) (*models.ShortLinkDB, error) {
	link, err := svc.reader.GetByShortcode(ctx, shortcode)
	if err != nil {
		logger.Log.Errorw("failed to get link", "shortcode", shortcode, "err", err)
		return nil, err
	}
	if link == nil {
		return nil, fail(ErrNotFound, "Link not found")
	}
	if !link.OwnedBy(uid) {
		return nil, fail(ErrForbidden, "You do not own this link")
	}
	return link, nil
}

func (svc *LinkService) scheduleDeletion(ctx context.Context, shortcode string, after time.Duration, isFile bool) error {
	if after <= 0 {
		return nil
	}
	d := models.DeletionDB{
		Shortcode: shortcode,
		DeleteAt:  svc.now().Add(after).UnixMilli(),
		IsFile:    isFile,
	}
	if err := svc.deletions.Save(ctx, d); err != nil {
		logger.Log.Errorw("failed to schedule deletion", "shortcode", shortcode, "err", err)
		return err
	}
	return nil
}

func (svc *LinkService) invalidate(ctx context.Context, shortcode string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, shortcode); err != nil {
		logger.Log.Warnw("link cache invalidation failed", "shortcode", shortcode, "err", err)
	}
}

func (svc *LinkService) validOverride(code string) bool {
	if svc.cfg.AdminOverrideCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(svc.cfg.AdminOverrideCode)) == 1
}

func checkCustomCode(key string) error {
	if key == "" {
		return fail(ErrValidation, "Custom code is required")
	}
	if IsReserved(key) {
		return fail(ErrValidation, "This shortcode is reserved")
	}
	if IsSnippetShortcode(key) || IsFileShortcode(key) {
		return fail(ErrValidation, "Custom code cannot start with c- or f-")
	}
	return nil
}

func storedShortcode(key string, isSnippet, isFile bool) string {
	switch {
	case isSnippet:
		return models.SnippetPrefix + key
	case isFile:
		return models.FilePrefix + key
	default:
		return key
	}
}

// parseDeleteAfter accepts an empty string or a Go duration between 1m and 8760h.
func parseDeleteAfter(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < MinDeleteAfter || d > MaxDeleteAfter {
		return 0, fail(ErrValidation, "delete_after must be a duration between 1m and 8760h")
	}
	return d, nil
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 128 {
		name = name[len(name)-128:]
	}
	return name
}
