package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/repositories"
)

//go:generate mockgen -source=bio.go -destination=bio_mock.go -package=services

// BioStore reads and writes bio pages.
type BioStore interface {
	GetByHandle(ctx context.Context, handle string) (*models.BioPageDB, error)
	Upsert(ctx context.Context, page *models.BioPageDB) error
}

// NamespaceChecker reports whether a key is used by any link or bio page.
type NamespaceChecker interface {
	IsTaken(ctx context.Context, key string) (bool, error)
}

// BioPageInput is the editable content of a bio page.
type BioPageInput struct {
	Handle      string           `validate:"required,shortcode"`
	Title       string           `validate:"required,max=200"`
	Description string           `validate:"max=5000"`
	Links       []models.BioLink `validate:"max=50,dive"`
}

// BioService manages bio pages.
type BioService struct {
	store     BioStore
	namespace NamespaceChecker
	policy    *bluemonday.Policy
}

// NewBioService creates a new BioService instance.
func NewBioService(store BioStore, namespace NamespaceChecker) *BioService {
	return &BioService{
		store:     store,
		namespace: namespace,
		policy:    bluemonday.UGCPolicy(),
	}
}

// Upsert creates or updates the bio page of uid. A handle used by another
// user's page or by any link is a conflict.
func (svc *BioService) Upsert(ctx context.Context, uid uuid.UUID, in BioPageInput) (*models.BioPage, error) {
	in.Handle = strings.TrimSpace(in.Handle)
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in, "Handle and title are required"); err != nil {
		return nil, err
	}
	if IsReserved(in.Handle) {
		return nil, fail(ErrValidation, "This handle is reserved")
	}
	if IsSnippetShortcode(in.Handle) || IsFileShortcode(in.Handle) {
		return nil, fail(ErrValidation, "Handle cannot start with c- or f-")
	}

	existing, err := svc.store.GetByHandle(ctx, in.Handle)
	if err != nil {
		logger.Log.Errorw("failed to get bio page", "handle", in.Handle, "err", err)
		return nil, err
	}
	switch {
	case existing != nil && existing.UserID != uid:
		return nil, fail(ErrConflict, "Handle already in use")
	case existing == nil:
		taken, err := svc.namespace.IsTaken(ctx, in.Handle)
		if err != nil {
			logger.Log.Errorw("failed to check handle", "handle", in.Handle, "err", err)
			return nil, err
		}
		if taken {
			return nil, fail(ErrConflict, "Handle already in use")
		}
	}

	if in.Links == nil {
		in.Links = []models.BioLink{}
	}
	links, err := json.Marshal(in.Links)
	if err != nil {
		return nil, err
	}

	page := &models.BioPageDB{
		Handle:      in.Handle,
		UserID:      uid,
		Title:       in.Title,
		Description: svc.policy.Sanitize(in.Description),
		Links:       links,
	}
	if err := svc.store.Upsert(ctx, page); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fail(ErrConflict, "Handle already in use")
		}
		logger.Log.Errorw("failed to save bio page", "handle", in.Handle, "err", err)
		return nil, err
	}

	return page.Page()
}

// Get returns the bio page for handle, or nil.
func (svc *BioService) Get(ctx context.Context, handle string) (*models.BioPage, error) {
	page, err := svc.store.GetByHandle(ctx, handle)
	if err != nil {
		logger.Log.Errorw("failed to get bio page", "handle", handle, "err", err)
		return nil, err
	}
	if page == nil {
		return nil, nil
	}
	return page.Page()
}
