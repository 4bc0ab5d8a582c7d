package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
)

//go:generate mockgen -source=cleanup.go -destination=cleanup_mock.go -package=services

// DueDeletionStore lists and consumes scheduled deletions.
type DueDeletionStore interface {
	ListDue(ctx context.Context, nowMs int64) ([]models.DeletionDB, error)
	Delete(ctx context.Context, shortcode string) error
}

// LinkDeleter removes links.
type LinkDeleter interface {
	Delete(ctx context.Context, shortcode string) error
}

// ObjectRemover removes stored objects by prefix.
type ObjectRemover interface {
	RemovePrefix(ctx context.Context, prefix string) error
}

// CacheInvalidator drops cached links.
type CacheInvalidator interface {
	Delete(ctx context.Context, shortcode string) error
}

// CleanupService deletes links whose scheduled deletion time has passed.
type CleanupService struct {
	deletions DueDeletionStore
	links     LinkDeleter
	objects   ObjectRemover
	cache     CacheInvalidator
	now       func() time.Time
}

// NewCleanupService creates a new CleanupService. cache may be nil.
func NewCleanupService(deletions DueDeletionStore, links LinkDeleter, objects ObjectRemover, cache CacheInvalidator) *CleanupService {
	return &CleanupService{
		deletions: deletions,
		links:     links,
		objects:   objects,
		cache:     cache,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (s *CleanupService) WithClock(now func() time.Time) *CleanupService {
	s.now = now
	return s
}

// Sweep processes every due deletion once. A row that fails is logged and
// left in place for the next sweep. It returns the number of rows processed.
func (s *CleanupService) Sweep(ctx context.Context) (int, error) {
	due, err := s.deletions.ListDue(ctx, s.now().UnixMilli())
	if err != nil {
		logger.Log.Errorw("failed to list due deletions", "error", err)
		return 0, err
	}

	done := 0
	for _, d := range due {
		if err := s.process(ctx, d); err != nil {
			logger.Log.Errorw("failed to process deletion", "shortcode", d.Shortcode, "is_file", d.IsFile, "error", err)
			continue
		}
		done++
	}

	if len(due) > 0 {
		logger.Log.Infow("cleanup sweep finished", "due", len(due), "deleted", done)
	}
	return done, nil
}

func (s *CleanupService) process(ctx context.Context, d models.DeletionDB) error {
	if d.IsFile {
		if err := s.objects.RemovePrefix(ctx, d.Shortcode+"/"); err != nil {
			return err
		}
	}
	if err := s.links.Delete(ctx, d.Shortcode); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, d.Shortcode); err != nil {
			logger.Log.Warnw("link cache invalidation failed", "shortcode", d.Shortcode, "error", err)
		}
	}
	return s.deletions.Delete(ctx, d.Shortcode)
}

// Run sweeps every interval until ctx is cancelled.
func (s *CleanupService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Infow("cleanup scheduler started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("cleanup scheduler stopped")
			return
		case <-ticker.C:
			_, _ = s.Sweep(ctx)
		}
	}
}
