package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
)

// LinkCacheRepository caches resolved links in Redis under "link:<shortcode>".
type LinkCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached links
}

func NewLinkCacheRepository(client *redis.Client, expiration time.Duration) *LinkCacheRepository {
	return &LinkCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func linkCacheKey(shortcode string) string {
	return "link:" + shortcode
}

// Get returns nil, nil on a cache miss.
func (r *LinkCacheRepository) Get(ctx context.Context, shortcode string) (*models.ShortLinkDB, error) {
	key := linkCacheKey(shortcode)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("link cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var link models.ShortLinkDB
	if err := json.Unmarshal(val, &link); err != nil {
		return nil, err
	}
	// password hashes are never cached
	return &link, nil
}

// Set caches link without its password hash.
func (r *LinkCacheRepository) Set(ctx context.Context, link *models.ShortLinkDB) error {
	key := linkCacheKey(link.Shortcode)

	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("link cache set",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

func (r *LinkCacheRepository) Delete(ctx context.Context, shortcode string) error {
	key := linkCacheKey(shortcode)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("link cache delete",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
