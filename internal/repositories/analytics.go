package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rdrx/internal/models"
)

// AnalyticsRepository is the append-only view log.
type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Save(ctx context.Context, e models.AnalyticsEvent) error {
	const query = `
		INSERT INTO analytics (shortcode, target_url, country, timestamp)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{e.Shortcode, e.TargetURL, e.Country, e.Timestamp}

	_, err := r.db.ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return err
}

// ListByShortcode returns the views of shortcode, newest first.
func (r *AnalyticsRepository) ListByShortcode(ctx context.Context, shortcode string) ([]models.AnalyticsEvent, error) {
	const query = `
		SELECT shortcode, target_url, country, timestamp
		FROM analytics
		WHERE shortcode = $1
		ORDER BY timestamp DESC
	`

	events := []models.AnalyticsEvent{}
	err := r.db.SelectContext(ctx, &events, query, shortcode)

	logQuery(query, []any{shortcode}, len(events), err)

	return events, err
}
