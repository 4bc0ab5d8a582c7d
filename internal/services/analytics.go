package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
)

//go:generate mockgen -source=analytics.go -destination=analytics_mock.go -package=services

const (
	unknownCountry = "XX"
	recordTimeout  = 5 * time.Second
)

// AnalyticsWriter appends view events.
type AnalyticsWriter interface {
	Save(ctx context.Context, e models.AnalyticsEvent) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AnalyticsService records redirect views in the database and, when
// configured, publishes them to Kafka.
type AnalyticsService struct {
	repo        AnalyticsWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
	wg          sync.WaitGroup
}

// NewAnalyticsService creates a new AnalyticsService. kafkaWriter may be nil.
func NewAnalyticsService(repo AnalyticsWriter, kafkaWriter KafkaWriter) *AnalyticsService {
	return &AnalyticsService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// NewEvent builds the view event of a redirect served for r.
func (s *AnalyticsService) NewEvent(r *http.Request, shortcode, target string) models.AnalyticsEvent {
	return models.AnalyticsEvent{
		Shortcode: shortcode,
		TargetURL: target,
		Country:   RequestCountry(r),
		Timestamp: s.now().UTC(),
	}
}

// Record stores e and publishes it. Publishing errors are only logged.
func (s *AnalyticsService) Record(ctx context.Context, e models.AnalyticsEvent) error {
	if err := s.repo.Save(ctx, e); err != nil {
		logger.Log.Errorw("failed to save analytics event", "shortcode", e.Shortcode, "error", err)
		return err
	}
	s.publish(ctx, e)
	return nil
}

// RecordAsync records e in the background, detached from the request.
func (s *AnalyticsService) RecordAsync(e models.AnalyticsEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		_ = s.Record(ctx, e)
	}()
}

// Wait blocks until all background recordings have finished.
func (s *AnalyticsService) Wait() {
	s.wg.Wait()
}

func (s *AnalyticsService) publish(ctx context.Context, e models.AnalyticsEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("Failed to marshal analytics event for Kafka", "shortcode", e.Shortcode, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.Shortcode),
		Value: data,
		Time:  e.Timestamp,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish analytics event to Kafka", "shortcode", e.Shortcode, "error", err)
	} else {
		logger.Log.Infow("Analytics event published to Kafka", "shortcode", e.Shortcode, "country", e.Country)
	}
}

// RequestCountry reads the two-letter country set by the edge proxy.
func RequestCountry(r *http.Request) string {
	for _, h := range []string{"CF-IPCountry", "X-Country"} {
		if c := strings.ToUpper(strings.TrimSpace(r.Header.Get(h))); len(c) == 2 {
			return c
		}
	}
	return unknownCountry
}
