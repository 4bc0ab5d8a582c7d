package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/rdrx/internal/facades"
	"github.com/sbilibin2017/rdrx/internal/handlers"
	"github.com/sbilibin2017/rdrx/internal/jwt"
	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/repositories"
	"github.com/sbilibin2017/rdrx/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the runtime configuration read from the environment.
type config struct {
	AppHost    string
	AppPort    string
	AppBaseURL string
	LogLevel   string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	JWTSecretKey      string
	AdminOverrideCode string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string

	MailgunDomain string
	MailgunAPIKey string
	MailFrom      string
	MailEnabled   bool

	KafkaBrokers        []string
	KafkaAnalyticsTopic string

	CleanupInterval       time.Duration
	LegacyDatestampPrefix string
}

// @title RdRx API
// @version 1.0.0
// @description URL shortener with snippets, file bins and bio pages
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. Variables already set in the environment win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getDuration := func(key, defaultValue string) (time.Duration, error) {
		v, err := time.ParseDuration(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppBaseURL = strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExp, err = getDuration("REDIS_EXP", "1h"); err != nil {
		return
	}

	// Auth config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.AdminOverrideCode = getEnv("ADMIN_OVERRIDE_CODE", "")

	// Object storage config
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "localhost:9000")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "minioadmin")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "minioadmin")
	cfg.S3Bucket = getEnv("S3_BUCKET", "rdrx")
	if cfg.S3UseSSL, err = getBool("S3_USE_SSL", "false"); err != nil {
		return
	}
	cfg.S3PublicURL = getEnv("S3_PUBLIC_URL", "http://localhost:9000/rdrx")

	// Mail config
	cfg.MailgunDomain = getEnv("MAILGUN_DOMAIN", "")
	cfg.MailgunAPIKey = getEnv("MAILGUN_API_KEY", "")
	cfg.MailFrom = getEnv("MAIL_FROM", "RdRx <no-reply@localhost>")
	if cfg.MailEnabled, err = getBool("MAIL_ENABLED", "false"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaAnalyticsTopic = getEnv("KAFKA_ANALYTICS_TOPIC", "rdrx.analytics")

	// Cleanup config
	if cfg.CleanupInterval, err = getDuration("CLEANUP_INTERVAL", "1m"); err != nil {
		return
	}
	cfg.LegacyDatestampPrefix = getEnv("LEGACY_DATESTAMP_PREFIX", "wl-")

	return
}

// run initializes the logger, storage clients and HTTP server.
// It starts the cleanup loop and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Object storage
	minioClient, err := facades.NewMinioClient(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3UseSSL)
	if err != nil {
		return fmt.Errorf("object storage client error: %w", err)
	}
	ensureBucket(ctx, minioClient, cfg.S3Bucket)
	objects := facades.NewObjectStore(minioClient, cfg.S3Bucket, cfg.S3PublicURL)

	// Mail
	mailer := facades.NewMailer(
		facades.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		cfg.MailFrom,
		cfg.AppBaseURL,
		cfg.MailEnabled,
	)

	// Analytics events are only published when brokers are configured.
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaAnalyticsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		}
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				log.Errorw("failed to close kafka writer", "error", err)
			}
		}()
		log.Infof("Publishing analytics to kafka topic %s", cfg.KafkaAnalyticsTopic)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	linkReadRepo := repositories.NewLinkReadRepository(db)
	linkWriteRepo := repositories.NewLinkWriteRepository(db, middlewares.GetTxFromContext)
	deletionRepo := repositories.NewDeletionRepository(db, middlewares.GetTxFromContext)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	bioRepo := repositories.NewBioRepository(db)
	linkCache := repositories.NewLinkCacheRepository(rdb, cfg.RedisExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt.New(cfg.JWTSecretKey), mailer, objects)
	linkService := services.NewLinkService(linkReadRepo, linkWriteRepo, deletionRepo, linkCache, analyticsRepo, objects, services.LinkConfig{
		BaseURL:           cfg.AppBaseURL,
		AdminOverrideCode: cfg.AdminOverrideCode,
	})
	analyticsService := services.NewAnalyticsService(analyticsRepo, kafkaWriter)
	bioService := services.NewBioService(bioRepo, linkReadRepo)
	cleanupService := services.NewCleanupService(deletionRepo, linkWriteRepo, objects, linkCache)

	pages, err := handlers.NewPages()
	if err != nil {
		return err
	}

	// Setup router
	router := handlers.NewRouter(handlers.RouterDeps{
		Sessions:     authService,
		Auth:         authService,
		Links:        linkService,
		Views:        analyticsService,
		Bios:         bioService,
		Pages:        pages,
		DB:           db,
		BaseURL:      cfg.AppBaseURL,
		LegacyPrefix: cfg.LegacyDatestampPrefix,
		SwaggerURL:   cfg.AppBaseURL + "/swagger/doc.json",
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cleanupDone := make(chan struct{})
	go func() {
		defer close(cleanupDone)
		cleanupService.Run(ctxShutdown, cfg.CleanupInterval)
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr = <-errChan:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	<-cleanupDone
	analyticsService.Wait()

	log.Info("HTTP server stopped gracefully")
	return serveErr
}

// ensureBucket creates the upload bucket when it does not exist yet.
// Failures are logged; uploads will report them again.
func ensureBucket(ctx context.Context, client *minio.Client, bucket string) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		logger.Log.Warnw("failed to check bucket", "bucket", bucket, "error", err)
		return
	}
	if exists {
		return
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Log.Warnw("failed to create bucket", "bucket", bucket, "error", err)
		return
	}
	logger.Log.Infow("bucket created", "bucket", bucket)
}
