package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/gw-event-listing/docs"
	"github.com/sbilibin2017/gw-event-listing/internal/database"
	"github.com/sbilibin2017/gw-event-listing/internal/facades"
	"github.com/sbilibin2017/gw-event-listing/internal/handlers"
	"github.com/sbilibin2017/gw-event-listing/internal/jwt"
	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/middlewares"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/repositories"
	"github.com/sbilibin2017/gw-event-listing/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaWriteTimeout = 2 * time.Second
)

// config is the full application configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	GRPCPort string

	Postgres        database.Config
	PostgresMigrate bool

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisEventTTL     time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
	JWTIssuer    string
	JWTAudience  string

	CORSAllowedOrigins []string
	RateLimitRPM       int
}

// @title gw-event-listing API
// @version 1.0.0
// @description Event listing service: public browsing and search, host-owned event management, saved events
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, gRPC, logging, and JWT configuration.
// Variables already present in the environment take precedence over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return n, nil
	}
	splitList := func(s string) []string {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.Database = getEnv("POSTGRES_DB", "events")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.PostgresMigrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "true")); err != nil {
		err = fmt.Errorf("invalid POSTGRES_MIGRATE: %w", err)
		return
	}

	// Redis config, an empty host disables the event cache
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
	ttl, err := getInt("REDIS_EVENT_TTL_SECOND", "300")
	if err != nil {
		return
	}
	cfg.RedisEventTTL = time.Duration(ttl) * time.Second

	// Kafka config, no brokers disables change notifications
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "event-changes")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "gw-event-listing")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "gw-event-listing")
	exp, err := getInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(exp) * time.Second

	// HTTP edge config
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if cfg.RateLimitRPM, err = getInt("RATE_LIMIT_RPM", "600"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)
	db, err := database.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.PostgresMigrate {
		if err := database.Migrate(cfg.Postgres); err != nil {
			return err
		}
		log.Info("Database migrations applied")
	}

	// Connect to Redis
	var cache services.EventCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("Redis unavailable, event reads will go to the database", "error", err)
		}
		cache = repositories.NewEventCacheRepository(rdb, cfg.RedisEventTTL)
	}

	// Connect to Kafka
	var publisher services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		notifier := facades.NewEventNotifier(newKafkaWriter(cfg))
		defer notifier.Close()
		publisher = notifier
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, tokens, cache, publisher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health service for orchestrator liveness checks
	healthSrv := health.NewServer()
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

// newKafkaWriter builds the change notification writer. Writes are synchronous
// per request, so the batch timeout stays short to flush single messages promptly.
func newKafkaWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           kafkaBatchTimeout,
		WriteTimeout:           kafkaWriteTimeout,
		AllowAutoTopicCreation: true,
	}
}

// newRouter builds repositories, services, and handlers over the given
// backends and mounts them. cache and publisher may be nil.
func newRouter(
	cfg config,
	db *sqlx.DB,
	tokens *jwt.JWT,
	cache services.EventCache,
	publisher services.EventPublisher,
) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	eventReadRepo := repositories.NewEventReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db, txGetter)
	hostReadRepo := repositories.NewHostReadRepository(db)
	hostWriteRepo := repositories.NewHostWriteRepository(db, txGetter)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	savedEventRepo := repositories.NewSavedEventRepository(db, txGetter)

	// Initialize services
	eventService := services.NewEventService(eventReadRepo, eventWriteRepo, cache, publisher)
	hostService := services.NewHostService(hostReadRepo, hostWriteRepo)
	savedEventService := services.NewSavedEventService(userReadRepo, eventReadRepo, savedEventRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hostService, tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Location", "X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RateLimitRPM > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRPM, time.Minute))
	}
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens)
	hostOnly := middlewares.RequireRole(models.RoleHost)

	// Public routes
	r.Get("/healthz", handlers.NewHealthHandler(db))

	r.Route("/api/event", func(r chi.Router) {
		r.Get("/", handlers.NewListEventsHandler(eventService))
		r.Get("/search", handlers.NewSearchEventsHandler(eventService))
		r.Get("/{id}", handlers.NewGetEventHandler(eventService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, hostOnly)
			r.Post("/", handlers.NewCreateEventHandler(eventService))
			r.Put("/{id}", handlers.NewUpdateEventHandler(eventService))
			r.Delete("/{id}", handlers.NewDeleteEventHandler(eventService))
		})
	})

	r.Route("/api/host", func(r chi.Router) {
		r.Use(authMiddleware, hostOnly)
		r.Put("/", handlers.NewUpdateHostHandler(hostService))
		r.Get("/events", handlers.NewHostEventsHandler(hostService))
	})

	r.Route("/api/user", func(r chi.Router) {
		r.With(middlewares.TxMiddleware(db)).Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/saved", handlers.NewSavedEventsHandler(savedEventService))
			r.Post("/saved/{eventId}", handlers.NewSaveEventHandler(savedEventService))
			r.Delete("/saved/{eventId}", handlers.NewRemoveSavedEventHandler(savedEventService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
