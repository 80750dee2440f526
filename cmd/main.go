package main

import (
	"context"
	"errors"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	_ "github.com/sbilibin2017/gw-finance-ledger/docs"
	"github.com/sbilibin2017/gw-finance-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-finance-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-ledger/internal/migrations"
	"github.com/sbilibin2017/gw-finance-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// config holds everything read from the environment.
type config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	SecureCookie bool

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

	KafkaBrokers      []string
	LedgerEventsTopic string

	GRPCHealthPort string

	JWTSecretKey string
	JWTExpSecond int
}

func (c config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title gw-finance-ledger API
// @version 1.0.0
// @description Personal finance ledger: accounts, income and expense tracking, contact and feedback intake
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, gRPC, logging, and JWT configuration.
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
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.SecureCookie, err = strconv.ParseBool(getEnv("APP_SECURE_COOKIE", "false")); err != nil {
		return cfg, fmt.Errorf("APP_SECURE_COOKIE: %w", err)
	}

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

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.LedgerEventsTopic = getEnv("LEDGER_EVENTS_TOPIC", "ledger-events")

	// gRPC health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, HTTP server and
// gRPC health server. It blocks until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	dsn := cfg.postgresDSN()
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(dsn); err != nil {
		return err
	}

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

	// Kafka writer, optional
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.LedgerEventsTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.LedgerEventsTopic)
	} else {
		logger.Log.Infow("Kafka publishing disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	authService, ledgerService, intakeService := newServices(db, events)
	sessionRepo := repositories.NewSessionRepository(rdb)

	r := newRouter(cfg, db, tokens, sessionRepo, authService, ledgerService, intakeService)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// gRPC health server
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	grpcListener, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listen failed: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Log.Infof("gRPC health server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC health server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// newServices builds the repositories and services. Every repository runs on
// the request transaction when TxMiddleware has opened one.
func newServices(db *sqlx.DB, events services.KafkaWriter) (
	*services.AuthService,
	*services.LedgerService,
	*services.IntakeService,
) {
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	txReadRepo := repositories.NewTransactionReadRepository(db)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	contactReadRepo := repositories.NewContactReadRepository(db)
	contactWriteRepo := repositories.NewContactWriteRepository(db, txGetter)
	feedbackReadRepo := repositories.NewFeedbackReadRepository(db)
	feedbackWriteRepo := repositories.NewFeedbackWriteRepository(db, txGetter)

	return services.NewAuthService(userReadRepo, userWriteRepo, events),
		services.NewLedgerService(txWriteRepo, txReadRepo, events),
		services.NewIntakeService(contactWriteRepo, contactReadRepo, feedbackWriteRepo, feedbackReadRepo)
}

// newRouter wires handlers and middlewares onto a chi router.
func newRouter(
	cfg config,
	db *sqlx.DB,
	tokens *jwt.JWT,
	sessions *repositories.SessionRepository,
	authService *services.AuthService,
	ledgerService *services.LedgerService,
	intakeService *services.IntakeService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(tokens, sessions)

	// Public routes
	r.Post("/login", handlers.NewLoginHandler(authService, tokens, cfg.SecureCookie))
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/signup", handlers.NewSignupHandler(authService))
		r.Post("/contact", handlers.NewContactHandler(intakeService))
		r.Post("/forgot_password", handlers.NewForgotPasswordHandler(authService))
		r.Post("/reset_password", handlers.NewResetPasswordHandler(authService))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/logout", handlers.NewLogoutHandler(sessions, cfg.SecureCookie))
		r.Get("/dashboard", handlers.NewDashboardHandler(ledgerService))
		r.Get("/get_transactions", handlers.NewGetTransactionsHandler(ledgerService))
		r.Get("/feedback", handlers.NewGetFeedbackHandler(intakeService))

		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/add_transaction", handlers.NewAddTransactionHandler(ledgerService))
			r.Post("/delete_transaction/{id}", handlers.NewDeleteTransactionHandler(ledgerService))
			r.Post("/feedback", handlers.NewPostFeedbackHandler(intakeService))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminMiddleware)
			r.Get("/admin/contacts", handlers.NewListContactsHandler(intakeService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.AppHost, cfg.AppPort))),
	))

	return r
}
