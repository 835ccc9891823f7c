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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/personal-horoscope/docs"
	"github.com/sbilibin2017/personal-horoscope/internal/content"
	"github.com/sbilibin2017/personal-horoscope/internal/handlers"
	"github.com/sbilibin2017/personal-horoscope/internal/jwt"
	"github.com/sbilibin2017/personal-horoscope/internal/logger"
	"github.com/sbilibin2017/personal-horoscope/internal/middlewares"
	"github.com/sbilibin2017/personal-horoscope/internal/migrations"
	"github.com/sbilibin2017/personal-horoscope/internal/repositories"
	"github.com/sbilibin2017/personal-horoscope/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Supported STORAGE_DRIVER values.
const (
	storagePostgres = "postgres"
	storageMongo    = "mongo"
	storageMemory   = "memory"
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	StorageDriver string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	MongoURI string
	MongoDB  string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	RateLimitGlobal    int
	RateLimitHoroscope int
	RateLimitWindow    time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
}

// @title personal-horoscope API
// @version 1.0.0
// @description Daily personal horoscopes keyed by zodiac sign
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, storage, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", storagePostgres)),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "horoscope"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// MongoDB config
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "horoscope"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),

		// Rate limit config
		RateLimitGlobal:    getInt("RATE_LIMIT_GLOBAL", "20"),
		RateLimitHoroscope: getInt("RATE_LIMIT_HOROSCOPE", "5"),
		RateLimitWindow:    time.Duration(getInt("RATE_LIMIT_WINDOW_SECOND", "60")) * time.Second,

		// Kafka config
		KafkaTopic: getEnv("KAFKA_TOPIC", "horoscopes"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       time.Duration(getInt("JWT_EXP_SECOND", "2592000")) * time.Second,
	}
	if err != nil {
		return nil, err
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StorageDriver {
	case storagePostgres, storageMongo, storageMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER: unsupported value %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// storage bundles the repositories of the selected driver.
type storage struct {
	horoscopeReader services.HoroscopeReader
	horoscopeWriter services.HoroscopeWriter
	userReader      services.UserReader
	userWriter      services.UserWriter
	userGetter      middlewares.UserGetter
	close           func()
}

// openStorage connects to the configured backend and prepares its schema.
func openStorage(ctx context.Context, cfg *config) (*storage, error) {
	switch cfg.StorageDriver {
	case storagePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		if err := migrations.Up(ctx, db.DB); err != nil {
			db.Close()
			return nil, fmt.Errorf("PostgreSQL migration error: %w", err)
		}

		return &storage{
			horoscopeReader: repositories.NewHoroscopeReadRepository(db),
			horoscopeWriter: repositories.NewHoroscopeWriteRepository(db),
			userReader:      repositories.NewUserReadRepository(db),
			userWriter:      repositories.NewUserWriteRepository(db),
			userGetter:      repositories.NewUserReadRepository(db),
			close:           func() { db.Close() },
		}, nil

	case storageMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		logger.Log.Infow("Connecting to MongoDB", "db", cfg.MongoDB)
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("MongoDB connection error: %w", err)
		}
		closeClient := func() { client.Disconnect(context.Background()) }

		if err := client.Ping(connectCtx, nil); err != nil {
			closeClient()
			return nil, fmt.Errorf("MongoDB ping failed: %w", err)
		}

		db := client.Database(cfg.MongoDB)
		horoscopes := repositories.NewMongoHoroscopeRepository(db)
		users := repositories.NewMongoUserRepository(db)
		if err := errors.Join(horoscopes.EnsureIndexes(connectCtx), users.EnsureIndexes(connectCtx)); err != nil {
			closeClient()
			return nil, fmt.Errorf("MongoDB index error: %w", err)
		}

		return &storage{
			horoscopeReader: horoscopes,
			horoscopeWriter: horoscopes,
			userReader:      users,
			userWriter:      users,
			userGetter:      users,
			close:           closeClient,
		}, nil

	default:
		logger.Log.Warn("Using in-memory storage, data is lost on restart")
		horoscopes := repositories.NewMemoryHoroscopeRepository()
		users := repositories.NewMemoryUserRepository()
		return &storage{
			horoscopeReader: horoscopes,
			horoscopeWriter: horoscopes,
			userReader:      users,
			userWriter:      users,
			userGetter:      users,
			close:           func() {},
		}, nil
	}
}

// routerDeps are the collaborators wired into the HTTP router.
type routerDeps struct {
	auth      *services.AuthService
	horoscope *services.HoroscopeService
	tokener   middlewares.Tokener
	users     middlewares.UserGetter
	counter   middlewares.RequestCounter
	cfg       *config
}

// newRouter sets up routes and applies middleware.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", d.cfg.AppHost, d.cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(d.counter, "global", d.cfg.RateLimitGlobal, d.cfg.RateLimitWindow))

		// Public routes
		r.Post("/auth/signup", handlers.NewSignupHandler(d.auth))
		r.Post("/auth/login", handlers.NewLoginHandler(d.auth))

		// Protected routes with JWT middleware
		r.Route("/horoscope", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.tokener, d.users))

			// Each horoscope endpoint has its own window
			r.With(middlewares.RateLimitMiddleware(d.counter, "horoscope:today", d.cfg.RateLimitHoroscope, d.cfg.RateLimitWindow)).
				Get("/today", handlers.NewGetTodayHoroscopeHandler(d.horoscope))
			r.With(middlewares.RateLimitMiddleware(d.counter, "horoscope:history", d.cfg.RateLimitHoroscope, d.cfg.RateLimitWindow)).
				Get("/history", handlers.NewGetHoroscopeHistoryHandler(d.horoscope))

			r.Get("/zodiac-signs", handlers.NewGetZodiacSignsHandler())
			r.Put("/{id}", handlers.NewUpdateHoroscopeHandler(d.horoscope))
			r.Delete("/{id}", handlers.NewDeleteHoroscopeHandler(d.horoscope))
		})
	})

	return r
}

// run initializes the logger, storage, Redis, Kafka, and HTTP server,
// and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, "personal-horoscope"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	// Connect to Redis; the rate limiter lets requests through while it is unreachable
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis is unreachable, rate limiting disabled until it recovers", "error", err)
	}
	defer rdb.Close()

	// Kafka publishing is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing horoscope events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize services
	authService := services.NewAuthService(store.userReader, store.userWriter, tokens)
	horoscopeService := services.NewHoroscopeService(
		store.horoscopeReader,
		store.horoscopeWriter,
		content.New(),
		kafkaWriter,
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(routerDeps{
			auth:      authService,
			horoscope: horoscopeService,
			tokener:   tokens,
			users:     store.userGetter,
			counter:   repositories.NewRequestCounterRepository(rdb),
			cfg:       cfg,
		}),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
