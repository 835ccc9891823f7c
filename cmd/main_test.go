package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/personal-horoscope/internal/content"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/handlers"
	"github.com/sbilibin2017/personal-horoscope/internal/jwt"
	"github.com/sbilibin2017/personal-horoscope/internal/middlewares"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/sbilibin2017/personal-horoscope/internal/repositories"
	"github.com/sbilibin2017/personal-horoscope/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

// ----------------- Tests for parseConfig -----------------

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	// Application
	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, storagePostgres, cfg.StorageDriver)

	// PostgreSQL
	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "horoscope", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	// MongoDB
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "horoscope", cfg.MongoDB)

	// Redis
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "", cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)

	// Rate limits
	assert.Equal(t, 20, cfg.RateLimitGlobal)
	assert.Equal(t, 5, cfg.RateLimitHoroscope)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)

	// Kafka
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "horoscopes", cfg.KafkaTopic)

	// JWT
	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExp)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("STORAGE_DRIVER", "Mongo")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")

	os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27017")
	os.Setenv("MONGO_DB", "stars")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")

	os.Setenv("RATE_LIMIT_GLOBAL", "100")
	os.Setenv("RATE_LIMIT_HOROSCOPE", "10")
	os.Setenv("RATE_LIMIT_WINDOW_SECOND", "30")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "daily")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, storageMongo, cfg.StorageDriver)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, "mongodb://mongo.example.com:27017", cfg.MongoURI)
	assert.Equal(t, "stars", cfg.MongoDB)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 100, cfg.RateLimitGlobal)
	assert.Equal(t, 10, cfg.RateLimitHoroscope)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "daily", cfg.KafkaTopic)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300*time.Second, cfg.JWTExp)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nSTORAGE_DRIVER=memory\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, storageMemory, cfg.StorageDriver)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric port", key: "POSTGRES_PORT", val: "abc"},
		{name: "non-numeric rate limit", key: "RATE_LIMIT_GLOBAL", val: "many"},
		{name: "unknown storage driver", key: "STORAGE_DRIVER", val: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			os.Setenv(tt.key, tt.val)

			cfg, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

// ------------------ Router ------------------

// countingLimiter is an in-process fixed window counter.
type countingLimiter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (c *countingLimiter) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
	return c.counts[key], window, nil
}

type testServer struct {
	*httptest.Server
	limiter *countingLimiter
}

func newTestServer(t *testing.T, cfg *config, users middlewares.UserGetter) *testServer {
	t.Helper()

	horoscopes := repositories.NewMemoryHoroscopeRepository()
	accounts := repositories.NewMemoryUserRepository()
	if users == nil {
		users = accounts
	}
	tokens := jwt.New(jwt.WithSecretKey("testsecret"), jwt.WithExpiration(time.Hour))
	limiter := &countingLimiter{counts: map[string]int64{}}

	srv := httptest.NewServer(newRouter(routerDeps{
		auth:      services.NewAuthService(accounts, accounts, tokens),
		horoscope: services.NewHoroscopeService(horoscopes, horoscopes, content.New(), nil),
		tokener:   tokens,
		users:     users,
		counter:   limiter,
		cfg:       cfg,
	}))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, limiter: limiter}
}

// signupAndLogin registers an account and returns its bearer token.
func signupAndLogin(t *testing.T, baseURL, email string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, baseURL+"/auth/signup", "", handlers.SignupRequest{
		Name:      "Jane",
		Email:     email,
		Password:  "secret123",
		Birthdate: "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, baseURL+"/auth/login", "", handlers.LoginRequest{
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login handlers.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_HoroscopeFlow(t *testing.T) {
	srv := newTestServer(t, &config{
		AppHost:            "localhost",
		AppPort:            "8080",
		RateLimitGlobal:    100,
		RateLimitHoroscope: 100,
		RateLimitWindow:    time.Minute,
	}, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/signup", "", handlers.SignupRequest{
		Name:      "Jane",
		Email:     "jane@example.com",
		Password:  "secret123",
		Birthdate: "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var signup handlers.SignupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signup))
	assert.Equal(t, "success", signup.Status)
	assert.Equal(t, models.Capricorn, signup.Data.ZodiacSign)

	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/signup", "", handlers.SignupRequest{
		Name:      "Jane",
		Email:     "jane@example.com",
		Password:  "secret123",
		Birthdate: "1990-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", handlers.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login handlers.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/today?date=2024-06-15", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/today?date=2024-06-15", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first models.HoroscopeDB
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	assert.Equal(t, models.Capricorn, first.ZodiacSign)
	assert.True(t, first.Date.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/today?date=2024-06-15", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second models.HoroscopeDB
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	assert.Equal(t, first.ID, second.ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/zodiac-signs", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var signs []handlers.ZodiacSignItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signs))
	assert.Len(t, signs, 12)

	text := "Updated text"
	resp = doJSON(t, http.MethodPut, srv.URL+"/horoscope/"+first.ID.String(), login.Token, models.HoroscopePatch{Content: &text})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.HoroscopeDB
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, text, updated.Content)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/horoscope/"+first.ID.String(), login.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/horoscope/"+first.ID.String(), login.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_RateLimit(t *testing.T) {
	srv := newTestServer(t, &config{
		AppHost:            "localhost",
		AppPort:            "8080",
		RateLimitGlobal:    2,
		RateLimitHoroscope: 2,
		RateLimitWindow:    time.Minute,
	}, nil)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", handlers.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", handlers.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestRouter_HoroscopeLimitsArePerRoute(t *testing.T) {
	srv := newTestServer(t, &config{
		AppHost:            "localhost",
		AppPort:            "8080",
		RateLimitGlobal:    100,
		RateLimitHoroscope: 1,
		RateLimitWindow:    time.Minute,
	}, nil)
	token := signupAndLogin(t, srv.URL, "limits@example.com")

	resp := doJSON(t, http.MethodGet, srv.URL+"/horoscope/today", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// history keeps its own budget after today is exhausted
	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/history", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/today", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/horoscope/history", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	srv.limiter.mu.Lock()
	defer srv.limiter.mu.Unlock()
	assert.Equal(t, int64(2), srv.limiter.counts["127.0.0.1:horoscope:today"])
	assert.Equal(t, int64(2), srv.limiter.counts["127.0.0.1:horoscope:history"])
}

// missingUsers reports every account as deleted.
type missingUsers struct{}

func (missingUsers) GetByID(context.Context, uuid.UUID) (*models.UserDB, error) {
	return nil, errs.ErrNotFound
}

func TestRouter_TokenOfDeletedUserIsRejected(t *testing.T) {
	srv := newTestServer(t, &config{
		AppHost:            "localhost",
		AppPort:            "8080",
		RateLimitGlobal:    100,
		RateLimitHoroscope: 100,
		RateLimitWindow:    time.Minute,
	}, missingUsers{})
	token := signupAndLogin(t, srv.URL, "gone@example.com")

	resp := doJSON(t, http.MethodGet, srv.URL+"/horoscope/today", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ------------------ run ------------------

func TestRun_MemoryStorage(t *testing.T) {
	cfg := &config{
		AppHost:            "127.0.0.1",
		AppPort:            "18086",
		LogLevel:           "debug",
		StorageDriver:      storageMemory,
		RedisHost:          "127.0.0.1",
		RedisPort:          1, // unreachable, the limiter lets requests through
		RedisPoolSize:      1,
		RateLimitGlobal:    20,
		RateLimitHoroscope: 5,
		RateLimitWindow:    time.Minute,
		JWTSecretKey:       "testsecret",
		JWTExp:             time.Hour,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s:%s/horoscope/zodiac-signs", cfg.AppHost, cfg.AppPort))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 6*time.Second, 50*time.Millisecond)

	select {
	case <-time.After(10 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), &config{LogLevel: "loud", StorageDriver: storageMemory})
	assert.Error(t, err)
}

// ------------------ Full integration test ------------------
func TestRun_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, &config{
			AppHost:            "127.0.0.1",
			AppPort:            "18087",
			LogLevel:           "debug",
			StorageDriver:      storagePostgres,
			PGHost:             pgHost,
			PGPort:             pgPort.Int(),
			PGUser:             "user",
			PGPassword:         "password",
			PGDB:               "testdb",
			PGMaxOpenConns:     5,
			PGMaxIdleConns:     2,
			RedisHost:          redisHost,
			RedisPort:          redisPort.Int(),
			RedisPoolSize:      10,
			RedisMinIdleConns:  2,
			RateLimitGlobal:    20,
			RateLimitHoroscope: 5,
			RateLimitWindow:    time.Minute,
			JWTSecretKey:       "testsecret",
			JWTExp:             time.Minute,
		})
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
