package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"offices/internal/migrations/mongo"
	"offices/internal/offices/handler"
	"offices/internal/offices/repository"
	"offices/internal/offices/service"
	"offices/internal/offices/validator"
	"offices/pkg/app"
	"offices/pkg/client"
	"offices/pkg/config"
	"offices/pkg/logger"
)

type TestEnv struct {
	MongoURI string
	LogLevel string
}

func NewTestEnv() *TestEnv {
	return &TestEnv{
		MongoURI: getEnv("TEST_MONGO_URI", DefaultMongoURI),
		LogLevel: getEnv("TEST_LOG_LEVEL", "error"),
	}
}

// Setup migrates a fresh database, serves the full application over
// httptest and returns a client pointed at it. Everything is torn down with
// the test.
func (e *TestEnv) Setup(t *testing.T) (*MongoHelper, *client.OfficeClient) {
	t.Helper()

	mongoHelper, cfg := e.migratedDatabase(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	officeService := service.NewOfficeService(repository.NewMongoOfficeRepository(cfg), cfg)
	officeHandler := handler.NewOfficeHandler(officeService, validator.NewOfficeValidator(cfg.Log), cfg, nil)
	healthHandler := handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log)

	application := app.NewApplication(cfg)
	application.SetApp(healthHandler, officeHandler)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)

	officeClient := client.NewOfficeClient(server.URL)
	if err := officeClient.WaitForHealthy(ctx); err != nil {
		t.Fatalf("service not healthy: %v", err)
	}
	return mongoHelper, officeClient
}

// SetupRepository returns the Mongo office repository over a fresh migrated
// database, for tests that bypass HTTP.
func (e *TestEnv) SetupRepository(t *testing.T) (*MongoHelper, repository.OfficeRepository) {
	t.Helper()

	mongoHelper, cfg := e.migratedDatabase(t)
	return mongoHelper, repository.NewMongoOfficeRepository(cfg)
}

func (e *TestEnv) migratedDatabase(t *testing.T) (*MongoHelper, *config.Config) {
	t.Helper()

	dbName := "offices_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	mongoHelper := NewMongoHelper(t, e.MongoURI, dbName)
	t.Cleanup(func() { mongoHelper.Close(t) })

	cfg := e.config(mongoHelper)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mongo.RunMigration(ctx, cfg); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return mongoHelper, cfg
}

func (e *TestEnv) config(m *MongoHelper) *config.Config {
	return &config.Config{
		MongoURI:          e.MongoURI,
		MongoDatabaseName: m.DBName,
		MongoConnTimeout:  ConnectionTimeout,
		CollectionName:    OfficesCollection,
		Port:              config.DefaultPort,
		RequestTimeout:    config.DefaultRequestTimeout,
		MaxRequestSize:    config.DefaultMaxRequestSize,
		ReadTimeout:       config.DefaultReadTimeout,
		WriteTimeout:      config.DefaultWriteTimeout,
		IdleTimeout:       config.DefaultIdleTimeout,
		ShutdownTimeout:   config.DefaultShutdownTimeout,
		AuthRequiredRole:  config.DefaultAuthRequiredRole,
		Log: logger.New(logger.Config{
			Level:   e.LogLevel,
			Output:  io.Discard,
			Service: "offices-integration",
		}),
		Client: &client.Client{Mongo: m.Client},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
