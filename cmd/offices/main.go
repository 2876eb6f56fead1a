package main

import (
	"offices/internal/offices/handler"
	"offices/internal/offices/repository"
	"offices/internal/offices/service"
	"offices/internal/offices/validator"
	"offices/pkg/app"
	"offices/pkg/config"
)

const ServiceName = "offices"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Offices service")

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	guard, err := app.AuthGuard(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize JWT auth", "error", err)
	}

	officeRepo := repository.NewMongoOfficeRepository(cfg)
	officeService := service.NewOfficeService(officeRepo, cfg)
	officeValidator := validator.NewOfficeValidator(cfg.Log)
	cfg.Log.Info("Office service initialized", "collection", cfg.CollectionName)

	officeHandler := handler.NewOfficeHandler(officeService, officeValidator, cfg, guard)
	healthHandler := handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log)

	application := app.NewApplication(cfg)
	application.SetApp(healthHandler, officeHandler)
	application.Run()
}
