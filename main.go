package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prajwalshetti/Project-matrimony/src/config"
	"github.com/prajwalshetti/Project-matrimony/src/controllers"
	"github.com/prajwalshetti/Project-matrimony/src/lib"
	"github.com/prajwalshetti/Project-matrimony/src/middleware"
	"github.com/prajwalshetti/Project-matrimony/src/repositories"
	"github.com/prajwalshetti/Project-matrimony/src/routes"
	"github.com/prajwalshetti/Project-matrimony/src/services"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := lib.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := lib.ConnectDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := lib.EnsureIndexes(ctx, lib.DB); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	storage, err := lib.NewPhotoStorage(cfg.S3)
	if err != nil {
		logger.Fatal("Failed to create photo storage", zap.Error(err))
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		logger.Fatal("Failed to prepare photo bucket", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(lib.DB)
	requestRepo := repositories.NewRequestRepository(lib.DB)
	connectionRepo := repositories.NewConnectionRepository(lib.DB)

	requestService := services.NewRequestService(userRepo, requestRepo, connectionRepo)
	connectionService := services.NewConnectionService(userRepo, connectionRepo)
	profileService := services.NewProfileService(userRepo)

	userController := controllers.NewUserController(userRepo, profileService, storage, cfg.JWTSecret, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	connectionController := controllers.NewConnectionController(connectionService, logger)

	protect := middleware.ProtectRoute(userRepo, cfg.JWTSecret)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))

	routes.UserRoutes(app, protect, userController)
	routes.RequestRoutes(app, protect, requestController)
	routes.ConnectionRoutes(app, protect, connectionController)

	app.Static("/", "./public")

	logger.Info("Server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
