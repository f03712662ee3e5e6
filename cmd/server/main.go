package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fathima-sithara/cloudee-backend/internal/config"
	"github.com/fathima-sithara/cloudee-backend/internal/database"
	"github.com/fathima-sithara/cloudee-backend/internal/handlers"
	"github.com/fathima-sithara/cloudee-backend/internal/mailer"
	"github.com/fathima-sithara/cloudee-backend/internal/repository"
	"github.com/fathima-sithara/cloudee-backend/internal/services"
	"github.com/fathima-sithara/cloudee-backend/internal/storage"
	"github.com/fathima-sithara/cloudee-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Infof("starting cloudee-backend in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		logger.Fatal(err)
	}
	rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal(err)
	}

	store, err := storage.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		logger.Fatal(err)
	}

	mail := mailer.NewBrevoClient(cfg.Brevo.APIKey, cfg.Brevo.SenderEmail, cfg.Brevo.SenderName)
	if !mail.IsConfigured() {
		logger.Warn("brevo client not fully configured, emails will be skipped")
	}

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UserCollection)
	assetRepo := repository.NewMongoAssetRepo(db, cfg.Mongo.AssetCollection)
	codeStore := services.NewRedisCodeStore(rdb, time.Duration(cfg.Redis.CodeTTLMinutes)*time.Minute)

	authSvc := services.NewAuthService(userRepo, codeStore, mail, logger)
	assetSvc := services.NewAssetService(assetRepo, userRepo, store, logger, cfg.Cloudinary.RootFolder, cfg.Batch.Concurrency)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.Upload.MaxFileSizeMB * 1024 * 1024,
	})

	app.Use(cors.New())
	app.Use(requestLogger(logger.Desugar()))

	handlers.RegisterRoutes(app,
		handlers.NewAuthHandler(authSvc, logger),
		handlers.NewAssetHandler(assetSvc, logger),
	)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Errorf("fiber shutdown error: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Errorf("mongo disconnect error: %v", err)
	}
	if err := rdb.Close(); err != nil {
		logger.Errorf("redis close error: %v", err)
	}
	logger.Info("graceful shutdown complete")
}

// requestLogger tags each request with an id and logs method, path, status
// and latency.
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Error("http request", append(fields, zap.Error(err))...)
			return err
		}
		logger.Info("http request", fields...)
		return nil
	}
}
