// main.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/qms/internal/config"
	"github.com/localnerve/qms/internal/database"
	"github.com/localnerve/qms/internal/handlers"
	"github.com/localnerve/qms/internal/middleware"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/storage"
	"github.com/localnerve/qms/internal/utils"
	"go.uber.org/zap"

	_ "github.com/localnerve/qms/docs/api" // Swagger docs
)

// @title QMS API
// @version 1.0.0
// @description Manufacturing quality management: complaints, 8D reports, corrective actions and attachments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/qms
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// A .env file is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
	}

	verifier, err := services.NewTokenVerifier(ctx, cfg.Auth)
	if err != nil {
		return err
	}
	defer verifier.Close()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	users := services.NewUserService(db, logger)
	h := &handlers.Handlers{
		Complaints: &handlers.ComplaintHandler{
			Complaints: services.NewComplaintService(db, logger),
			EightD:     services.NewEightDService(db, logger),
			Actions:    services.NewActionService(db, logger),
			Log:        logger,
		},
		Attachments: &handlers.AttachmentHandler{
			Attachments: services.NewAttachmentService(db, store, logger, services.AttachmentOptions{
				MaxUploadBytes: cfg.Storage.MaxUploadBytes,
				SignedURLTTL:   cfg.Storage.SignedURLTTL,
			}),
			Log: logger,
		},
		Dashboard: &handlers.DashboardHandler{Dashboard: services.NewDashboardService(db, logger), Log: logger},
		Users:     &handlers.UserHandler{Users: users, Log: logger},
		Health:    &handlers.HealthHandler{Config: cfg, DB: db, Log: logger},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler(logger),
		// Multipart uploads arrive whole, leave room for the form envelope
		BodyLimit:             int(cfg.Storage.MaxUploadBytes) + 1<<20,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("qms")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, h, middleware.Authenticate(verifier, users, logger))

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	go func() {
		<-ctx.Done()
		logger.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("db_type", cfg.DBType))
	return app.Listen(":" + cfg.Port)
}
