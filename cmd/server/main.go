package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"securepay-portal/internal/adapters/http/middleware"
	"securepay-portal/internal/adapters/http/routes"
	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/config"
	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/bruteforce"

	"github.com/gofiber/fiber/v2"

	_ "securepay-portal/docs" // Swagger docs
)

// @title SecurePay Portal API
// @version 1.0
// @description Internet banking payment portal API

// @host localhost:3000
// @BasePath /
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration; refuses to start without a usable JWT secret
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed bootstrap admin while the staff table is empty
	seeder := config.NewSeeder(db, cfg.Auth.BcryptCost)
	if err := seeder.Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed bootstrap admin: %v", err)
	}

	// Brute-force guard for the login endpoints
	guard := bruteforce.NewMemoryGuard(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	// Start cron service for periodic guard sweeps
	cronService := services.NewCronService(guard)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SecurePay Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg, guard)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
