package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mimi0225/yourcalendar/internal/api"
	"github.com/mimi0225/yourcalendar/internal/services"
	"github.com/mimi0225/yourcalendar/internal/storage"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	location := mustLoadLocation(getEnv("TZ", "Local"))
	port := getEnv("PORT", "8080")
	backend := getEnv("DB_BACKEND", "sqlite")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "yourcalendar.db"))

	store, err := openStorage(backend, dbPath)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	organizer := services.NewOrganizer(store, nil)
	handler := api.NewHandler(organizer, location, nil)

	app := fiber.New(fiber.Config{
		AppName:               "yourcalendar",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	handler.Reminders().Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("yourcalendar listening on http://0.0.0.0:%s (backend: %s, tz: %s)", port, backend, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openStorage(backend, dbPath string) (storage.Store, error) {
	switch backend {
	case "bolt":
		return storage.OpenBolt(dbPath)
	case "memory":
		log.Printf("memory backend selected, data will not survive restarts")
		return storage.NewMemoryStore(), nil
	default:
		return storage.OpenSQLite(dbPath)
	}
}

func mustLoadLocation(name string) *time.Location {
	if name == "Local" {
		return time.Local
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to local time", name)
		return time.Local
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
