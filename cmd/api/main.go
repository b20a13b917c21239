package main

import (
	"checkrrhh-backend/config"
	"checkrrhh-backend/internal/database"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/lock"
	applog "checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/repository/memory"
	"checkrrhh-backend/internal/routes"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		applog.Warn("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	locker, closeLocker := newLocker(cfg)
	defer closeLocker()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	deps, err := newDependencies(cfg, locker, publisher)
	if err != nil {
		applog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		// Attachments arrive as base64 JSON
		BodyLimit: 8 * 1024 * 1024,
	})

	// Global middleware
	app.Use(cors.New())
	app.Use(middleware.RequestID)
	app.Use(logger.New())

	routes.Setup(app, deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		applog.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	applog.Info("server ready", "port", cfg.Port, "db_driver", cfg.Database.Driver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		applog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newDependencies(cfg *config.Config, locker lock.Locker, publisher events.Publisher) (*routes.Dependencies, error) {
	if cfg.Database.Driver == "memory" {
		store := memory.NewStore()
		if err := database.SeedAll(store.Companies(), store.Users()); err != nil {
			return nil, err
		}
		applog.Warn("using in-memory storage, data is lost on restart")
		return routes.NewMemoryDependencies(cfg, store, locker, publisher)
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	return routes.NewGormDependencies(cfg, db, locker, publisher)
}

// newLocker picks Redis when REDIS_ADDR is set, so several API instances
// share scan locks.
func newLocker(cfg *config.Config) (lock.Locker, func()) {
	if cfg.Redis.Addr == "" {
		return lock.NewMemoryLocker(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		applog.Warn("redis unavailable, falling back to in-process scan locks", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return lock.NewMemoryLocker(), func() {}
	}
	applog.Info("redis scan locks enabled", "addr", cfg.Redis.Addr)
	// TTL outlives the lock wait so a crashed holder frees the key
	return lock.NewRedisLocker(client, cfg.Scan.LockTimeout+10*time.Second), func() { _ = client.Close() }
}

func newPublisher(cfg *config.Config) events.Publisher {
	if cfg.NATS.URL == "" {
		return events.Nop{}
	}
	pub, err := events.NewNATSPublisher(cfg.NATS.URL)
	if err != nil {
		applog.Warn("nats unavailable, events are not published", "url", cfg.NATS.URL, "error", err)
		return events.Nop{}
	}
	applog.Info("publishing events to nats", "url", cfg.NATS.URL)
	return pub
}
