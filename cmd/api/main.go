package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srgjo27/hotel_booking/internal/adapter/handler"
	"github.com/srgjo27/hotel_booking/internal/adapter/lock"
	"github.com/srgjo27/hotel_booking/internal/adapter/publisher"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_booking/internal/config"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/auth"
	"github.com/srgjo27/hotel_booking/internal/platform/cache"
	"github.com/srgjo27/hotel_booking/internal/platform/database"
	"github.com/srgjo27/hotel_booking/internal/platform/messaging"
)

func main() {
	cfg := config.Load(".env")

	var (
		store ports.Store
		db    *sql.DB
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Println("Using in-memory store")
		store = memory.NewStore()
	case config.DriverPostgres:
		var err error
		db, err = database.NewPostgresDB(database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}
		defer db.Close()
		store = postgres.NewStore(db)
	default:
		log.Fatalf("Unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed(seedCtx, store, cfg.BcryptCost); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}
	cancelSeed()

	var locker ports.RoomLocker
	if cfg.RedisHost != "" {
		redisClient, err := cache.NewRedisClient(cache.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, cfg.LockTTL, cfg.LockWait)
	} else {
		log.Println("REDIS_HOST not set, room locks are local to this process")
		locker = lock.NewLocalLocker(cfg.LockWait)
	}

	var events ports.EventPublisher = publisher.LogPublisher{}
	if cfg.RabbitMQURL != "" {
		conn, err := messaging.Dial(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		rabbit, err := publisher.NewRabbitPublisher(conn, cfg.EventsQueue)
		if err != nil {
			log.Fatalf("Failed to set up event publisher: %v", err)
		}
		defer rabbit.Close()
		events = rabbit
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)

	router := handler.NewRouter(handler.Deps{
		Reservations: services.NewReservationService(store, locker, events, services.WithStoreTimeout(cfg.StoreTimeout)),
		Reports:      services.NewReportService(store, cfg.StoreTimeout),
		Accounts:     services.NewAccountService(store.Users(), tokens, cfg.BcryptCost, cfg.StoreTimeout),
		Tokens:       tokens,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
