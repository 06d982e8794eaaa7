package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techstore-service/internal/api"
	"techstore-service/internal/catalog"
	"techstore-service/internal/config"
	"techstore-service/internal/simapi"
	"techstore-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const defaultAppName = "TechStoreService" // App name for logger

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found or failed to load, relying on system environment")
	}
	logger := log.New(os.Stdout, fmt.Sprintf("[%s] ", defaultAppName), log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
	logger.Println("INFO: Starting service...")

	// --- Configuration Loading ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("FATAL: Error loading configuration: %v", err)
	}
	logger.Printf("INFO: Configuration loaded for APP_ENV: %s, LogLevel: %s", cfg.AppEnv, cfg.LogLevel)

	// --- Persistence Backend ---
	store, closeStore, err := setupStorage(logger, cfg)
	if err != nil {
		logger.Fatalf("FATAL: Failed to initialize storage backend: %v", err)
	}
	defer closeStore()

	// --- Catalog & Simulated Backend Facade ---
	cat := catalog.New()
	logger.Printf("INFO: Catalog loaded with %d products.", cat.Len())

	client := simapi.New(cat, store, simapi.Options{
		LatencyScale:    cfg.Sim.LatencyScale,
		DisableFailures: !cfg.Sim.FailuresEnabled,
		Seed:            cfg.Sim.Seed,
		Logger:          logger,
	})

	// --- HTTP Server ---
	httpAPIHandler := api.NewHTTPHandler(client, client, client, client, client)

	httpRouter := chi.NewRouter()
	setupBaseMiddleware(httpRouter, logger)
	registerHealthCheck(httpRouter, logger, cfg)
	httpAPIHandler.RegisterRoutes(httpRouter)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      httpRouter,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		logger.Printf("INFO: HTTP server listening on port %s", cfg.HttpServer.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("FATAL: HTTP server ListenAndServe error: %v", err)
		}
		logger.Println("INFO: HTTP server has stopped.")
	}()

	// --- Graceful Shutdown ---
	shutdownComplete := make(chan struct{})
	go waitForShutdown(logger, httpServer, shutdownComplete)

	<-shutdownComplete
	logger.Println("INFO: Service shutdown sequence finished.")
}

// setupStorage builds the configured persistence backend and returns a
// cleanup function for it.
func setupStorage(logger *log.Logger, cfg *config.Config) (storage.Store, func(), error) {
	noop := func() {}
	switch cfg.Storage.Backend {
	case "memory":
		logger.Println("INFO: Using in-memory storage backend (state is lost on exit).")
		return storage.NewMemoryStore(), noop, nil
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, noop, err
		}
		logger.Printf("INFO: Using file storage backend under %s.", cfg.Storage.DataDir)
		return store, noop, nil
	case "redis":
		store, err := storage.NewRedisStore(context.Background(), cfg.Storage.RedisAddr, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, noop, err
		}
		logger.Printf("INFO: Using redis storage backend at %s.", cfg.Storage.RedisAddr)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Printf("WARN: Error closing redis client: %v", err)
			}
		}, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func setupBaseMiddleware(router *chi.Mux, logger *log.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger) // Chi's request logger
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second)) // Default timeout for requests
	logger.Println("INFO: Base HTTP middleware registered.")
}

func registerHealthCheck(router *chi.Mux, logger *log.Logger, cfg *config.Config) {
	healthPath := "/api/v1/healthz"
	router.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"serviceName": defaultAppName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"storage":     cfg.Storage.Backend,
		})
	})
	logger.Printf("INFO: HTTP health check registered at %s", healthPath)
}

func waitForShutdown(logger *log.Logger, httpServer *http.Server, shutdownComplete chan struct{}) {
	defer close(shutdownComplete)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-sigChan
	logger.Printf("INFO: Received signal: %s. Starting graceful shutdown...", receivedSignal)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("WARN: HTTP server graceful shutdown failed: %v", err)
	} else {
		logger.Println("INFO: HTTP server gracefully shut down.")
	}

	logger.Println("INFO: Graceful shutdown sequence completed.")
}
