package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"makom-backend/internal/config"
	"makom-backend/internal/container"
	"makom-backend/internal/handler"
	"makom-backend/internal/middleware"
	"makom-backend/internal/repository"
	"makom-backend/internal/service"
	"makom-backend/pkg/logger"
	"makom-backend/pkg/redis"
)

// Resources holds all resources that need cleanup
type Resources struct {
	redisClient *redis.Client
	server      *http.Server
	log         *logger.Logger
	mu          sync.Mutex
	closed      bool
}

// Cleanup gracefully closes all resources
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error

	r.log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first to stop accepting new requests
	if r.server != nil {
		r.log.Info("Shutting down HTTP server...")
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	if r.redisClient != nil {
		r.log.Info("Closing Redis connection...")

		healthCtx, healthCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := r.redisClient.Health(healthCtx); err != nil {
			r.log.WithError(err).Warn("Redis health check failed before closing")
		}
		healthCancel()

		if err := r.redisClient.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errs = append(errs, fmt.Errorf("Redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed successfully")
		}
	}

	if len(errs) > 0 {
		r.log.WithField("error_count", len(errs)).Error("Cleanup completed with errors")
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errs), errs)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	// Load configuration; a missing Supabase endpoint or key is fatal here,
	// before any handler can run.
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting makom-backend server")

	// Create dependency injection container
	ctx := context.Background()
	c, err := container.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create container")
	}

	// Setup router
	router := setupRouter(c)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	resources := &Resources{
		redisClient: c.RedisClient,
		server:      server,
		log:         log,
	}

	// Setup graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	log.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(c *container.Container) *chi.Mux {
	cfg := c.GetConfig()
	log := c.GetLogger()

	// Repositories and services share the one Supabase handle.
	contactRepo := repository.NewContactRepository(c.Supabase)
	eventRepo := repository.NewEventRepository(c.Supabase)
	contactService := service.NewContactService(contactRepo, c.Syncer, log)
	eventService := service.NewEventService(eventRepo, c.RedisClient, log)

	r := chi.NewRouter()

	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	healthHandler := handler.NewHealthHandler(log)
	contactHandler := handler.NewContactHandler(contactService, log)
	eventHandler := handler.NewEventHandler(eventService, log)
	adminHandler := handler.NewAdminHandler(contactService, log)

	// Health check (no auth required)
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", contactHandler.Submit)
		r.Get("/events", eventHandler.List)
		r.Get("/events/{slug}", eventHandler.GetBySlug)

		// Back-office reads require a Supabase-issued admin token
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.SupabaseJWTSecret, log))

			r.Get("/contact-submissions", adminHandler.ListContactSubmissions)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Endpoint not found"}`))
	})

	log.Info("Router configured successfully")
	return r
}
