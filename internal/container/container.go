package container

import (
	"context"

	"makom-backend/internal/config"
	"makom-backend/internal/service"
	"makom-backend/pkg/logger"
	"makom-backend/pkg/redis"
	"makom-backend/pkg/supabase"
)

// Container holds all application dependencies. The Supabase client is the
// single shared backend handle: constructed once here and injected into the
// repositories, never rebuilt per request.
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	Supabase    *supabase.Client
	RedisClient *redis.Client
	Syncer      service.ContactSyncer
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	supabaseClient := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, log)

	// Redis is optional; without it the events listing skips caching.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	// The spreadsheet sync is optional too; submissions still land in the
	// database when it is absent.
	var syncer service.ContactSyncer
	if cfg.HasSheetsSync() {
		s, err := service.NewSheetsSync(ctx, cfg.GoogleCredentialsFile, cfg.ContactSpreadsheetID, cfg.ContactSheetName, log)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Sheets sync, proceeding without spreadsheet forwarding")
		} else {
			syncer = s
			log.Info("Sheets sync initialized successfully")
		}
	} else {
		log.Info("Sheets sync not configured, proceeding without spreadsheet forwarding")
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		Supabase:    supabaseClient,
		RedisClient: redisClient,
		Syncer:      syncer,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// HasRedis returns true if the Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
