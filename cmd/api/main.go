package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api"
	"github.com/comunidad/social-api/internal/api/handler"
	"github.com/comunidad/social-api/internal/api/session"
	"github.com/comunidad/social-api/internal/core/ports"
	"github.com/comunidad/social-api/internal/core/service"
	"github.com/comunidad/social-api/internal/infrastructure/config"
	mongodb "github.com/comunidad/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/comunidad/social-api/internal/infrastructure/db/redis"
	"github.com/comunidad/social-api/internal/infrastructure/storage"
	"github.com/comunidad/social-api/pkg/logger"
)

const uploadsPrefix = "/uploads"

// @title       Comunidad API
// @version     1.0
// @description Registration, sessions, community events and posts.
// @BasePath    /
func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "comunidad-api",
	})

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Document store ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	// --- Session store ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Media ---
	media, uploadDir, err := newMediaStorage(ctx, cfg.Media)
	if err != nil {
		return err
	}
	log.Info().Str("backend", cfg.Media.Backend).Msg("media storage ready")

	// --- Services ---
	users := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(users, redisdb.NewSessionStore(rdb), cfg.Session.TTL, logger.Component("auth"))
	eventService := service.NewEventService(mongodb.NewEventRepository(db), users, logger.Component("events"))
	postService := service.NewPostService(mongodb.NewPostRepository(db), users, media, logger.Component("posts"))

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Events:  eventService,
		Posts:   postService,
		Cookies: session.NewCookieCodec(cfg.Session.Secret, cfg.Session.CookieSecure),
		Health: map[string]handler.PingFunc{
			"mongodb": func(ctx context.Context) error { return mongodb.Ping(ctx, db) },
			"redis":   func(ctx context.Context) error { return redisdb.Ping(ctx, rdb) },
		},
		Log:            logger.Component("http"),
		CORSOrigins:    cfg.CORSOrigins,
		PublicDir:      cfg.PublicDir,
		UploadDir:      uploadDir,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info().Msg("shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("HTTP server stopped gracefully")
	return nil
}

// newMediaStorage picks the media backend. The returned directory is served
// at /uploads and is empty for the S3 backend.
func newMediaStorage(ctx context.Context, cfg config.MediaConfig) (ports.MediaStorage, string, error) {
	if cfg.Backend == config.MediaBackendS3 {
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		return s3, "", err
	}

	local, err := storage.NewLocalStorage(cfg.UploadDir, uploadsPrefix)
	if err != nil {
		return nil, "", err
	}
	return local, cfg.UploadDir, nil
}
