package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/cache"
	"github.com/kdennisod/cash-stuffing/internal/config"
	"github.com/kdennisod/cash-stuffing/internal/controllers"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/ocr"
	"github.com/kdennisod/cash-stuffing/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// sessionCleanupInterval is the interval in which expired sessions are deleted.
const sessionCleanupInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)
	setupLogging(cfg)

	if err := connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	co := controllers.New(ocr.NewScanner(ocr.Tesseract{
		Path:     cfg.TesseractPath,
		Language: cfg.OCRLanguage,
	}))
	co.SessionTTL = cfg.SessionTTL
	co.SecureCookies = cfg.APIURL.Scheme == "https"
	co.MaxUploadSize = cfg.MaxUploadSize

	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("cache")
		}
		defer redisCache.Close()

		co.Cache = redisCache
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("caching data in redis")
	}

	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("events")
		}
		defer publisher.Close()

		co.Events = publisher
		log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing events to AMQP")
	}

	r, teardown, err := router.Config(cfg.APIURL, cfg.CORSAllowOrigins)
	if err != nil {
		log.Fatal().Err(err).Msg("router")
	}
	defer teardown()
	router.AttachRoutes(co, r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("api_url", cfg.APIURL.String()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return cleanupSessions(ctx, sessionCleanupInterval)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server")
	}

	log.Info().Msg("server stopped")
}

// setupLogging configures the global logger.
//
// The log format can be explicitly set. If it is not set, it defaults to
// human readable for development and JSON for release.
func setupLogging(cfg *config.Config) {
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("ignoring invalid LOG_LEVEL")
		} else {
			zerolog.SetGlobalLevel(level)
		}
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect opens postgres if a host is configured and sqlite otherwise.
func connect(cfg *config.Config) error {
	if cfg.Postgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("using postgres")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		return err
	}

	log.Info().Str("path", cfg.SQLitePath()).Msg("using sqlite")
	return models.Connect(cfg.SQLitePath())
}

// cleanupSessions deletes expired sessions until the context is done.
func cleanupSessions(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			deleted, err := models.DeleteExpiredSessions(models.DB, now)
			if err != nil {
				log.Error().Err(err).Msg("deleting expired sessions")
				continue
			}

			if deleted > 0 {
				log.Debug().Int64("count", deleted).Msg("deleted expired sessions")
			}
		}
	}
}
