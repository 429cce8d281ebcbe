package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/adapters/gemini"
	"github.com/ewilliams-labs/segue/internal/adapters/memstore"
	"github.com/ewilliams-labs/segue/internal/adapters/rediscache"
	"github.com/ewilliams-labs/segue/internal/adapters/rest"
	"github.com/ewilliams-labs/segue/internal/adapters/spotify"
	"github.com/ewilliams-labs/segue/internal/adapters/sqlite"
	"github.com/ewilliams-labs/segue/internal/adapters/youtube"
	"github.com/ewilliams-labs/segue/internal/core/intent"
	"github.com/ewilliams-labs/segue/internal/core/ports"
	"github.com/ewilliams-labs/segue/internal/core/services"
	"github.com/ewilliams-labs/segue/internal/worker"
)

type config struct {
	port           string
	spotifyID      string
	spotifySecret  string
	youtubeKey     string
	geminiKey      string
	geminiModel    string
	geminiFallback string
	storageDriver  string
	sqlitePath     string
	cacheDriver    string
	redisAddr      string
}

func loadConfig() config {
	return config{
		port:           envOr("PORT", "8080"),
		spotifyID:      os.Getenv("SPOTIFY_CLIENT_ID"),
		spotifySecret:  os.Getenv("SPOTIFY_CLIENT_SECRET"),
		youtubeKey:     os.Getenv("YOUTUBE_API_KEY"),
		geminiKey:      os.Getenv("GEMINI_API_KEY"),
		geminiModel:    envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		geminiFallback: os.Getenv("GEMINI_FALLBACK_MODEL"),
		storageDriver:  envOr("STORAGE_DRIVER", "sqlite"),
		sqlitePath:     envOr("SQLITE_PATH", "segue.db"),
		cacheDriver:    envOr("CACHE_DRIVER", "memory"),
		redisAddr:      envOr("REDIS_ADDR", "localhost:6379"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(envOr("LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if envOr("LOG_FORMAT", "json") == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := newLogger()
	cfg := loadConfig()

	// It's best practice to crash early if required config is missing.
	// The catalog backs classification and retrieval, so Spotify
	// credentials are non-negotiable; YouTube and Gemini are optional
	// and the pipeline degrades without them.
	if cfg.spotifyID == "" || cfg.spotifySecret == "" {
		log.Fatal().Msg("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}

	// 1. Caching layer
	var cache ports.Cache
	switch cfg.cacheDriver {
	case "memory":
		cache = memstore.NewCache()
	case "redis":
		cache = rediscache.New(redis.NewClient(&redis.Options{Addr: cfg.redisAddr}), log)
	default:
		log.Fatal().Str("driver", cfg.cacheDriver).Msg("unknown cache driver")
	}

	// 2. Profile storage
	var profiles ports.ProfileStore
	switch cfg.storageDriver {
	case "memory":
		profiles = memstore.NewProfileStore()
	case "sqlite":
		store, err := sqlite.NewAdapter(cfg.sqlitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize profile storage")
		}
		defer store.Close()
		profiles = store
	default:
		log.Fatal().Str("driver", cfg.storageDriver).Msg("unknown storage driver")
	}

	// 3. Driven adapters
	catalog := spotify.NewClient(context.Background(), cfg.spotifyID, cfg.spotifySecret, cache, log)

	var videos ports.VideoFinder
	if cfg.youtubeKey != "" {
		videos = youtube.NewClient(cfg.youtubeKey, log)
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set, video lookups disabled")
	}

	var generator ports.TextGenerator
	if cfg.geminiKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.geminiKey, cfg.geminiModel, cfg.geminiFallback, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini client")
		}
		generator = client
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, responses will be templated")
	}

	// 4. Core pipeline (dependency injection: adapters in, service out)
	composer := services.NewComposer(
		intent.NewClassifier(catalog, log),
		services.NewRetriever(catalog, log),
		generator,
		catalog,
		videos,
		profiles,
		services.NewResponder(nil),
		log,
	)

	// 5. Background workers; warm the trending list before the first
	// request pays for it.
	pool := worker.NewPool(catalog, profiles, 100, log)
	pool.Start(2)
	defer pool.Stop()
	pool.Submit(worker.Job{Kind: worker.TrendingWarmup})

	// 6. HTTP adapter
	handler := rest.NewHandler(composer, catalog, profiles, pool, rest.HealthStatus{
		Spotify: true,
		YouTube: cfg.youtubeKey != "",
		Gemini:  cfg.geminiKey != "",
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	log.Info().Str("port", cfg.port).Msg("segue api is running")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown error")
		}
	}
}
