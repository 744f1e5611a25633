package main

import (
	"context"
	"net/http"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	"github.com/musicmentor/music-mentor-api/internal/app/services/recommend"
	server "github.com/musicmentor/music-mentor-api/internal/infra/http"
	lookupHandler "github.com/musicmentor/music-mentor-api/internal/infra/http/handlers/lookup"
	recommendHandler "github.com/musicmentor/music-mentor-api/internal/infra/http/handlers/recommend"
	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache/memory"
	cacheredis "github.com/musicmentor/music-mentor-api/internal/infra/repository/cache/redis"
	"github.com/musicmentor/music-mentor-api/internal/infra/repository/gemini"
	"github.com/musicmentor/music-mentor-api/internal/infra/repository/itunes"
	seenredis "github.com/musicmentor/music-mentor-api/internal/infra/repository/seen/redis"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

const lookupCacheTTL = 6 * time.Hour

func main() {
	err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()

	setupLogger(config)

	ctx := context.Background()

	spanExporter, err := newSpanExporter(ctx, config.OTLPEndpoint)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create span exporter")
	}

	tracerProvider, err := newTracerProvider(spanExporter)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create tracer provider")
	}
	defer func() {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("Failed to shutdown tracer provider")
		}
	}()

	otel.SetTracerProvider(tracerProvider)
	tracer := tracerProvider.Tracer("music-mentor-api")

	redisOpts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse Redis URL")
	}
	redisClient := redis.NewClient(redisOpts)

	itunesClient := itunes.New(tracer, &http.Client{Timeout: 5 * time.Second})

	geminiClient, err := gemini.New(ctx, tracer, config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Gemini client")
	}

	var releaseCache, previewCache catalog.Cache
	if config.CacheBackend == "redis" {
		releaseCache = cacheredis.NewCache(redisClient, lookupCacheTTL)
		previewCache = cacheredis.NewCache(redisClient, lookupCacheTTL)
	} else {
		releaseCache = memory.NewCache(lookupCacheTTL)
		previewCache = memory.NewCache(lookupCacheTTL)
	}
	seenStore := seenredis.NewStore(redisClient)

	catalogService := catalog.New(tracer, itunesClient, releaseCache, previewCache)
	generateService := generate.New(tracer, geminiClient)
	recommendService := recommend.New(tracer, generateService, catalogService, seenStore)

	rh := recommendHandler.New(tracer, recommendService)
	lh := lookupHandler.New(tracer, catalogService, generateService)

	serverConfig := server.NewConfig(config.Port, false)
	httpServer, err := server.New(serverConfig, rh, lh)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create HTTP server")
	}

	logrus.WithField("port", config.Port).Info("Starting server")
	logrus.Fatal(httpServer.ListenAndServe())
}

func setupLogger(config *Env) {
	if config.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("Invalid log level, defaulting to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
