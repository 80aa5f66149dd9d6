package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/careportal/careportal/internal/api"
	"github.com/careportal/careportal/internal/appointments"
	"github.com/careportal/careportal/internal/assistant"
	"github.com/careportal/careportal/internal/config"
	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/internal/kv"
	"github.com/careportal/careportal/internal/notifications"
	"github.com/careportal/careportal/internal/observability/metrics"
	"github.com/careportal/careportal/internal/wishlist"
	"github.com/careportal/careportal/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	logger.Info("starting careportal api", "env", cfg.Env, "port", cfg.Port)

	ctx := context.Background()

	directory, err := doctors.NewSeededDirectory()
	if err != nil {
		logger.Error("failed to load doctor directory", "error", err)
		os.Exit(1)
	}

	store := buildKVStore(ctx, cfg, logger)

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	notifStore := notifications.NewStore(ctx, store, logger)
	apptStore := appointments.NewStore(directory, notifStore, logger).WithMetrics(storeMetrics)
	wishStore := wishlist.NewStore(ctx, store, directory, notifStore, logger).WithMetrics(storeMetrics)

	var llm assistant.LLMClient
	if cfg.GeminiAPIKey != "" {
		client, err := assistant.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Warn("gemini client unavailable, assistant limited to quick answers", "error", err)
		} else {
			defer client.Close()
			llm = client
			logger.Info("assistant enabled", "model", cfg.GeminiModelID)
		}
	}

	faqService := assistant.NewFAQService(llm, logger).
		WithLimits(int32(cfg.AssistantMaxTokens), float32(cfg.AssistantTemperature))
	recommendService := assistant.NewRecommendService(llm, directory, logger)

	handler := api.NewRouter(&api.Config{
		Logger:               logger,
		DoctorsHandler:       api.NewDoctorsHandler(directory, logger),
		AppointmentsHandler:  api.NewAppointmentsHandler(apptStore, logger),
		NotificationsHandler: api.NewNotificationsHandler(notifStore, logger),
		WishlistHandler:      api.NewWishlistHandler(wishStore, logger),
		AssistantHandler:     api.NewAssistantHandler(faqService, recommendService, logger).WithTimeout(cfg.AssistantTimeout),
		MetricsHandler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

// buildKVStore connects to redis when configured, falling back to the
// in-memory store when the address is absent or the ping fails.
func buildKVStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) kv.Store {
	if cfg.RedisAddr == "" {
		logger.Info("no redis configured, using in-memory store")
		return kv.NewMemoryStore()
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-memory store", "addr", cfg.RedisAddr, "error", err)
		return kv.NewMemoryStore()
	}

	logger.Info("connected to redis", "addr", cfg.RedisAddr)
	return kv.NewRedisStore(client)
}
