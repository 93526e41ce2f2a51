package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "cargo-relay/internal/app"
	"cargo-relay/internal/handlers/rest/delivery_claim_post"
	"cargo-relay/internal/handlers/rest/delivery_release_post"
	"cargo-relay/internal/handlers/rest/healthcheck_head"
	"cargo-relay/internal/handlers/rest/package_delete"
	"cargo-relay/internal/handlers/rest/package_get"
	"cargo-relay/internal/handlers/rest/package_image_delete"
	"cargo-relay/internal/handlers/rest/package_image_post"
	"cargo-relay/internal/handlers/rest/package_post"
	"cargo-relay/internal/handlers/rest/package_put"
	"cargo-relay/internal/handlers/rest/packages_get"
	"cargo-relay/internal/handlers/rest/ping_get"
	"cargo-relay/internal/handlers/rest/profile_get"
	"cargo-relay/internal/handlers/rest/profile_picture_delete"
	"cargo-relay/internal/handlers/rest/profile_picture_put"
	"cargo-relay/internal/handlers/rest/profile_post"
	"cargo-relay/internal/handlers/rest/profile_put"
	"cargo-relay/internal/pkg/config"
	"cargo-relay/internal/pkg/dotenv"
	"cargo-relay/internal/pkg/gcs"
	metrics_system "cargo-relay/internal/pkg/metrics"
	"cargo-relay/internal/pkg/middlewares/graceful_shutdown"
	"cargo-relay/internal/pkg/middlewares/metrics"
	"cargo-relay/internal/pkg/middlewares/rate_limiter"
	"cargo-relay/internal/pkg/middlewares/timeout"
	"cargo-relay/internal/pkg/mongodb"
	"cargo-relay/pkg/logger"
	"cargo-relay/pkg/logger/zap_adapter"
	"cargo-relay/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting cargo-relay application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	mongoClient, err := mongodb.NewClient(ctx, log, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			runLog.Error("failed to disconnect mongodb client",
				logger.NewField("error", err),
			)
		}
	}()

	storageClient, err := gcs.NewClient(ctx, log, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}
	defer func() {
		if err := storageClient.Close(); err != nil {
			runLog.Error("failed to close storage client",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, mongoClient, storageClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/package", package_post.New(log, app.ServicePackages)).Methods("POST")
	router.Handle("/package/{id}", package_get.New(log, app.ServicePackages)).Methods("GET")
	router.Handle("/package/{id}", package_put.New(log, app.ServicePackages)).Methods("PUT")
	router.Handle("/package/{id}", package_delete.New(log, app.ServicePackages)).Methods("DELETE")
	router.Handle("/packages", packages_get.New(log, app.ServicePackages)).Methods("GET")
	router.Handle("/package/{id}/image", package_image_post.New(log, app.ServicePackages)).Methods("POST")
	router.Handle("/package/{id}/image/{imageId}", package_image_delete.New(log, app.ServicePackages)).Methods("DELETE")

	router.Handle("/delivery/claim", delivery_claim_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/release", delivery_release_post.New(log, app.ServiceDelivery)).Methods("POST")

	router.Handle("/profile", profile_post.New(log, app.ServiceProfile)).Methods("POST")
	router.Handle("/profile", profile_get.New(log, app.ServiceProfile)).Methods("GET")
	router.Handle("/profile", profile_put.New(log, app.ServiceProfile)).Methods("PUT")
	router.Handle("/profile/picture", profile_picture_put.New(log, app.ServiceProfile)).Methods("PUT")
	router.Handle("/profile/picture", profile_picture_delete.New(log, app.ServiceProfile)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
