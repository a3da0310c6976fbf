package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"scanguard/internal/account"
	"scanguard/internal/api"
	"scanguard/internal/api/handler/adminhandler"
	"scanguard/internal/api/handler/v1handler"
	"scanguard/internal/config"
	"scanguard/internal/orchestrator"
	"scanguard/internal/review"
	"scanguard/internal/webhook"
	"scanguard/internal/worker"
	"scanguard/pkg/detector"
	"scanguard/pkg/detector/heuristic"
	"scanguard/pkg/detector/httpdetector"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
)

// webhookClientTimeout bounds a delivery at the transport level. Attempts are
// additionally bounded by the configured attempt timeout.
const webhookClientTimeout = 30 * time.Second

func newDetector(ctx context.Context, cfg *config.Config) detector.Client {
	if cfg.Detector.URL == "" {
		logger.Info(ctx, "using built-in heuristic detector")

		return heuristic.New()
	}

	client, err := httpdetector.New(&http.Client{
		Timeout:   cfg.Detector.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, cfg.Detector.URL, cfg.Detector.APIKey)
	if err != nil {
		logger.Fatal(ctx, "could not create detector client", zap.Error(err))
	}

	return client
}

func serve(ctx context.Context, cfg *config.Config) error {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	// otel metrics exported through the prometheus default registry
	mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return err //nolint: wrapcheck
	}
	otel.SetMeterProvider(mp)
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()
	instruments, err := metrics.New(mp)
	if err != nil {
		return fmt.Errorf("could not create metric instruments: %w", err)
	}

	registry, err := account.New(strg, account.NewOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not create account registry: %w", err)
	}

	sender := webhook.NewHTTPSender(&http.Client{
		Timeout:   webhookClientTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, cfg.Webhook.UserAgent)
	dispatcher := webhook.New(strg, sender, instruments, webhook.NewOptions(cfg))

	orch := orchestrator.New(strg, registry, newDetector(ctx, cfg), dispatcher, instruments, orchestrator.NewOptions(cfg))
	queue := review.New(strg, dispatcher, instruments, review.NewOptions(cfg))

	riverClient, err := worker.Start(ctx, strg.Pool, dispatcher, registry, worker.NewOptions(cfg))
	if err != nil {
		return err //nolint: wrapcheck
	}

	server, err := api.NewServer(api.Deps{
		V1: v1handler.Deps{
			Registry:     registry,
			Orchestrator: orch,
			SeedURLs:     cfg.Seed.URLs,
		},
		Admin: adminhandler.Deps{
			Queue:      queue,
			Dispatcher: dispatcher,
		},
		Health: strg,
	}, api.NewOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not create webserver: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start webserver: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		// wait for interrupt or a failed listener
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}

		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(shutdownCtx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}

		return nil
	})

	return g.Wait() //nolint: wrapcheck
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg); err != nil {
				logger.Fatal(ctx, "server stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
