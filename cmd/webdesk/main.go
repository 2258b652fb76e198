package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webdesk/internal/adapters/display"
	"webdesk/internal/adapters/injector"
	"webdesk/internal/adapters/storage/memory"
	"webdesk/internal/capture"
	"webdesk/internal/codec"
	cfgpkg "webdesk/internal/infrastructure/config"
	httpapi "webdesk/internal/infrastructure/httpapi"
	obs "webdesk/internal/infrastructure/observability"
	"webdesk/internal/usecase"
)

func main() {
	cfg := cfgpkg.FromEnv()

	logger := obs.NewLogger(cfg.LogLevel)
	logger.Info().Str("addr", cfg.Addr).Str("version", obs.Version).Msg("starting webdesk")

	metrics := obs.NewMetrics()

	store := memory.NewStore(cfg.MaxSessions, cfg.SessionTTL)
	sessions := usecase.NewSessionService(store, store, cfg.CanvasWidth, cfg.CanvasHeight)

	inj := injector.NewLogging(logger, 0, 0)
	input := usecase.NewInputService(store, inj)

	monitor := httpapi.NewMonitorHub()
	transfers := usecase.NewTransferService(store, store, store, monitor)

	deps := &httpapi.Deps{
		Cfg:       cfg,
		Logger:    logger,
		Metrics:   metrics,
		Sessions:  sessions,
		Input:     input,
		Transfers: transfers,
		Monitor:   monitor,
	}

	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	switch cfg.CaptureSource {
	case "pattern":
		enc := codec.NewJPEG(cfg.JPEGQuality)
		loop := capture.NewLoop(display.NewPattern(1280, 720), enc, sessions, cfg.CaptureInterval, logger, metrics)
		deps.Loop = loop
		go loop.Run(loopCtx)
	case "off":
		logger.Info().Msg("local capture disabled; sessions expect host-pushed frames")
	default:
		logger.Warn().Str("source", cfg.CaptureSource).Msg("unknown capture source, running without local capture")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("webdesk stopped")
}
