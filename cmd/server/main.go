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

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"door-hub/infrastructure/storage"
	"door-hub/internal"
	"door-hub/observability"
	"door-hub/relay"
	"door-hub/runtime/workers"
	"door-hub/server"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database cleanup, HTTP
// shutdown) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	doors := storage.NewDoorRepository(db, logger)
	vectors := storage.NewFaceVectorRepository(db, logger)
	devices := storage.NewDeviceRepository(db, logger)

	// 3. Relay core
	monitoring := observability.NewMonitoring()
	registry := relay.NewGroupRegistry()
	pending := relay.NewPendingRequestTable()
	broadcaster := relay.NewBroadcaster(logger, registry, monitoring)
	router := relay.NewRouter(logger, registry, pending, broadcaster, doors, vectors, devices, monitoring)

	// 4. HTTP + WebSocket surface
	wsHandler := server.NewWsHandler(logger, router, registry, devices, monitoring,
		config.ConnectionBufferSize, config.DeliveryTimeout, config.WsReadLimit, config.AuthRequired)
	adminHandler := server.NewAdminHandler(logger, doors, router, config.AuthTokenDuration)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Routes(wsHandler, adminHandler),
	}

	// 5. Background workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(workers.NewTelemetryWorker(logger, monitoring, config.MetricInterval))
	if config.PendingRequestTTL > 0 {
		supervisor.Add(workers.NewPendingSweepWorker(logger, pending,
			config.PendingRequestTTL, config.PendingSweepInterval))
	}

	supervisorDone := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(supervisorDone)
	}()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Door hub listening", "addr", addr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	// 6. Graceful shutdown: stop accepting, drain connections, wait
	// for the workers.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	<-supervisorDone

	return exitOK, nil
}
