package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myheartbeat/adapters/myprometheus"
	"myheartbeat/auth"
	"myheartbeat/handlers"
	"myheartbeat/registry"
	"myheartbeat/service"

	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/subosito/gotenv"
	"google.golang.org/grpc"
)

func main() {
	// .env is optional and never overrides variables already set
	_ = gotenv.Load()

	// Load configuration
	config, err := LoadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger := newLogger(os.Stderr, defaultLogLevel)
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(2)
	}

	// Initialize logger
	logger := newLogger(os.Stderr, config.LogLevel)
	level.Info(logger).Log("msg", "Starting MyHeartbeat service")
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"listen_addr", config.ListenAddr,
		"grpc_listen_addr", config.GRPCListenAddr,
		"default_deadline", config.DefaultDeadline,
		"config_path", config.ConfigPath,
		"log_level", config.LogLevel,
	)

	reg := registry.New()
	clock := service.NewTimeProvider(time.Now)
	metrics := myprometheus.NewMetrics(prometheus.DefaultRegisterer)
	gate := auth.NewGate(config.Token, metrics, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reload the token from the config file
	if config.TokenFromFile {
		watcher, err := newTokenWatcher(config.ConfigPath, gate.SetSecret, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to watch config file", "err", err)
			os.Exit(1)
		}
		go watcher.Run(ctx)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		httpServer := handlers.NewHTTPServer(reg, clock, metrics, config.DefaultDeadline, logger)
		e, err = newEcho(gate, httpServer, prometheus.DefaultGatherer, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create HTTP server", "err", err)
			os.Exit(1)
		}
	}

	// Create gRPC server
	var grpcServer *grpc.Server
	if config.GRPCListenAddr != "" {
		lis, err := net.Listen("tcp", config.GRPCListenAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen for gRPC", "addr", config.GRPCListenAddr, "err", err)
			os.Exit(1)
		}
		grpcServer = newGRPCServer(handlers.NewGRPCHealthServer(reg, clock, metrics, logger), logger)

		go func() {
			level.Info(logger).Log("msg", "Starting gRPC server", "addr", config.GRPCListenAddr)
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Serve until interrupted
	exitCode := 0
	if err := serve(e, config.ListenAddr, quit, logger); err != nil {
		level.Error(logger).Log("msg", "HTTP server error", "err", err)
		exitCode = 1
	}
	level.Info(logger).Log("msg", "Shutting down server...")
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
	if exitCode != 0 {
		shutdownCancel()
		os.Exit(exitCode)
	}
}
