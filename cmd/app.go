package main

import (
	"errors"
	"io"
	"net/http"
	"os"

	"myheartbeat/api"
	"myheartbeat/auth"
	"myheartbeat/handlers"
	"myheartbeat/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func newLogger(w io.Writer, logLevel string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	var allowed level.Option
	switch logLevel {
	case "debug":
		allowed = level.AllowDebug()
	case "warn":
		allowed = level.AllowWarn()
	case "error":
		allowed = level.AllowError()
	default:
		allowed = level.AllowInfo()
	}
	return level.NewFilter(logger, allowed)
}

// newEcho builds the HTTP server: the health routes behind the request validator,
// with announcements behind gate, plus /metrics and /openapi.yaml.
func newEcho(
	gate *auth.Gate,
	server handlers.ServerInterface,
	gatherer prometheus.Gatherer,
	logger log.Logger,
) (*echo.Echo, error) {
	validator, err := handlers.NewRequestValidator(api.Spec)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)

	requestLogger := log.WithPrefix(logger, "component", "echo")
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level.Debug(requestLogger).Log(
				"msg", "Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(validator)

	handlers.RegisterHandlers(e, server, gate.Middleware())
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec)
	})

	return e, nil
}

func newGRPCServer(health grpc_health_v1.HealthServer, logger log.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.UnaryInterceptor(service.MyErrorToGRPCInterceptor(log.WithPrefix(logger, "component", "grpc"))),
	)
	grpc_health_v1.RegisterHealthServer(server, health)
	return server
}

// serve runs e on addr until a signal arrives on quit or the server stops on its
// own, e.g. because addr cannot be bound. It returns that server error, or nil
// after a signal.
func serve(e *echo.Echo, addr string, quit <-chan os.Signal, logger log.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "Listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
		return nil
	case err := <-serverErr:
		return err
	}
}
