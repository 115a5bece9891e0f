package handlers

import (
	"context"

	"myheartbeat/domain"
	"myheartbeat/interfaces"

	"github.com/go-kit/log"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCHealthServer answers grpc.health.v1.Health/Check from the registry, so
// standard gRPC health probes can ask whether an announced service is alive.
// The empty service name refers to myheartbeat itself. Watch and List are not
// supported.
type GRPCHealthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	liveness
}

// NewGRPCHealthServer creates a new GRPCHealthServer.
func NewGRPCHealthServer(
	registry interfaces.Registry,
	clock interfaces.TimeProvider,
	metrics interfaces.Metrics,
	logger log.Logger,
) *GRPCHealthServer {
	return &GRPCHealthServer{
		liveness: liveness{
			registry: registry,
			clock:    clock,
			metrics:  metrics,
			logger:   log.WithPrefix(logger, "component", "GRPCHealthServer"),
		},
	}
}

// Check returns SERVING for an alive service and a gone error, which the
// service.MyErrorToGRPCInterceptor turns into codes.NotFound, otherwise.
func (s *GRPCHealthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	name := req.GetService()
	if name == "" {
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
	}
	if s.check(name) != domain.OutcomeAlive {
		return nil, goneError(name)
	}
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
