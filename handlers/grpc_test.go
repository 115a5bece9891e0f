package handlers

import (
	"context"
	"net"
	"testing"
	"time"

	"myheartbeat/domain"
	"myheartbeat/interfaces/mock"
	"myheartbeat/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func startHealthServer(t *testing.T, registry *mock.RegistryMock, metrics *mock.MetricsMock) grpc_health_v1.HealthClient {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(service.MyErrorToGRPCInterceptor(log.NewNopLogger())))
	grpc_health_v1.RegisterHealthServer(grpcServer, NewGRPCHealthServer(registry, fixedClock(), metrics, log.NewNopLogger()))
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpc_health_v1.NewHealthClient(conn)
}

func TestGRPCHealthServer_Check(t *testing.T) {
	tests := []struct {
		name         string
		service      string
		outcome      domain.Outcome
		expectedCode codes.Code
		expectChecks int
	}{
		{name: "server itself", service: "", expectedCode: codes.OK, expectChecks: 0},
		{name: "alive", service: "svc-a", outcome: domain.OutcomeAlive, expectedCode: codes.OK, expectChecks: 1},
		{name: "expired", service: "svc-a", outcome: domain.OutcomeExpired, expectedCode: codes.NotFound, expectChecks: 1},
		{name: "unknown", service: "svc-a", outcome: domain.OutcomeUnknown, expectedCode: codes.NotFound, expectChecks: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.RegistryMock{
				CheckFunc: func(name string, now time.Time) domain.Outcome {
					assert.Equal(t, tt.service, name)
					return tt.outcome
				},
			}
			metrics := &mock.MetricsMock{}
			client := startHealthServer(t, registry, metrics)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: tt.service})

			assert.Equal(t, tt.expectedCode, status.Code(err))
			if tt.expectedCode == codes.OK {
				require.NotNil(t, resp)
				assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
			}
			assert.Len(t, registry.CheckCalls(), tt.expectChecks)
			assert.Len(t, metrics.ObserveCheckCalls(), tt.expectChecks)
		})
	}
}

func TestGRPCHealthServer_WatchUnimplemented(t *testing.T) {
	client := startHealthServer(t, &mock.RegistryMock{}, &mock.MetricsMock{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.Watch(ctx, &grpc_health_v1.HealthCheckRequest{Service: "svc-a"})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
