package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flightplanner/config"
	"github.com/Domenick1991/flightplanner/internal/metrics"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// ServiceName is the gRPC health service name reported alongside the overall status.
const ServiceName = "flightplanner.Planner"

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	health     *health.Server
	checks     map[string]Check
}

// Check probes one dependency; a non-nil error marks the service NOT_SERVING.
type Check func(ctx context.Context) error

// Run starts the gRPC health server and the HTTP server (REST API, /healthz via
// grpc-gateway, /metrics, swagger) and blocks until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg *config.Config, api http.Handler, checks map[string]Check) error {
	s, err := newServers(cfg, api, checks)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()
	go func() { errCh <- s.httpServer.ListenAndServe() }()
	go s.watch(ctx, 15*time.Second)

	slog.Info("servers started", "http", cfg.HTTP.Address, "grpc", cfg.GRPC.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, api http.Handler, checks map[string]Check) (*Servers, error) {
	grpcSrv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, hs)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	gateway := runtime.NewServeMux()
	if err := gateway.HandlePath(http.MethodGet, "/healthz", healthzHandler(hs)); err != nil {
		return nil, fmt.Errorf("register healthz: %w", err)
	}

	handler := http.NewServeMux()
	handler.Handle("/api/", api)
	handler.Handle("/healthz", gateway)
	handler.Handle("/metrics", metrics.HTTPHandler())

	if cfg.HTTP.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/swagger/flightplanner.swagger.json")))
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{Addr: cfg.HTTP.Address, Handler: handler},
		health:     hs,
		checks:     checks,
	}, nil
}

// healthzHandler answers with the gRPC health status of ServiceName as JSON.
func healthzHandler(hs *health.Server) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		resp, err := hs.Check(r.Context(), &healthpb.HealthCheckRequest{Service: ServiceName})
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		body, err := protojson.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write(body)
	}
}

// watch re-runs the dependency checks every interval until ctx ends.
func (s *Servers) watch(ctx context.Context, interval time.Duration) {
	s.probe(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *Servers) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(checkCtx)
		cancel()
		if err != nil {
			slog.Warn("dependency check failed", "dependency", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus(ServiceName, status)
}
