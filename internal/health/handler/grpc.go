// Package handler implements the gRPC HealthService used for readiness checks.
package handler

import (
	"context"
	"log"
	"time"

	healthv1 "likelemba/api/generated/health/v1"
)

const checkTimeout = 2 * time.Second

// Pinger checks a backing store (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker checks that the send policy engine can evaluate.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server implements HealthService for readiness/liveness.
type Server struct {
	healthv1.UnimplementedHealthServiceServer
	pinger  Pinger
	checker PolicyChecker
}

// NewServer returns a new Health gRPC server. pinger and checker may be nil (then that check is skipped).
func NewServer(pinger Pinger, checker PolicyChecker) *Server {
	return &Server{pinger: pinger, checker: checker}
}

// HealthCheck reports SERVING when the database answers a ping and the policy engine evaluates.
// Failures are reported as NOT_SERVING, never as an RPC error.
func (s *Server) HealthCheck(ctx context.Context, req *healthv1.HealthCheckRequest) (*healthv1.HealthCheckResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if s.pinger != nil {
		if err := s.pinger.PingContext(ctx); err != nil {
			log.Printf("health: database ping failed: %v", err)
			return &healthv1.HealthCheckResponse{Status: healthv1.ServingStatus_SERVING_STATUS_NOT_SERVING}, nil
		}
	}
	if s.checker != nil {
		if err := s.checker.HealthCheck(ctx); err != nil {
			log.Printf("health: policy engine check failed: %v", err)
			return &healthv1.HealthCheckResponse{Status: healthv1.ServingStatus_SERVING_STATUS_NOT_SERVING}, nil
		}
	}
	return &healthv1.HealthCheckResponse{Status: healthv1.ServingStatus_SERVING_STATUS_SERVING}, nil
}
