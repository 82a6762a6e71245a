// Package handler implements the dev-only gRPC DevService (GetOTP).
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	devv1 "likelemba/api/generated/dev/v1"
	"likelemba/internal/devotp"
	"likelemba/internal/phone"
)

const devOTPNote = "DEV MODE ONLY"

// Server implements DevService. Only registered when dev OTP is enabled and not production.
type Server struct {
	devv1.UnimplementedDevServiceServer
	store devotp.Store
}

// NewServer returns a DevService server that reads codes from the given store.
func NewServer(store devotp.Store) *Server {
	return &Server{store: store}
}

// GetOTP returns the last code issued for phone. NotFound if missing or expired.
func (s *Server) GetOTP(ctx context.Context, req *devv1.GetOTPRequest) (*devv1.GetOTPResponse, error) {
	p := phone.Normalize(req.GetPhone())
	if p == "" {
		return nil, status.Error(codes.InvalidArgument, "phone is required")
	}
	if s.store == nil {
		return nil, status.Error(codes.NotFound, "OTP not found or expired")
	}
	code, ok := s.store.Get(ctx, p)
	if !ok {
		return nil, status.Error(codes.NotFound, "OTP not found or expired")
	}
	return &devv1.GetOTPResponse{
		Otp:  code,
		Note: devOTPNote,
	}, nil
}
