// Package handler implements the gRPC AuthService on top of the identity service.
package handler

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "likelemba/api/generated/auth/v1"
	"likelemba/internal/identity/service"
	userdomain "likelemba/internal/user/domain"
)

// AuthServer implements AuthService: code delivery, verification, current user and logout.
type AuthServer struct {
	authv1.UnimplementedAuthServiceServer
	authSvc *service.AuthService
}

// NewAuthServer returns a new Auth gRPC server. If authSvc is nil, every RPC returns Unimplemented.
func NewAuthServer(authSvc *service.AuthService) *AuthServer {
	return &AuthServer{authSvc: authSvc}
}

// SendCode issues a code for the phone and delivers it.
func (s *AuthServer) SendCode(ctx context.Context, req *authv1.SendCodeRequest) (*authv1.SendCodeResponse, error) {
	if s.authSvc == nil {
		return nil, status.Error(codes.Unimplemented, "method SendCode not implemented")
	}
	sent, err := s.authSvc.SendCode(ctx, req.GetPhone())
	if err != nil {
		return nil, authErr(err)
	}
	return &authv1.SendCodeResponse{Sent: sent}, nil
}

// VerifyCode checks the code and, on success, returns the user and an access token.
func (s *AuthServer) VerifyCode(ctx context.Context, req *authv1.VerifyCodeRequest) (*authv1.VerifyCodeResponse, error) {
	if s.authSvc == nil {
		return nil, status.Error(codes.Unimplemented, "method VerifyCode not implemented")
	}
	res, err := s.authSvc.VerifyCode(ctx, req.GetPhone(), req.GetCode())
	if err != nil {
		return nil, authErr(err)
	}
	return verifyResultToProto(res), nil
}

// GetCurrentUser returns the user of the bearer token's session, or no user when signed out.
func (s *AuthServer) GetCurrentUser(ctx context.Context, req *authv1.GetCurrentUserRequest) (*authv1.GetCurrentUserResponse, error) {
	if s.authSvc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetCurrentUser not implemented")
	}
	u, err := s.authSvc.CurrentUser(ctx)
	if err != nil {
		return nil, authErr(err)
	}
	return &authv1.GetCurrentUserResponse{User: userToProto(u)}, nil
}

// Logout revokes the bearer token's session. Calling it signed out is not an error.
func (s *AuthServer) Logout(ctx context.Context, req *authv1.LogoutRequest) (*authv1.LogoutResponse, error) {
	if s.authSvc == nil {
		return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
	}
	if err := s.authSvc.Logout(ctx); err != nil {
		return nil, authErr(err)
	}
	return &authv1.LogoutResponse{}, nil
}

func verifyResultToProto(res *service.VerifyResult) *authv1.VerifyCodeResponse {
	if res == nil || !res.Success {
		return &authv1.VerifyCodeResponse{}
	}
	return &authv1.VerifyCodeResponse{
		Success:     true,
		User:        userToProto(res.User),
		AccessToken: res.AccessToken,
		ExpiresAt:   timestamppb.New(res.ExpiresAt),
	}
}

func userToProto(u *userdomain.User) *authv1.User {
	if u == nil {
		return nil
	}
	return &authv1.User{
		Id:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

func authErr(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidPhone):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrTooManyRequests):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, service.ErrPhoneNotAllowed):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		log.Printf("auth: internal error: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}
