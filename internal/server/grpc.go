package server

import (
	"google.golang.org/grpc"

	authv1 "likelemba/api/generated/auth/v1"
	devv1 "likelemba/api/generated/dev/v1"
	healthv1 "likelemba/api/generated/health/v1"
	tontinev1 "likelemba/api/generated/tontine/v1"

	healthhandler "likelemba/internal/health/handler"
	identityhandler "likelemba/internal/identity/handler"
	identityservice "likelemba/internal/identity/service"
	tontinehandler "likelemba/internal/tontine/handler"
	tontineservice "likelemba/internal/tontine/service"
)

// Deps holds optional service dependencies for gRPC handlers.
type Deps struct {
	// Auth is the auth service for SendCode/VerifyCode/GetCurrentUser/Logout. If nil, auth RPCs return Unimplemented.
	Auth *identityservice.AuthService
	// Tontine serves the member's groups, rosters, payments and dashboard. If nil, tontine RPCs return Unimplemented.
	Tontine *tontineservice.Service
	// HealthPinger is used by HealthService for readiness (e.g. *sql.DB). If nil, HealthCheck skips DB ping.
	HealthPinger healthhandler.Pinger
	// HealthPolicyChecker is used by HealthService for readiness (e.g. OPA evaluator). If nil, HealthCheck skips policy check.
	HealthPolicyChecker healthhandler.PolicyChecker
	// DevOTPHandler is the dev-only DevService (GetOTP). If nil, DevService is not registered. Set only when dev OTP is enabled and not production.
	DevOTPHandler devv1.DevServiceServer
}

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - AuthService    → internal/identity/handler
//   - TontineService → internal/tontine/handler
//   - HealthService  → internal/health/handler
//   - DevService     → internal/devotp/handler (dev only)
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	authv1.RegisterAuthServiceServer(s, identityhandler.NewAuthServer(deps.Auth))
	tontinev1.RegisterTontineServiceServer(s, tontinehandler.NewServer(deps.Tontine))
	healthv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker))
	if deps.DevOTPHandler != nil {
		devv1.RegisterDevServiceServer(s, deps.DevOTPHandler)
	}
}

// PublicMethods returns the full method names callable without a valid access token.
// GetCurrentUser and Logout are public so that a signed-out caller gets no user and a no-op
// instead of an error; a valid token still attaches its identity.
func PublicMethods() map[string]bool {
	return map[string]bool{
		authv1.AuthService_SendCode_FullMethodName:       true,
		authv1.AuthService_VerifyCode_FullMethodName:     true,
		authv1.AuthService_GetCurrentUser_FullMethodName: true,
		authv1.AuthService_Logout_FullMethodName:         true,
		healthv1.HealthService_HealthCheck_FullMethodName: true,
		devv1.DevService_GetOTP_FullMethodName:           true,
	}
}

// UnauditedMethods returns the full method names the audit and telemetry interceptors skip.
func UnauditedMethods() map[string]bool {
	return map[string]bool{
		healthv1.HealthService_HealthCheck_FullMethodName: true,
		devv1.DevService_GetOTP_FullMethodName:           true,
	}
}
