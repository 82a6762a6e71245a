package interceptors

import (
	"context"
	"log"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const bearerPrefix = "bearer "

// TokenValidator validates an access token and returns the session and user it was issued for.
type TokenValidator interface {
	ValidateAccess(token string) (sessionID, userID string, err error)
}

// SessionValidator reports whether a session is still active (not revoked, not expired).
type SessionValidator func(ctx context.Context, sessionID string) (bool, error)

// AuthUnary returns a unary server interceptor that validates the Bearer (access) token
// from gRPC metadata and sets user_id and session_id in context for protected RPCs.
// publicMethods is the set of full method names that do not require a Bearer token
// (e.g. AuthService SendCode, VerifyCode; HealthService HealthCheck). On public methods a
// valid token still sets the identity. sessions may be nil; when set, tokens of revoked or
// expired sessions are rejected.
func AuthUnary(tokens TokenValidator, publicMethods map[string]bool, sessions SessionValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		public := publicMethods[info.FullMethod]
		sessionID, userID, ok := authenticate(ctx, tokens, sessions)
		if !ok {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}
		return handler(WithIdentity(ctx, userID, sessionID), req)
	}
}

func authenticate(ctx context.Context, tokens TokenValidator, sessions SessionValidator) (sessionID, userID string, ok bool) {
	token := extractBearer(ctx)
	if token == "" || tokens == nil {
		return "", "", false
	}
	sessionID, userID, err := tokens.ValidateAccess(token)
	if err != nil {
		return "", "", false
	}
	if sessions != nil {
		active, err := sessions(ctx, sessionID)
		if err != nil {
			log.Printf("auth: session lookup failed: %v", err)
			return "", "", false
		}
		if !active {
			return "", "", false
		}
	}
	return sessionID, userID, true
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
