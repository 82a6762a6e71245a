package interceptors

import (
	"context"
	"errors"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	auditdomain "likelemba/internal/audit/domain"
)

// mockAuditRepoForInterceptor implements auditrepo.Repository for interceptor tests.
type mockAuditRepoForInterceptor struct {
	entries []*auditdomain.AuditLog
	err     error
}

func (m *mockAuditRepoForInterceptor) Create(ctx context.Context, a *auditdomain.AuditLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, a)
	return nil
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func TestAuditUnary_SkipMethod(t *testing.T) {
	repo := &mockAuditRepoForInterceptor{}
	interceptor := AuditUnary(repo, map[string]bool{"/likelemba.health.v1.HealthService/HealthCheck": true})

	ctx := WithIdentity(context.Background(), "user-1", "session-1")
	resp, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/likelemba.health.v1.HealthService/HealthCheck",
	}, okHandler)
	if err != nil || resp != "success" {
		t.Fatalf("interceptor = %v, %v", resp, err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(repo.entries))
	}
}

func TestAuditUnary_AuthenticatedRequest(t *testing.T) {
	repo := &mockAuditRepoForInterceptor{}
	interceptor := AuditUnary(repo, nil)

	ctx := WithIdentity(context.Background(), "user-1", "session-1")
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("x-real-ip", "10.0.0.7"))
	if _, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/likelemba.tontine.v1.TontineService/ListGroups",
	}, okHandler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.UserID != "user-1" || e.IP != "10.0.0.7" || e.ID == "" {
		t.Errorf("entry = %+v", e)
	}
	if e.Action != "list" || e.Resource != "tontine" {
		t.Errorf("action/resource = %q/%q, want list/tontine", e.Action, e.Resource)
	}
	if e.Metadata != "" {
		t.Errorf("metadata = %q, want empty on success", e.Metadata)
	}
}

func TestAuditUnary_UnauthenticatedRequest(t *testing.T) {
	repo := &mockAuditRepoForInterceptor{}
	interceptor := AuditUnary(repo, nil)
	if _, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/likelemba.auth.v1.AuthService/SendCode",
	}, okHandler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(repo.entries))
	}
}

func TestAuditUnary_RepositoryError(t *testing.T) {
	repo := &mockAuditRepoForInterceptor{err: errors.New("insert failed")}
	interceptor := AuditUnary(repo, nil)
	ctx := WithIdentity(context.Background(), "user-1", "session-1")
	resp, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/likelemba.tontine.v1.TontineService/GetGroup",
	}, okHandler)
	if err != nil || resp != "success" {
		t.Errorf("audit failure must not fail the RPC: %v, %v", resp, err)
	}
}

func TestAuditUnary_HandlerError(t *testing.T) {
	repo := &mockAuditRepoForInterceptor{}
	interceptor := AuditUnary(repo, nil)
	ctx := WithIdentity(context.Background(), "user-1", "session-1")
	wantErr := status.Error(codes.NotFound, "group not found")
	_, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/likelemba.tontine.v1.TontineService/GetGroup",
	}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(repo.entries))
	}
	if got := repo.entries[0].Metadata; got != `{"status":"NotFound"}` {
		t.Errorf("metadata = %q", got)
	}
}

func TestAuditUnary_NilRepo(t *testing.T) {
	interceptor := AuditUnary(nil, nil)
	ctx := WithIdentity(context.Background(), "user-1", "session-1")
	if _, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{FullMethod: "/a.B/C"}, okHandler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name string
		md   metadata.MD
		peer net.Addr
		want string
	}{
		{"x-forwarded-for", metadata.Pairs("x-forwarded-for", "192.168.1.1"), nil, "192.168.1.1"},
		{"x-forwarded-for list", metadata.Pairs("x-forwarded-for", "192.168.1.1, 10.0.0.1"), nil, "192.168.1.1"},
		{"x-real-ip", metadata.Pairs("x-real-ip", "10.0.0.2"), nil, "10.0.0.2"},
		{"forwarded wins", metadata.Pairs("x-forwarded-for", "1.1.1.1", "x-real-ip", "2.2.2.2"), nil, "1.1.1.1"},
		{"whitespace", metadata.Pairs("x-forwarded-for", "  3.3.3.3  "), nil, "3.3.3.3"},
		{"peer", nil, &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 5555}, "127.0.0.1"},
		{"unknown", nil, nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			if tt.peer != nil {
				ctx = peer.NewContext(ctx, &peer.Peer{Addr: tt.peer})
			}
			if got := ClientIP(ctx); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
