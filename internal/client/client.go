// Package client talks to the likelemba gRPC server. Client implements the login flow's
// CodeSender, CodeVerifier and SessionStore and keeps the signed-in session in a local cache.
package client

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	authv1 "likelemba/api/generated/auth/v1"
	devv1 "likelemba/api/generated/dev/v1"
	tontinev1 "likelemba/api/generated/tontine/v1"
	"likelemba/internal/authflow"
)

// Client is a gRPC client for the auth, tontine and dev services. Safe for concurrent use.
type Client struct {
	conn    *grpc.ClientConn
	auth    authv1.AuthServiceClient
	tontine tontinev1.TontineServiceClient
	dev     devv1.DevServiceClient
	cache   SessionCache
	nowF    func() time.Time

	mu      sync.Mutex
	session *Session
	loaded  bool
}

var (
	_ authflow.CodeSender   = (*Client)(nil)
	_ authflow.CodeVerifier = (*Client)(nil)
	_ authflow.SessionStore = (*Client)(nil)
)

// Dial connects to addr without TLS. cache may be nil, in which case the session lives
// only as long as the Client. Extra dial options are appended (tests pass a bufconn dialer).
func Dial(addr string, cache SessionCache, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{cache: cache, nowF: time.Now}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.bearerInterceptor),
	}, opts...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.auth = authv1.NewAuthServiceClient(conn)
	c.tontine = tontinev1.NewTontineServiceClient(conn)
	c.dev = devv1.NewDevServiceClient(conn)
	return c, nil
}

// Close closes the connection. The cache is owned by the caller.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) bearerInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s := c.current(ctx); s != nil {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.AccessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// current returns the cached session, loading it on first use. Expired sessions are dropped.
func (c *Client) current(ctx context.Context) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded && c.cache != nil {
		s, err := c.cache.Load(ctx)
		if err != nil {
			log.Printf("client: load session: %v", err)
		} else {
			c.session = s
			c.loaded = true
		}
	}
	if c.session != nil && !c.session.ExpiresAt.After(c.nowF()) {
		c.session = nil
		c.clearCacheLocked(ctx)
	}
	return c.session
}

func (c *Client) setSession(ctx context.Context, s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
	c.loaded = true
	if c.cache == nil {
		return
	}
	if err := c.cache.Save(ctx, s); err != nil {
		log.Printf("client: save session: %v", err)
	}
}

func (c *Client) dropSession(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
	c.loaded = true
	c.clearCacheLocked(ctx)
}

func (c *Client) clearCacheLocked(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Clear(ctx); err != nil {
		log.Printf("client: clear session: %v", err)
	}
}

// SendCode asks the server to deliver a code to phone.
func (c *Client) SendCode(ctx context.Context, phone string) (authflow.SendResult, error) {
	resp, err := c.auth.SendCode(ctx, &authv1.SendCodeRequest{Phone: phone})
	if err != nil {
		return authflow.SendResult{}, mapError(err)
	}
	return authflow.SendResult{Success: resp.Sent}, nil
}

// VerifyCode submits code for phone. On success the returned access token is cached.
func (c *Client) VerifyCode(ctx context.Context, phone, code string) (authflow.VerifyResult, error) {
	resp, err := c.auth.VerifyCode(ctx, &authv1.VerifyCodeRequest{Phone: phone, Code: code})
	if err != nil {
		return authflow.VerifyResult{}, mapError(err)
	}
	if !resp.Success || resp.GetUser() == nil || resp.AccessToken == "" {
		return authflow.VerifyResult{}, nil
	}
	u := userFromProto(resp.GetUser())
	c.setSession(ctx, &Session{AccessToken: resp.AccessToken, ExpiresAt: resp.GetExpiresAt().AsTime(), User: *u})
	return authflow.VerifyResult{Success: true, User: u}, nil
}

// CurrentUser returns the user of the cached session as the server sees it, or (nil, nil)
// when signed out. A session the server no longer accepts is dropped from the cache.
func (c *Client) CurrentUser(ctx context.Context) (*authflow.User, error) {
	if c.current(ctx) == nil {
		return nil, nil
	}
	resp, err := c.auth.GetCurrentUser(ctx, &authv1.GetCurrentUserRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	if resp.GetUser() == nil {
		c.dropSession(ctx)
		return nil, nil
	}
	return userFromProto(resp.GetUser()), nil
}

// Logout revokes the server session and clears the cache. The local session is dropped
// even when the server call fails. Logging out while signed out does nothing.
func (c *Client) Logout(ctx context.Context) error {
	if c.current(ctx) == nil {
		return nil
	}
	_, err := c.auth.Logout(ctx, &authv1.LogoutRequest{})
	c.dropSession(ctx)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// ListGroups returns the signed-in member's groups.
func (c *Client) ListGroups(ctx context.Context) ([]*tontinev1.Group, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.ListGroups(ctx, &tontinev1.ListGroupsRequest{})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.Groups, nil
}

// GetGroup returns one group of the signed-in member.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*tontinev1.Group, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.GetGroup(ctx, &tontinev1.GetGroupRequest{GroupId: groupID})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.Group, nil
}

// ListPayments returns the member's payments, limited to groupID when it is not empty.
func (c *Client) ListPayments(ctx context.Context, groupID string) ([]*tontinev1.Payment, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.ListPayments(ctx, &tontinev1.ListPaymentsRequest{GroupId: groupID})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.Payments, nil
}

// Dashboard returns the member's summary.
func (c *Client) Dashboard(ctx context.Context) (*tontinev1.GetDashboardResponse, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.GetDashboard(ctx, &tontinev1.GetDashboardRequest{})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp, nil
}

// NewGroup is what CreateGroup sends. Empty Currency and Frequency take the server defaults.
type NewGroup struct {
	Name               string
	Description        string
	ContributionAmount int64
	Currency           string
	Frequency          string
}

// CreateGroup starts a group with the signed-in member in the first payout position.
func (c *Client) CreateGroup(ctx context.Context, g NewGroup) (*tontinev1.Group, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.CreateGroup(ctx, &tontinev1.CreateGroupRequest{
		Name:               g.Name,
		Description:        g.Description,
		ContributionAmount: g.ContributionAmount,
		Currency:           g.Currency,
		Frequency:          g.Frequency,
	})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.GetGroup(), nil
}

// AddMember seats phone at the end of groupID's payout order. name is used only when the
// number has no account yet.
func (c *Client) AddMember(ctx context.Context, groupID, phone, name string) (*tontinev1.AddMemberResponse, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.AddMember(ctx, &tontinev1.AddMemberRequest{GroupId: groupID, Phone: phone, Name: name})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp, nil
}

// ListMembers returns the roster of groupID in payout order.
func (c *Client) ListMembers(ctx context.Context, groupID string) ([]*tontinev1.Member, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.ListMembers(ctx, &tontinev1.ListMembersRequest{GroupId: groupID})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.GetMembers(), nil
}

// RecordPayment pays the member's contribution to round (0 for the current round).
func (c *Client) RecordPayment(ctx context.Context, groupID string, round int, method string) (*tontinev1.Payment, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.RecordPayment(ctx, &tontinev1.RecordPaymentRequest{GroupId: groupID, Round: int32(round), Method: method})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp.GetPayment(), nil
}

// RoundStatus returns who has paid in round (0 for the current round).
func (c *Client) RoundStatus(ctx context.Context, groupID string, round int) (*tontinev1.GetRoundStatusResponse, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	resp, err := c.tontine.GetRoundStatus(ctx, &tontinev1.GetRoundStatusRequest{GroupId: groupID, Round: int32(round)})
	if err != nil {
		return nil, c.memberErr(ctx, err)
	}
	return resp, nil
}

// DevOTP reads the last code issued for phone from a server running in dev OTP mode.
func (c *Client) DevOTP(ctx context.Context, phone string) (string, error) {
	resp, err := c.dev.GetOTP(ctx, &devv1.GetOTPRequest{Phone: phone})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetOtp(), nil
}

func (c *Client) requireSession(ctx context.Context) error {
	if c.current(ctx) == nil {
		return ErrNotSignedIn
	}
	return nil
}

func (c *Client) memberErr(ctx context.Context, err error) error {
	err = mapError(err)
	if errors.Is(err, ErrNotSignedIn) {
		c.dropSession(ctx)
	}
	return err
}

func userFromProto(u *authv1.User) *authflow.User {
	return &authflow.User{ID: u.GetId(), Name: u.GetName(), Phone: u.GetPhone(), CreatedAt: u.GetCreatedAt().AsTime()}
}
