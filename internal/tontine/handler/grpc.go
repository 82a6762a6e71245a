// Package handler implements the gRPC TontineService. Every method requires a signed-in member.
package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	tontinev1 "likelemba/api/generated/tontine/v1"
	"likelemba/internal/server/interceptors"
	"likelemba/internal/tontine/domain"
	"likelemba/internal/tontine/service"
)

// Server implements TontineService.
type Server struct {
	tontinev1.UnimplementedTontineServiceServer
	svc *service.Service
}

// NewServer returns a TontineService server. If svc is nil, every RPC returns Unimplemented.
func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListGroups(ctx context.Context, req *tontinev1.ListGroupsRequest) (*tontinev1.ListGroupsResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.svc.ListGroups(ctx, userID)
	if err != nil {
		return nil, tontineErr(err)
	}
	resp := &tontinev1.ListGroupsResponse{Groups: make([]*tontinev1.Group, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, groupToProto(g))
	}
	return resp, nil
}

func (s *Server) GetGroup(ctx context.Context, req *tontinev1.GetGroupRequest) (*tontinev1.GetGroupResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetGroupId() == "" {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	g, err := s.svc.GetGroup(ctx, userID, req.GetGroupId())
	if err != nil {
		return nil, tontineErr(err)
	}
	return &tontinev1.GetGroupResponse{Group: groupToProto(g)}, nil
}

func (s *Server) ListPayments(ctx context.Context, req *tontinev1.ListPaymentsRequest) (*tontinev1.ListPaymentsResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.svc.ListPayments(ctx, userID, req.GetGroupId())
	if err != nil {
		return nil, tontineErr(err)
	}
	resp := &tontinev1.ListPaymentsResponse{Payments: make([]*tontinev1.Payment, 0, len(payments))}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, paymentToProto(p))
	}
	return resp, nil
}

func (s *Server) GetDashboard(ctx context.Context, req *tontinev1.GetDashboardRequest) (*tontinev1.GetDashboardResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.svc.Dashboard(ctx, userID)
	if err != nil {
		return nil, tontineErr(err)
	}
	resp := &tontinev1.GetDashboardResponse{
		ActiveGroups:     int32(d.ActiveGroups),
		TotalContributed: make([]*tontinev1.CurrencyTotal, 0, len(d.TotalContributed)),
		PendingPayments:  int32(d.PendingPayments),
		LatePayments:     int32(d.LatePayments),
	}
	for _, t := range d.TotalContributed {
		resp.TotalContributed = append(resp.TotalContributed, &tontinev1.CurrencyTotal{Currency: t.Currency, Amount: t.Amount})
	}
	if d.NextPayout != nil {
		resp.NextPayout = groupToProto(d.NextPayout)
	}
	return resp, nil
}

func (s *Server) CreateGroup(ctx context.Context, req *tontinev1.CreateGroupRequest) (*tontinev1.CreateGroupResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.svc.CreateGroup(ctx, userID, service.NewGroup{
		Name:               req.GetName(),
		Description:        req.GetDescription(),
		ContributionAmount: req.GetContributionAmount(),
		Currency:           req.GetCurrency(),
		Frequency:          domain.Frequency(req.GetFrequency()),
	})
	if err != nil {
		return nil, tontineErr(err)
	}
	log.Printf("tontine: group %s created by %s", g.ID, userID)
	return &tontinev1.CreateGroupResponse{Group: groupToProto(g)}, nil
}

func (s *Server) AddMember(ctx context.Context, req *tontinev1.AddMemberRequest) (*tontinev1.AddMemberResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetGroupId() == "" || req.GetPhone() == "" {
		return nil, status.Error(codes.InvalidArgument, "group_id and phone are required")
	}
	m, g, err := s.svc.AddMember(ctx, userID, req.GetGroupId(), req.GetPhone(), req.GetName())
	if err != nil {
		return nil, tontineErr(err)
	}
	return &tontinev1.AddMemberResponse{Member: memberToProto(m), Group: groupToProto(g)}, nil
}

func (s *Server) ListMembers(ctx context.Context, req *tontinev1.ListMembersRequest) (*tontinev1.ListMembersResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetGroupId() == "" {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	members, err := s.svc.ListMembers(ctx, userID, req.GetGroupId())
	if err != nil {
		return nil, tontineErr(err)
	}
	resp := &tontinev1.ListMembersResponse{Members: make([]*tontinev1.Member, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, memberToProto(m))
	}
	return resp, nil
}

func (s *Server) RecordPayment(ctx context.Context, req *tontinev1.RecordPaymentRequest) (*tontinev1.RecordPaymentResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetGroupId() == "" {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	p, err := s.svc.RecordPayment(ctx, userID, req.GetGroupId(), int(req.GetRound()), domain.PaymentMethod(req.GetMethod()))
	if err != nil {
		return nil, tontineErr(err)
	}
	return &tontinev1.RecordPaymentResponse{Payment: paymentToProto(p)}, nil
}

func (s *Server) GetRoundStatus(ctx context.Context, req *tontinev1.GetRoundStatusRequest) (*tontinev1.GetRoundStatusResponse, error) {
	userID, err := s.member(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetGroupId() == "" {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	round, entries, err := s.svc.RoundStatus(ctx, userID, req.GetGroupId(), int(req.GetRound()))
	if err != nil {
		return nil, tontineErr(err)
	}
	resp := &tontinev1.GetRoundStatusResponse{Round: int32(round), Entries: make([]*tontinev1.RoundEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &tontinev1.RoundEntry{
			Member: memberToProto(e.Member),
			Status: string(e.Status),
			Method: string(e.Method),
			PaidAt: optionalTime(e.PaidAt),
		})
	}
	return resp, nil
}

// member returns the signed-in user id set by the auth interceptor.
func (s *Server) member(ctx context.Context) (string, error) {
	if s.svc == nil {
		return "", status.Error(codes.Unimplemented, "tontine service not configured")
	}
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "sign in required")
	}
	return userID, nil
}

func tontineErr(err error) error {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidGroup), errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidPaymentMethod), errors.Is(err, service.ErrInvalidRound):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrAlreadyMember), errors.Is(err, service.ErrAlreadyPaid):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrGroupClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	log.Printf("tontine: internal error: %v", err)
	return status.Error(codes.Internal, "internal error")
}

func groupToProto(g *domain.Group) *tontinev1.Group {
	pb := &tontinev1.Group{
		Id:                 g.ID,
		Name:               g.Name,
		Description:        g.Description,
		ContributionAmount: g.ContributionAmount,
		Currency:           g.Currency,
		Frequency:          string(g.Frequency),
		MemberCount:        int32(g.MemberCount),
		CurrentRound:       int32(g.CurrentRound),
		TotalRounds:        int32(g.TotalRounds),
		Status:             string(g.Status),
		CreatedBy:          g.CreatedBy,
		CreatedAt:          timestamppb.New(g.CreatedAt),
	}
	if !g.NextPayoutAt.IsZero() {
		pb.NextPayoutAt = timestamppb.New(g.NextPayoutAt)
	}
	return pb
}

func memberToProto(m *domain.Member) *tontinev1.Member {
	return &tontinev1.Member{
		UserId:      m.UserID,
		Name:        m.Name,
		Phone:       m.Phone,
		Position:    int32(m.Position),
		HasReceived: m.HasReceived,
		JoinedAt:    timestamppb.New(m.JoinedAt),
	}
}

func paymentToProto(p *domain.Payment) *tontinev1.Payment {
	return &tontinev1.Payment{
		Id:        p.ID,
		GroupId:   p.GroupID,
		GroupName: p.GroupName,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Round:     int32(p.Round),
		Status:    string(p.Status),
		DueAt:     timestamppb.New(p.DueAt),
		PaidAt:    optionalTime(p.PaidAt),
		Method:    string(p.Method),
		UserId:    p.UserID,
	}
}

func optionalTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
