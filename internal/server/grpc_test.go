package server

import (
	"context"
	"testing"

	"google.golang.org/grpc"

	authv1 "likelemba/api/generated/auth/v1"
	devv1 "likelemba/api/generated/dev/v1"
	tontinev1 "likelemba/api/generated/tontine/v1"
)

// mockServiceRegistrar implements grpc.ServiceRegistrar for testing.
type mockServiceRegistrar struct {
	services []string
}

func (m *mockServiceRegistrar) RegisterService(desc *grpc.ServiceDesc, impl interface{}) {
	m.services = append(m.services, desc.ServiceName)
}

func (m *mockServiceRegistrar) has(name string) bool {
	for _, s := range m.services {
		if s == name {
			return true
		}
	}
	return false
}

type mockDevService struct {
	devv1.UnimplementedDevServiceServer
}

func (m *mockDevService) GetOTP(ctx context.Context, req *devv1.GetOTPRequest) (*devv1.GetOTPResponse, error) {
	return &devv1.GetOTPResponse{Otp: "1234"}, nil
}

func TestRegisterServices_DevServiceNotRegisteredWhenNil(t *testing.T) {
	reg := &mockServiceRegistrar{}
	RegisterServices(reg, Deps{})

	if len(reg.services) != 3 {
		t.Fatalf("registered %v, want 3 services", reg.services)
	}
	for _, name := range []string{
		"likelemba.auth.v1.AuthService",
		"likelemba.tontine.v1.TontineService",
		"likelemba.health.v1.HealthService",
	} {
		if !reg.has(name) {
			t.Errorf("%s not registered", name)
		}
	}
	if reg.has("likelemba.dev.v1.DevService") {
		t.Error("DevService registered without a handler")
	}
}

func TestRegisterServices_DevServiceRegisteredWhenProvided(t *testing.T) {
	reg := &mockServiceRegistrar{}
	RegisterServices(reg, Deps{DevOTPHandler: &mockDevService{}})

	if len(reg.services) != 4 || !reg.has("likelemba.dev.v1.DevService") {
		t.Errorf("registered %v, want DevService included", reg.services)
	}
}

func TestPublicMethods(t *testing.T) {
	public := PublicMethods()
	for _, m := range []string{
		authv1.AuthService_SendCode_FullMethodName,
		authv1.AuthService_VerifyCode_FullMethodName,
		authv1.AuthService_GetCurrentUser_FullMethodName,
		authv1.AuthService_Logout_FullMethodName,
	} {
		if !public[m] {
			t.Errorf("%s should be public", m)
		}
	}
	if public[tontinev1.TontineService_ListGroups_FullMethodName] {
		t.Error("tontine methods must require a token")
	}
}

func TestUnauditedMethods(t *testing.T) {
	skip := UnauditedMethods()
	if skip[authv1.AuthService_VerifyCode_FullMethodName] {
		t.Error("VerifyCode must be audited")
	}
	if !skip[devv1.DevService_GetOTP_FullMethodName] {
		t.Error("GetOTP should be skipped")
	}
}
