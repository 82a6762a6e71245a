package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	devv1 "likelemba/api/generated/dev/v1"
	"likelemba/internal/devotp"
)

func TestGetOTP_Success(t *testing.T) {
	store := devotp.NewMemoryStore()
	store.Put(context.Background(), "+243123456789", "4821", time.Now().UTC().Add(time.Minute))
	srv := NewServer(store)

	resp, err := srv.GetOTP(context.Background(), &devv1.GetOTPRequest{Phone: " +243 123 456 789 "})
	if err != nil {
		t.Fatalf("GetOTP: %v", err)
	}
	if resp.Otp != "4821" {
		t.Errorf("otp = %q, want %q", resp.Otp, "4821")
	}
	if resp.Note != devOTPNote {
		t.Errorf("note = %q, want %q", resp.Note, devOTPNote)
	}
}

func TestGetOTP_Errors(t *testing.T) {
	tests := []struct {
		name  string
		store devotp.Store
		phone string
		code  codes.Code
		msg   string
	}{
		{"empty phone", devotp.NewMemoryStore(), "  ", codes.InvalidArgument, "phone is required"},
		{"not found", devotp.NewMemoryStore(), "+243123456789", codes.NotFound, "OTP not found or expired"},
		{"nil store", nil, "+243123456789", codes.NotFound, "OTP not found or expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(tt.store)
			_, err := srv.GetOTP(context.Background(), &devv1.GetOTPRequest{Phone: tt.phone})
			st, ok := status.FromError(err)
			if !ok {
				t.Fatalf("error is not a gRPC status: %v", err)
			}
			if st.Code() != tt.code {
				t.Errorf("code = %v, want %v", st.Code(), tt.code)
			}
			if st.Message() != tt.msg {
				t.Errorf("message = %q, want %q", st.Message(), tt.msg)
			}
		})
	}
}
