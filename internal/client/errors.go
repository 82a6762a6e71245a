package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotSignedIn is returned by calls that need a session when none is cached or the server rejected it.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrNotFound is returned when the requested group does not exist for the member.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the server cannot be reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrRejected is returned when the server refuses the request, e.g. a bad number or a rate limit.
	ErrRejected = errors.New("request rejected")
	// ErrConflict is returned when the change was already made: the member is seated or the round is paid.
	ErrConflict = errors.New("already done")
)

func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrNotSignedIn
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.ResourceExhausted, codes.PermissionDenied, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	default:
		return err
	}
}
