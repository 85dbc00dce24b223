package grpc

import (
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const msgInternal = "internal error"

// statusFromError converts a service error into the status sent to the
// client. Only the public message of a *common.Error crosses the wire.
func statusFromError(err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, msgInternal)
	}
	return status.Error(codeForKind(appErr.Kind), appErr.Message)
}

func codeForKind(k common.Kind) codes.Code {
	switch k {
	case common.KindUnauthenticated:
		return codes.Unauthenticated
	case common.KindAlreadyExists:
		return codes.AlreadyExists
	case common.KindInvalidArgument:
		return codes.InvalidArgument
	case common.KindInternal:
		return codes.Internal
	default:
		return codes.Internal
	}
}
