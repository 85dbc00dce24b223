package grpc

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey    ctxKey = "userID"
	requestIDKey ctxKey = "requestID"
)

const (
	msgNoAccessToken = "no access token specified"
	msgInvalidToken  = "invalid token"
)

// UserIDFromContext returns the id of the caller authenticated by the
// access-token gate.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RequestIDFromContext returns the id assigned by the logging interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// firstMetadataValue reports whether key is present, even with an empty
// value.
func firstMetadataValue(ctx context.Context, key string) (string, bool) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(key)
		if len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if _, ok := s.protected[info.FullMethod]; ok {

		accessToken, ok := firstMetadataValue(ctx, common.AuthorizationHeaderName)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, msgNoAccessToken)
		}

		claims, err := s.tokens.Parse(accessToken)
		if err != nil {
			s.logger.Debug(ctx, "Token rejected", "method", info.FullMethod, "error", err.Error())
			return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
		}

		userID, err := claims.UserID()
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
		}

		ctx = context.WithValue(ctx, userIDKey, userID)

	}

	return handler(ctx, req)
}

// loggingInterceptor tags the call with a request id, echoes it in the
// response header and logs the outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	requestID, _ := firstMetadataValue(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration_ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "Request failed", args...)
	} else {
		s.logger.Info(ctx, "Request handled", args...)
	}

	return resp, err
}
