package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

const testSecret = "super-secret"

// helper to build server
func newTestServer(us UserService) (*GRPCServer, *auth.Codec) {
	codec := auth.NewCodec([]byte(testSecret), time.Hour)
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, us, services.NewGreetingService(), codec), codec
}

func greetInfo() *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: pb.Greeting_Greet_FullMethodName}
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AuthorizationHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func mustNotCall(t *testing.T) grpc.UnaryHandler {
	return func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}
}

func TestInterceptor_Unprotected_AllowsWithoutToken(t *testing.T) {
	s, _ := newTestServer(nil)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Auth_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req any) (any, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_Greet_MissingToken(t *testing.T) {
	s, _ := newTestServer(nil)

	for name, ctx := range map[string]context.Context{
		"no metadata": context.Background(),
		"other key":   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "x")),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.accessTokenInterceptor(ctx, nil, greetInfo(), mustNotCall(t))
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, msgNoAccessToken, status.Convert(err).Message())
		})
	}
}

func TestInterceptor_Greet_InvalidToken(t *testing.T) {
	s, _ := newTestServer(nil)

	foreign, err := auth.NewCodec([]byte("other-secret"), time.Hour).Issue(auth.NewClaims(7, time.Now(), time.Hour))
	require.NoError(t, err)

	expired, err := auth.NewCodec([]byte(testSecret), time.Hour).Issue(auth.NewClaims(7, time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.NewClaims(7, time.Now(), time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty value":    "",
		"garbage":        "not-a-valid-jwt",
		"foreign secret": foreign,
		"expired":        expired,
		"alg none":       unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.accessTokenInterceptor(withToken(token), nil, greetInfo(), mustNotCall(t))
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, msgInvalidToken, status.Convert(err).Message())
		})
	}
}

func TestInterceptor_Greet_ValidToken_SetsUserID(t *testing.T) {
	s, codec := newTestServer(nil)

	token, err := codec.Issue(codec.ClaimsFor(42))
	require.NoError(t, err)

	var (
		gotID int64
		gotOK bool
	)
	h := func(ctx context.Context, req any) (any, error) {
		gotID, gotOK = UserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(withToken(token), nil, greetInfo(), h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}

func TestUserIDFromContext_Absent(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestLoggingInterceptor_RequestID(t *testing.T) {
	s, _ := newTestServer(nil)
	info := &grpc.UnaryServerInfo{FullMethod: pb.Auth_Login_FullMethodName}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = RequestIDFromContext(ctx)
		return nil, status.Error(codes.Unauthenticated, "nope")
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.RequestIDHeaderName, "req-1"))
	_, err := s.loggingInterceptor(ctx, nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "req-1", got)

	_, _ = s.loggingInterceptor(context.Background(), nil, info, h)
	assert.Len(t, got, 36)
}
