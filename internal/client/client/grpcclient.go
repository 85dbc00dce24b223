package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	auth        pb.AuthClient
	greeting    pb.GreetingClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current token, if any, to every call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.AccessToken(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for the server at endpointURL. Extra dial
// options are appended to the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.auth = pb.NewAuthClient(conn)
	s.greeting = pb.NewGreetingClient(conn)
	return nil
}

// AccessToken returns the token obtained by the last Register or Login.
func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken installs a token obtained elsewhere, e.g. from the
// environment.
func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {

	req := &pb.RegisterRequest{Firstname: firstName, Lastname: lastName, Email: email, Password: password}

	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccessToken(), nil

}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccessToken(), nil

}

func (s *GRPCClient) Greet(ctx context.Context, message string) (string, error) {

	resp, err := s.greeting.Greet(ctx, &pb.GreetRequest{Message: message})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetMessage(), nil

}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError keeps the server's message and wraps the matching sentinel.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
