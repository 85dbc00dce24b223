// Package grpc exposes the Auth and Greeting services over gRPC.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account logic behind the Auth service.
type UserService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, in services.RegisterInput) (string, error)
}

type GreetingService interface {
	Greet(ctx context.Context, message string) string
}

// TokenVerifier parses bearer tokens for the access-token gate.
type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	pb.UnimplementedGreetingServer

	address  string
	users    UserService
	greeting GreetingService
	tokens   TokenVerifier
	logger   logging.Logger

	// protected holds the full method names that require a valid token.
	protected map[string]struct{}
}

func NewGRPCServer(a string, l logging.Logger, us UserService, gs GreetingService, tv TokenVerifier) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		greeting:  gs,
		tokens:    tv,
		protected: defaultProtectedMethods(),
	}
}

func defaultProtectedMethods() map[string]struct{} {
	return map[string]struct{}{
		pb.Greeting_Greet_FullMethodName: {},
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := s.newServer()

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(pb.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(pb.Greeting_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	<-stopped
	return nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterAuthServer(srv, s)
	pb.RegisterGreetingServer(srv, s)

	return srv
}
