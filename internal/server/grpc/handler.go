package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.Token, error) {

	token, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())

	if err != nil {
		s.logger.Warn(ctx, "Login failed", "email", req.GetEmail(), "error", err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Logged in", "email", req.GetEmail())
	return &pb.Token{AccessToken: token}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Token, error) {

	s.logger.Info(ctx, "Registration request", "email", req.GetEmail())

	token, err := s.users.Register(ctx, services.RegisterInput{
		FirstName: req.GetFirstname(),
		LastName:  req.GetLastname(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
	})

	if err != nil {
		s.logger.Error(ctx, "Registration failed", "email", req.GetEmail(), "error", err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "email", req.GetEmail())
	return &pb.Token{AccessToken: token}, nil

}

// Greet is reachable only through accessTokenInterceptor.
func (s *GRPCServer) Greet(ctx context.Context, req *pb.GreetRequest) (*pb.GreetResponse, error) {

	return &pb.GreetResponse{Message: s.greeting.Greet(ctx, req.GetMessage())}, nil

}
