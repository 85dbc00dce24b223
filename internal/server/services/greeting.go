package services

import "context"

const greetingSuffix = "Pong!"

// GreetingService is the token-gated sample operation.
type GreetingService struct{}

func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

// Greet echoes message followed by the fixed suffix.
func (s *GreetingService) Greet(ctx context.Context, message string) string {
	return message + " " + greetingSuffix
}
