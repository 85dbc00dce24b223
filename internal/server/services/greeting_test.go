package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	s := NewGreetingService()

	assert.Equal(t, "Ping Pong!", s.Greet(context.Background(), "Ping"))
	assert.Equal(t, " Pong!", s.Greet(context.Background(), ""))
}
