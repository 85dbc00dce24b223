// Package client contains the gRPC client for the gophauth server.
//
// GRPCClient manages a connection, keeps the access token returned by
// Register and Login, attaches it to outgoing calls through a unary
// interceptor, and maps gRPC status codes to sentinel errors that callers
// can match with errors.Is: ErrUnauthenticated, ErrAlreadyExists,
// ErrInvalidArgument, ErrUnavailable.
package client
