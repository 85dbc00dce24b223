// Package common contains shared constants, sentinel errors and error kinds
// used across gophauth components.
package common

// AuthorizationHeaderName is the gRPC metadata key that carries the bearer
// token on calls to protected methods.
const AuthorizationHeaderName = "x-authorization"

// RequestIDHeaderName is the gRPC metadata key used to correlate a call with
// server log lines.
const RequestIDHeaderName = "x-request-id"
