package common

import "fmt"

// Kind is the coarse class of a failure as seen by a remote caller.
// Every error returned by the service layer carries exactly one Kind.
type Kind uint8

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindAlreadyExists
	KindInvalidArgument
)

// Kinds lists every defined Kind.
var Kinds = []Kind{KindInternal, KindUnauthenticated, KindAlreadyExists, KindInvalidArgument}

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidArgument:
		return "invalid_argument"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error pairs a Kind and a caller-safe Message with the underlying cause.
// Message is sent to clients as is; Err never leaves the process.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError builds an *Error. err may be nil.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
