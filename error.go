package libcmd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is the single error kind reported by [Command.Digest]. Every [*Error] matches
// it with [errors.Is].
var ErrInvalidArgument = errors.New("invalid argument")

// NewError creates a new error with the given error code, the offending argument and an optional
// underlying error.
func NewError(code ErrorCode, arg string, err error) error {
	return &Error{code: code, arg: arg, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	ErrEmptyArgs ErrorCode = iota + 1
	ErrUnknownArgument
	ErrBadInt
	ErrBadFloat
	ErrBadFlag
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrEmptyArgs:
		return "empty argument sequence"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrBadInt:
		return "bad int"
	case ErrBadFloat:
		return "bad float"
	case ErrBadFlag:
		return "bad flag"
	default:
		return "unknown error"
	}
}

// Error represents an invalid argument with an error code and an underlying error.
type Error struct {
	code        ErrorCode
	arg         string
	err         error
	suggestions []string
}

// Code returns the error code.
func (e *Error) Code() ErrorCode { return e.code }

// Arg returns the offending argument, if any.
func (e *Error) Arg() string { return e.arg }

// Suggestions returns known names similar to an unknown argument.
func (e *Error) Suggestions() []string { return e.suggestions }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.code {
	case ErrEmptyArgs:
		msg = "empty argument sequence"
	case ErrUnknownArgument:
		msg = fmt.Sprintf("unknown argument %s", e.arg)
		if len(e.suggestions) > 0 {
			msg += ". Did you mean one of these?\n\t" + strings.Join(e.suggestions, "\n\t")
		}
	case ErrBadInt:
		msg = fmt.Sprintf("expected type int, got %q", e.arg)
	case ErrBadFloat:
		msg = fmt.Sprintf("expected type float, got %q", e.arg)
	default:
		msg = convertErrorCode(e.code)
		if e.err != nil {
			msg = e.err.Error()
		}
	}
	return ErrInvalidArgument.Error() + ": " + msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool { return target == ErrInvalidArgument }
