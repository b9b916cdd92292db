package list

import (
	"errors"
	"fmt"
)

type Code int

const (
	CodeMissingValuator Code = iota + 1
	CodeInvalidArgument
	CodeInvalidResult
	CodeReentrantMutation
	CodeValuatorFailed
	CodeNoSuchKey
)

func (c Code) String() string {
	switch c {
	case CodeMissingValuator:
		return "missing valuator"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeInvalidResult:
		return "invalid valuator result"
	case CodeReentrantMutation:
		return "reentrant mutation"
	case CodeValuatorFailed:
		return "valuator failed"
	case CodeNoSuchKey:
		return "no such key"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the error type returned by List operations. Two errors match with
// errors.Is when their codes are equal.
type Error struct {
	Code    Code
	Message string
	Err     error
}

var (
	ErrMissingValuator   = &Error{Code: CodeMissingValuator, Message: "a valuator is required"}
	ErrInvalidArgument   = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrInvalidResult     = &Error{Code: CodeInvalidResult, Message: "return value of valuator is not valid (not integer/bool)"}
	ErrReentrantMutation = &Error{Code: CodeReentrantMutation, Message: "modifying valuated list outside of valuator function"}
	ErrValuatorFailed    = &Error{Code: CodeValuatorFailed, Message: "valuator failed"}
	ErrNoSuchKey         = &Error{Code: CodeNoSuchKey, Message: "no such key"}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d]%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d]%s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code Code, format string, a ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// CheckError reports whether err carries the given code.
func CheckError(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
