package status

import "errors"

type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// CodeOf returns the code carried by err, if any. Wrapped errors are unwrapped.
func CodeOf(err error) (Code, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Code, true
	}

	return OK, false
}

var (
	ErrInvalidFormat     = NewError(InvalidFormat, "invalid format")
	ErrOddLength         = NewError(InvalidFormat, "odd length hex string")
	ErrInvalidDigit      = NewError(InvalidFormat, "invalid hex digit")
	ErrMissingSeparator  = NewError(MissingSeparator, "missing key-value separator")
	ErrCapacityExceeded  = NewError(CapacityExceeded, "output capacity exceeded")
	ErrAllocationFailure = NewError(AllocationFailure, "growth limit exceeded")
	ErrInvalidArgument   = NewError(InvalidArgument, "invalid argument")
	ErrOverflow          = NewError(Overflow, "integer overflow")
)
