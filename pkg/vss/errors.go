package vss

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a threshold of zero or a threshold above the
	// share amount.
	ErrInvalidConfig = errors.New("vss: invalid configuration")

	// ErrShareCount indicates a recover call with a share count different
	// from the threshold.
	ErrShareCount = errors.New("vss: share count mismatch")

	// ErrDuplicateIndex indicates two shares with the same index, which makes
	// Lagrange interpolation undefined.
	ErrDuplicateIndex = errors.New("vss: duplicate share index")

	// ErrCommitmentLength indicates a commitment vector whose length differs
	// from the threshold.
	ErrCommitmentLength = errors.New("vss: commitment length mismatch")

	// ErrRandomSource indicates the random source failed while sampling.
	ErrRandomSource = errors.New("vss: random source failure")

	// ErrIndexOutOfRange indicates a share index outside 1..ShareAmount.
	ErrIndexOutOfRange = errors.New("vss: share index out of range")

	// ErrInvalidShare indicates a malformed share or interpolation input.
	ErrInvalidShare = errors.New("vss: invalid share")

	// ErrNilGroup indicates a scheme constructed without a group.
	ErrNilGroup = errors.New("vss: nil group")

	// ErrUnknownGroup indicates a group name with no registered backend.
	ErrUnknownGroup = errors.New("vss: unknown group")

	// ErrGroupMismatch indicates data produced under a different group.
	ErrGroupMismatch = errors.New("vss: group mismatch")

	// ErrEncoding indicates bytes that do not decode to a scalar or element.
	ErrEncoding = errors.New("vss: encoding error")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("vss.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error for op. The format may wrap a sentinel with %w.
func Errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
