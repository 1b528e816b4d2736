package freeze

import (
	"errors"
	"fmt"

	"lazy-freeze/guard"
)

var (
	// ErrFrozen is the sentinel matched by errors.Is for every mutation
	// denied after the hash has been taken.
	ErrFrozen = errors.New("illegal mutation after freeze")

	ErrNilTarget = errors.New("cannot wrap a nil target")

	// ErrNotHashable rejects wrap targets without a hash implementation.
	// Hash must be consistent with the type's equality for freezing to
	// protect anything meaningful.
	ErrNotHashable = errors.New("wrapped type must provide Hash() uint64, declared directly or promoted from an embedded type")

	ErrNoProtectedFields = errors.New("WithProtected requires at least one field name")

	ErrNoSuchField    = errors.New("no such field")
	ErrOpNotSupported = errors.New("operation not supported for this shape")
	ErrBadValue       = errors.New("value type mismatch")
)

// MutationError reports a mutating operation denied because the wrapped
// value's hash has already been taken. It matches errors.Is(err, ErrFrozen).
type MutationError struct {
	// Type is the name of the wrapped concrete type.
	Type string
	// Op is the intercepted operation kind.
	Op guard.OpEnum
	// Detail names the field or item key the operation targeted, empty
	// when the operation is not attributable to one.
	Detail string
	// Origin is the capture taken at the moment of freezing, nil unless
	// the wrapper was configured with WithDebug.
	Origin *Origin
}

func (e *MutationError) Error() string {
	msg := fmt.Sprintf("cannot %s %s after its hash has been taken", e.Op.Phrase(e.Detail), e.Type)
	if e.Origin != nil {
		msg += "\nhash was taken at:\n" + e.Origin.Stack
	}

	return msg
}

func (e *MutationError) Unwrap() error { return ErrFrozen }
