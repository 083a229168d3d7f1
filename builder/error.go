package builder

import (
	"errors"
	"fmt"
)

// ErrUnavailable is matched by every [*UnavailableError].
var ErrUnavailable = errors.New("not available on a builder")

// An UnavailableError reports a call to an operation a [*Builder] does not offer.
type UnavailableError struct {
	Op string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("builder: %s is %s", e.Op, ErrUnavailable)
}

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func unavailable(op string) error { return &UnavailableError{Op: op} }
