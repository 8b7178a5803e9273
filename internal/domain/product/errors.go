package product

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind distinguishes the two flavours of InvalidArgumentError.
type Kind string

const (
	// KindValue means the argument had the right type but an out-of-range value.
	KindValue Kind = "value"
	// KindType means the argument had the wrong type. Non-positive basket
	// quantities are reported with this kind as well.
	KindType Kind = "type"
)

// InvalidArgumentError reports an argument rejected by a domain operation.
type InvalidArgumentError struct {
	Arg  string
	Kind Kind
	// Got describes the received value or its type.
	Got string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid %s (%s error): %s, got %s", e.Arg, e.Kind, e.Msg, e.Got)
	}
	return fmt.Sprintf("invalid %s (%s error): got %s", e.Arg, e.Kind, e.Got)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// TypeError builds a KindType InvalidArgumentError.
func TypeError(arg, msg, got string) *InvalidArgumentError {
	return &InvalidArgumentError{Arg: arg, Kind: KindType, Got: got, Msg: msg}
}
