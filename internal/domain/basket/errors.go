package basket

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrCapacityExceeded matches every CapacityExceededError via errors.Is.
var ErrCapacityExceeded = errors.New("basket capacity exceeded")

// Limit names the capacity constraint an addition would violate.
type Limit string

const (
	LimitItems  Limit = "items"
	LimitWeight Limit = "weight"
)

// CapacityExceededError indicates an addition was rejected because it would
// push the basket past Max. The basket is left unchanged.
type CapacityExceededError struct {
	Limit     Limit
	Max       int
	Current   int
	Requested int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("exceeded maximum %s in the basket (%d units): have %d, adding %d",
		e.Limit, e.Max, e.Current, e.Requested)
}

// Is makes errors.Is(err, ErrCapacityExceeded) hold.
func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
