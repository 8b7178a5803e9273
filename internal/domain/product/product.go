package product

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// MaxUnit bounds price and weight so that sums over a full basket of 30
// units still fit in an int.
const MaxUnit = math.MaxInt / 30

// ID identifies a product for the lifetime of its Registry. The zero ID is
// never issued.
type ID int64

// Product is an immutable catalog item. Values are only produced by
// Registry.New; all fields are read through accessors.
type Product struct {
	id     ID
	name   string
	price  int
	weight int
}

// ID returns the unique identifier assigned at construction.
func (p Product) ID() ID { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Price returns the unit price.
func (p Product) Price() int { return p.price }

// Weight returns the unit weight.
func (p Product) Weight() int { return p.weight }

// IsZero reports whether p was not produced by a Registry.
func (p Product) IsZero() bool { return p.id == 0 }

func (p Product) String() string {
	return fmt.Sprintf("%s#%d", p.name, p.id)
}

// Registry issues product identifiers as a single increasing sequence
// starting at 1. It is safe for concurrent use.
type Registry struct {
	last atomic.Int64
}

// NewRegistry creates a Registry whose first issued ID is 1.
func NewRegistry() *Registry {
	return &Registry{}
}

// New validates price and weight and constructs a Product. Both must lie in
// [1, MaxUnit]; price is checked before weight. An ID is drawn only once
// validation has passed, so failed constructions leave the sequence untouched.
func (r *Registry) New(name string, price, weight int) (Product, error) {
	if err := checkUnit("price", price); err != nil {
		return Product{}, err
	}
	if err := checkUnit("weight", weight); err != nil {
		return Product{}, err
	}

	return Product{
		id:     ID(r.last.Add(1)),
		name:   name,
		price:  price,
		weight: weight,
	}, nil
}

func checkUnit(arg string, v int) error {
	switch {
	case v < 1:
		return &InvalidArgumentError{
			Arg:  arg,
			Kind: KindValue,
			Got:  strconv.Itoa(v),
			Msg:  "product " + arg + " must be at least 1 unit",
		}
	case v > MaxUnit:
		return &InvalidArgumentError{
			Arg:  arg,
			Kind: KindValue,
			Got:  strconv.Itoa(v),
			Msg:  fmt.Sprintf("product %s must be at most %d units", arg, MaxUnit),
		}
	default:
		return nil
	}
}

// Last returns the most recently issued ID, or 0 if none was issued.
func (r *Registry) Last() ID {
	return ID(r.last.Load())
}
