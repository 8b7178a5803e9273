// Package basket implements the shopping basket aggregate: per-product unit
// storage bounded by item count and weight, with derived totals and shipping.
package basket

import (
	"fmt"
	"math"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xenking/kart-basket/internal/domain/product"
)

// Basket capacity limits.
const (
	MaxWeight = 100
	MaxItems  = 30
)

// Line is a grouped view of one product held in the basket.
type Line struct {
	Product  product.Product
	Quantity int
}

// Basket holds product units keyed by product ID. A Basket is not safe for
// concurrent use.
type Basket struct {
	id       uuid.UUID
	lg       *zap.Logger
	products map[product.ID][]product.Product
	order    []product.ID
}

// Option configures a Basket.
type Option func(*Basket)

// WithLogger sets the logger used for mutation events.
func WithLogger(lg *zap.Logger) Option {
	return func(b *Basket) {
		if lg != nil {
			b.lg = lg
		}
	}
}

// WithID overrides the randomly generated basket ID.
func WithID(id uuid.UUID) Option {
	return func(b *Basket) { b.id = id }
}

// New creates an empty basket.
func New(opts ...Option) *Basket {
	b := &Basket{
		id:       uuid.New(),
		lg:       zap.NewNop(),
		products: make(map[product.ID][]product.Product),
	}
	for _, o := range opts {
		o(b)
	}
	b.lg = b.lg.With(zap.Stringer("basket_id", b.id))
	return b
}

// ID returns the basket identifier.
func (b *Basket) ID() uuid.UUID { return b.id }

// Add adds a single unit of p.
func (b *Basket) Add(p product.Product) error {
	return b.AddProduct(p, 1)
}

// AddProduct adds quantity units of p. The item limit is checked before the
// weight limit, and a rejected addition leaves the basket unchanged.
func (b *Basket) AddProduct(p product.Product, quantity int) error {
	if p.IsZero() {
		return product.TypeError("product", "expected a constructed Product", "zero product.Product")
	}
	if quantity < 1 {
		return product.TypeError("quantity", "expected a positive integer", fmt.Sprintf("int %d", quantity))
	}

	// Both checks compare against the remaining headroom so huge quantities
	// cannot overflow.
	if count := b.Count(); quantity > MaxItems-count {
		return &CapacityExceededError{
			Limit:     LimitItems,
			Max:       MaxItems,
			Current:   count,
			Requested: quantity,
		}
	}
	if weight := b.TotalWeight(); quantity > (MaxWeight-weight)/p.Weight() {
		return &CapacityExceededError{
			Limit:     LimitWeight,
			Max:       MaxWeight,
			Current:   weight,
			Requested: quantity * p.Weight(),
		}
	}

	units, ok := b.products[p.ID()]
	if !ok {
		b.order = append(b.order, p.ID())
	}
	for range quantity {
		units = append(units, p)
	}
	b.products[p.ID()] = units

	b.lg.Debug("Product added",
		zap.Int64("product_id", int64(p.ID())),
		zap.Int("quantity", quantity),
		zap.Int("count", b.Count()),
	)
	return nil
}

// RemoveProduct removes every unit of the product with the given ID. Removing
// an absent ID is a no-op.
func (b *Basket) RemoveProduct(id product.ID) {
	units, ok := b.products[id]
	if !ok {
		return
	}
	delete(b.products, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	b.lg.Debug("Product removed",
		zap.Int64("product_id", int64(id)),
		zap.Int("quantity", len(units)),
	)
}

// DeleteProduct removes a product by a dynamically typed key, as found in
// decoded documents. A key that cannot be compared fails with an
// InvalidArgumentError. Keys are matched by numeric value: integers,
// integral floats and complex numbers with no imaginary part, and booleans
// as 0 or 1. Any other comparable key, or a value that matches no product,
// is treated as absent.
func (b *Basket) DeleteProduct(key any) error {
	if key != nil && !reflect.ValueOf(key).Comparable() {
		return product.TypeError("product_id", "unhashable product id", fmt.Sprintf("%T", key))
	}
	if id, ok := keyToID(key); ok {
		b.RemoveProduct(id)
	}
	return nil
}

func keyToID(key any) (product.ID, bool) {
	if key == nil {
		return 0, false
	}
	v := reflect.ValueOf(key)
	switch {
	case v.CanInt():
		return product.ID(v.Int()), true
	case v.CanUint():
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return product.ID(u), true
	case v.CanFloat():
		return floatToID(v.Float())
	case v.CanComplex():
		c := v.Complex()
		if imag(c) != 0 {
			return 0, false
		}
		return floatToID(real(c))
	case v.Kind() == reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// floatToID accepts integral values in the int64 range; NaN and infinities
// fail the comparisons.
func floatToID(f float64) (product.ID, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return product.ID(f), true
}

// ListProducts returns every held unit, grouped by product in the order the
// products were first added. The returned slice is never shared.
func (b *Basket) ListProducts() []product.Product {
	out := make([]product.Product, 0, b.Count())
	for _, id := range b.order {
		out = append(out, b.products[id]...)
	}
	return out
}

// Lines returns one Line per held product, in the same order as ListProducts.
func (b *Basket) Lines() []Line {
	out := make([]Line, 0, len(b.order))
	for _, id := range b.order {
		units := b.products[id]
		out = append(out, Line{Product: units[0], Quantity: len(units)})
	}
	return out
}

// Count returns the number of units held.
func (b *Basket) Count() int {
	n := 0
	for _, units := range b.products {
		n += len(units)
	}
	return n
}

// TotalPrice returns the sum of unit prices.
func (b *Basket) TotalPrice() int {
	sum := 0
	for _, units := range b.products {
		for _, p := range units {
			sum += p.Price()
		}
	}
	return sum
}

// TotalWeight returns the sum of unit weights.
func (b *Basket) TotalWeight() int {
	sum := 0
	for _, units := range b.products {
		for _, p := range units {
			sum += p.Weight()
		}
	}
	return sum
}

// ShippingCost returns the shipping fee for the current total price.
func (b *Basket) ShippingCost() int {
	return Shipping(b.TotalPrice())
}

// Price returns the total price including shipping.
func (b *Basket) Price() int {
	return b.TotalPrice() + b.ShippingCost()
}
