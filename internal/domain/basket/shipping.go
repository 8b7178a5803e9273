package basket

// Shipping tiers over the basket total price.
const (
	shippingStandard = 250
	shippingReduced  = 100

	reducedFrom = 500
	freeFrom    = 1000
)

// Shipping returns the shipping fee for a basket whose products cost
// totalPrice. An empty basket ships for free.
func Shipping(totalPrice int) int {
	switch {
	case totalPrice <= 0:
		return 0
	case totalPrice < reducedFrom:
		return shippingStandard
	case totalPrice < freeFrom:
		return shippingReduced
	default:
		return 0
	}
}
