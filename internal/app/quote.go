package app

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"github.com/xenking/kart-basket/internal/domain/basket"
	"github.com/xenking/kart-basket/internal/domain/product"
)

// Sentinel errors for document validation.
var (
	ErrUnknownSKU   = errors.New("unknown sku")
	ErrDuplicateSKU = errors.New("duplicate sku")
)

// Quote is the priced result of a basket document.
type Quote struct {
	BasketID     uuid.UUID
	Lines        []QuoteLine
	Count        int
	TotalPrice   int
	TotalWeight  int
	ShippingCost int
	Price        int
}

// QuoteLine is a single product line of a Quote.
type QuoteLine struct {
	ID       product.ID
	SKU      string
	Name     string
	Price    int
	Weight   int
	Quantity int
}

// Build constructs the catalog with a fresh Registry, fills a basket with
// the requested items, applies removals and prices the result.
func Build(doc *Document, opts ...basket.Option) (*Quote, error) {
	reg := product.NewRegistry()

	bySKU := make(map[string]product.Product, len(doc.Catalog))
	skus := make(map[product.ID]string, len(doc.Catalog))
	for i := range doc.Catalog {
		entry := &doc.Catalog[i]
		if _, dup := bySKU[entry.SKU]; dup {
			return nil, errors.Wrapf(ErrDuplicateSKU, "catalog entry %d %q", i, entry.SKU)
		}

		price, err := intField(&entry.Price, "price")
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %d %q", i, entry.SKU)
		}
		weight, err := intField(&entry.Weight, "weight")
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %d %q", i, entry.SKU)
		}

		p, err := reg.New(entry.Name, price, weight)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %d %q", i, entry.SKU)
		}
		bySKU[entry.SKU] = p
		skus[p.ID()] = entry.SKU
	}

	b := basket.New(opts...)
	for i := range doc.Items {
		item := &doc.Items[i]
		p, ok := bySKU[item.SKU]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownSKU, "item %d %q", i, item.SKU)
		}

		quantity := 1
		if item.Quantity.Kind != 0 {
			q, err := intField(&item.Quantity, "quantity")
			if err != nil {
				return nil, errors.Wrapf(err, "item %d %q", i, item.SKU)
			}
			quantity = q
		}

		if err := b.AddProduct(p, quantity); err != nil {
			return nil, errors.Wrapf(err, "item %d %q", i, item.SKU)
		}
	}

	for i := range doc.Remove {
		var key any
		if err := doc.Remove[i].Decode(&key); err != nil {
			return nil, errors.Wrapf(err, "decode remove %d", i)
		}
		if err := b.DeleteProduct(key); err != nil {
			return nil, errors.Wrapf(err, "remove %d", i)
		}
	}

	return newQuote(b, skus), nil
}

func newQuote(b *basket.Basket, skus map[product.ID]string) *Quote {
	lines := b.Lines()
	q := &Quote{
		BasketID:     b.ID(),
		Lines:        make([]QuoteLine, 0, len(lines)),
		Count:        b.Count(),
		TotalPrice:   b.TotalPrice(),
		TotalWeight:  b.TotalWeight(),
		ShippingCost: b.ShippingCost(),
		Price:        b.Price(),
	}
	for _, l := range lines {
		q.Lines = append(q.Lines, QuoteLine{
			ID:       l.Product.ID(),
			SKU:      skus[l.Product.ID()],
			Name:     l.Product.Name(),
			Price:    l.Product.Price(),
			Weight:   l.Product.Weight(),
			Quantity: l.Quantity,
		})
	}
	return q
}

// Encode writes q as a JSON object.
func (q *Quote) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("basket_id")
	e.Str(q.BasketID.String())

	e.FieldStart("lines")
	e.ArrStart()
	for _, l := range q.Lines {
		e.ObjStart()
		e.FieldStart("id")
		e.Int64(int64(l.ID))
		e.FieldStart("sku")
		e.Str(l.SKU)
		e.FieldStart("name")
		e.Str(l.Name)
		e.FieldStart("price")
		e.Int(l.Price)
		e.FieldStart("weight")
		e.Int(l.Weight)
		e.FieldStart("quantity")
		e.Int(l.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("count")
	e.Int(q.Count)
	e.FieldStart("total_price")
	e.Int(q.TotalPrice)
	e.FieldStart("total_weight")
	e.Int(q.TotalWeight)
	e.FieldStart("shipping_cost")
	e.Int(q.ShippingCost)
	e.FieldStart("price")
	e.Int(q.Price)
	e.ObjEnd()
}

// WriteQuote encodes q to w followed by a newline.
func WriteQuote(w io.Writer, q *Quote, pretty bool) error {
	var e jx.Encoder
	if pretty {
		e.SetIdent(2)
	}
	q.Encode(&e)

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write quote")
	}
	return nil
}
