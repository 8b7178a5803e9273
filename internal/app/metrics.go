package app

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "kart-basket"

// Metrics records quote outcomes.
type Metrics struct {
	quotes metric.Int64Counter
	price  metric.Int64Histogram
}

// NewMetrics registers the quote instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	quotes, err := meter.Int64Counter("basket.quotes",
		metric.WithDescription("Number of basket documents processed"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create quotes counter")
	}
	price, err := meter.Int64Histogram("basket.quote.price",
		metric.WithDescription("Final quoted price including shipping"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create price histogram")
	}

	return &Metrics{quotes: quotes, price: price}, nil
}

// Quoted records a successfully priced basket.
func (m *Metrics) Quoted(ctx context.Context, q *Quote) {
	m.quotes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", "ok"),
		attribute.Bool("free_shipping", q.ShippingCost == 0),
	))
	m.price.Record(ctx, int64(q.Price))
}

// Rejected records a document that failed to build.
func (m *Metrics) Rejected(ctx context.Context) {
	m.quotes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "rejected")))
}
