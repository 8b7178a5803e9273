package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/kart-basket/internal/domain/basket"
)

// Run reads the configured basket document, prices it and writes the quote.
// It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, mp metric.MeterProvider, cfg *Config) error {
	lg.Info("Reading basket document", zap.String("input", cfg.Input))

	metrics, err := NewMetrics(mp)
	if err != nil {
		return errors.Wrap(err, "create metrics")
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer func() { _ = in.Close() }()

	doc, err := ParseDocument(in)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	q, err := Build(doc, basket.WithLogger(lg))
	if err != nil {
		metrics.Rejected(ctx)
		return errors.Wrap(err, "build basket")
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := WriteQuote(out, q, cfg.Pretty); err != nil {
		return err
	}
	metrics.Quoted(ctx, q)

	lg.Info("Quote computed",
		zap.Stringer("basket_id", q.BasketID),
		zap.Int("count", q.Count),
		zap.Int("total_weight", q.TotalWeight),
		zap.Int("total_price", q.TotalPrice),
		zap.Int("shipping_cost", q.ShippingCost),
		zap.Int("price", q.Price),
	)
	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == StdStream || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	return f, func() { _ = f.Close() }, nil
}
