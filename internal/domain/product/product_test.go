package product

import (
	"math"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRegistry_New(t *testing.T) {
	r := NewRegistry()

	p, err := r.New("Hairdryer", 300, 5)
	require.NoError(t, err)

	assert.Equal(t, ID(1), p.ID())
	assert.Equal(t, "Hairdryer", p.Name())
	assert.Equal(t, 300, p.Price())
	assert.Equal(t, 5, p.Weight())
	assert.False(t, p.IsZero())
	assert.Equal(t, ID(1), r.Last())
}

func TestRegistry_New_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		price   int
		weight  int
		wantArg string
	}{
		{name: "zero price", price: 0, weight: 1, wantArg: "price"},
		{name: "negative price", price: -10, weight: 1, wantArg: "price"},
		{name: "zero weight", price: 1, weight: 0, wantArg: "weight"},
		{name: "negative weight", price: 1, weight: -1, wantArg: "weight"},
		{name: "price checked first", price: 0, weight: 0, wantArg: "price"},
		{name: "price above max", price: MaxUnit + 1, weight: 1, wantArg: "price"},
		{name: "max int price", price: math.MaxInt, weight: 1, wantArg: "price"},
		{name: "weight above max", price: 1, weight: MaxUnit + 1, wantArg: "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()

			p, err := r.New("Broken", tt.price, tt.weight)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var iaErr *InvalidArgumentError
			require.ErrorAs(t, err, &iaErr)
			assert.Equal(t, tt.wantArg, iaErr.Arg)
			assert.Equal(t, KindValue, iaErr.Kind)
			assert.True(t, p.IsZero())
		})
	}
}

func TestRegistry_FailedConstructionKeepsSequence(t *testing.T) {
	r := NewRegistry()

	first, err := r.New("TV", 800, 20)
	require.NoError(t, err)

	_, err = r.New("Broken", 0, 1)
	require.Error(t, err)
	_, err = r.New("Broken", 1, 0)
	require.Error(t, err)

	second, err := r.New("Laptop", 1200, 5)
	require.NoError(t, err)

	assert.Equal(t, ID(1), first.ID())
	assert.Equal(t, ID(2), second.ID())
}

func TestRegistry_Monotonic(t *testing.T) {
	r := NewRegistry()

	var prev ID
	for i := 0; i < 100; i++ {
		p, err := r.New("Item", i+1, 1)
		require.NoError(t, err)
		assert.Greater(t, p.ID(), prev)
		prev = p.ID()
	}
}

func TestRegistry_LargePrice(t *testing.T) {
	p, err := NewRegistry().New("Yacht", 1_000_000_000, 1)
	require.NoError(t, err)
	assert.Equal(t, 1_000_000_000, p.Price())

	p, err = NewRegistry().New("Vault", MaxUnit, MaxUnit)
	require.NoError(t, err)
	assert.Equal(t, MaxUnit, p.Price())
	assert.Equal(t, MaxUnit, p.Weight())
}

func TestRegistry_Concurrent(t *testing.T) {
	const workers, perWorker = 8, 250

	r := NewRegistry()

	var (
		mu   sync.Mutex
		seen = make(map[ID]struct{}, workers*perWorker)
	)

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range perWorker {
				p, err := r.New("Item", 1, 1)
				if err != nil {
					return err
				}
				mu.Lock()
				if _, dup := seen[p.ID()]; dup {
					mu.Unlock()
					return errors.Errorf("duplicate id %d", p.ID())
				}
				seen[p.ID()] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, ID(workers*perWorker), r.Last())
}

func TestRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()

	pa, err := a.New("A", 1, 1)
	require.NoError(t, err)
	pb, err := b.New("B", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, pa.ID(), pb.ID())
}

func TestInvalidArgumentError_Message(t *testing.T) {
	err := TypeError("quantity", "expected a positive integer", "float64")

	assert.Equal(t, "invalid quantity (type error): expected a positive integer, got float64", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
