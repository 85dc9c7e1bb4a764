package cart_test

import (
	"math/rand"
	"testing"

	"storefront/internal/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoProducts() (cart.Product, cart.Product) {
	a := cart.Product{ID: uuid.New(), Name: "Camisa A", UnitPrice: decimal.RequireFromString("10.00")}
	b := cart.Product{ID: uuid.New(), Name: "Camisa B", UnitPrice: decimal.RequireFromString("25.50")}
	return a, b
}

func TestSummarize_Totals(t *testing.T) {
	a, b := twoProducts()
	s := cart.NewStore([]cart.Product{a, b})

	s.SetQuantity(a.ID, cart.SizeP, 2)
	s.SetQuantity(a.ID, cart.SizeM, 1)
	s.SetQuantity(b.ID, cart.SizeG, 3)

	sum := cart.Summarize(s)
	assert.Equal(t, 6, sum.TotalQuantity)
	assert.True(t, sum.TotalPrice.Equal(decimal.RequireFromString("106.50")), "got %s", sum.TotalPrice)

	require.Len(t, sum.Items, 2)
	assert.Equal(t, a.ID, sum.Items[0].Product.ID)
	assert.Equal(t, b.ID, sum.Items[1].Product.ID)
	assert.True(t, sum.Items[0].Subtotal().Equal(decimal.RequireFromString("30")))
}

func TestSetQuantity_Cases(t *testing.T) {
	a, b := twoProducts()
	s := cart.NewStore([]cart.Product{a, b})

	t.Run("zero on missing entry is a no-op", func(t *testing.T) {
		assert.True(t, s.SetQuantity(a.ID, cart.SizeM, 0))
		assert.Empty(t, s.Selections(a.ID))
	})

	t.Run("insert", func(t *testing.T) {
		s.SetQuantity(a.ID, cart.SizeM, 2)
		assert.Equal(t, []cart.SizeQuantity{{Size: cart.SizeM, Quantity: 2}}, s.Selections(a.ID))
	})

	t.Run("replace", func(t *testing.T) {
		s.SetQuantity(a.ID, cart.SizeM, 5)
		assert.Equal(t, 5, s.Quantity(a.ID, cart.SizeM))
		assert.Len(t, s.Selections(a.ID), 1)
	})

	t.Run("zero removes the entry", func(t *testing.T) {
		s.SetQuantity(a.ID, cart.SizeGG, 1)
		s.SetQuantity(a.ID, cart.SizeM, 0)
		for _, sq := range s.Selections(a.ID) {
			assert.NotEqual(t, cart.SizeM, sq.Size)
		}
		assert.Equal(t, []cart.SizeQuantity{{Size: cart.SizeGG, Quantity: 1}}, s.Selections(a.ID))
	})

	t.Run("other products untouched", func(t *testing.T) {
		s.SetQuantity(b.ID, cart.SizePP, 4)
		s.SetQuantity(a.ID, cart.SizeGG, 7)
		assert.Equal(t, []cart.SizeQuantity{{Size: cart.SizePP, Quantity: 4}}, s.Selections(b.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.False(t, s.SetQuantity(uuid.New(), cart.SizeM, 1))
	})

	t.Run("negative quantity panics", func(t *testing.T) {
		assert.Panics(t, func() { s.SetQuantity(a.ID, cart.SizeM, -1) })
	})
}

func TestSelections_SizeOrder(t *testing.T) {
	a, _ := twoProducts()
	s := cart.NewStore([]cart.Product{a})
	s.SetQuantity(a.ID, cart.SizeGG, 1)
	s.SetQuantity(a.ID, cart.SizePP, 1)
	s.SetQuantity(a.ID, cart.SizeM, 1)

	got := s.Selections(a.ID)
	require.Len(t, got, 3)
	assert.Equal(t, cart.SizePP, got[0].Size)
	assert.Equal(t, cart.SizeM, got[1].Size)
	assert.Equal(t, cart.SizeGG, got[2].Size)
}

func TestClearAll(t *testing.T) {
	a, b := twoProducts()
	s := cart.NewStore([]cart.Product{a, b})
	s.SetQuantity(a.ID, cart.SizeP, 2)
	s.SetQuantity(b.ID, cart.SizeG, 1)

	s.ClearAll()

	sum := cart.Summarize(s)
	assert.Equal(t, 0, sum.TotalQuantity)
	assert.True(t, sum.TotalPrice.IsZero())
	assert.Empty(t, sum.SelectedItems())
	assert.Len(t, s.Products(), 2)
	assert.Len(t, sum.Items, 2)
}

func TestSummarize_DeterministicAgainstRescan(t *testing.T) {
	a, b := twoProducts()
	products := []cart.Product{a, b}
	s := cart.NewStore(products)
	rng := rand.New(rand.NewSource(42))
	sizes := cart.AllSizes()

	for i := 0; i < 500; i++ {
		p := products[rng.Intn(len(products))]
		s.SetQuantity(p.ID, sizes[rng.Intn(len(sizes))], rng.Intn(4))

		first := cart.Summarize(s)
		second := cart.Summarize(s)
		require.Equal(t, first, second)

		var qty int
		price := decimal.Zero
		for _, p := range products {
			n := 0
			for _, sz := range sizes {
				n += s.Quantity(p.ID, sz)
			}
			qty += n
			price = price.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(n))))
		}
		require.Equal(t, qty, first.TotalQuantity)
		require.True(t, price.Equal(first.TotalPrice))
	}
}

func TestParseSize(t *testing.T) {
	sz, err := cart.ParseSize(" gg ")
	require.NoError(t, err)
	assert.Equal(t, cart.SizeGG, sz)

	_, err = cart.ParseSize("XL")
	assert.ErrorIs(t, err, cart.ErrUnknownSize)
}
