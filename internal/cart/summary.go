package cart

import "github.com/shopspring/decimal"

type Item struct {
	Product Product        `json:"product"`
	Sizes   []SizeQuantity `json:"selected_sizes"`
}

func (it Item) Quantity() int {
	n := 0
	for _, sq := range it.Sizes {
		n += sq.Quantity
	}
	return n
}

func (it Item) Subtotal() decimal.Decimal {
	return it.Product.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity())))
}

type Summary struct {
	Items         []Item          `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// SelectedItems returns the items with at least one size selected.
func (s Summary) SelectedItems() []Item {
	out := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Quantity() > 0 {
			out = append(out, it)
		}
	}
	return out
}

// Summarize projects the store into a Summary. Every catalog product is
// listed, in catalog order, including those without selections.
func Summarize(s *Store) Summary {
	sum := Summary{
		Items:      make([]Item, 0, len(s.products)),
		TotalPrice: decimal.Zero,
	}
	for _, p := range s.products {
		it := Item{Product: p, Sizes: s.Selections(p.ID)}
		q := it.Quantity()
		sum.TotalQuantity += q
		sum.TotalPrice = sum.TotalPrice.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(q))))
		sum.Items = append(sum.Items, it)
	}
	return sum
}
