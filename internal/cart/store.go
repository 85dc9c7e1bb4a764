package cart

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantityPerSize is the ceiling of the quantity selector.
const MaxQuantityPerSize = 99

type Product struct {
	ID          uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price" swaggertype:"string" example:"59.90"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
}

type SizeQuantity struct {
	Size     Size `json:"size"`
	Quantity int  `json:"quantity"`
}

// Store holds per-size quantities for every product of a catalog snapshot.
// It is owned by a single session and is not safe for concurrent use.
type Store struct {
	products   []Product
	index      map[uuid.UUID]int
	selections map[uuid.UUID]map[Size]int
}

func NewStore(products []Product) *Store {
	s := &Store{
		products:   make([]Product, len(products)),
		index:      make(map[uuid.UUID]int, len(products)),
		selections: make(map[uuid.UUID]map[Size]int),
	}
	copy(s.products, products)
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	return s
}

func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id uuid.UUID) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// SetQuantity sets the quantity for (productID, size). A zero quantity removes
// the entry. It reports false when the product is not part of the snapshot.
// Negative quantities violate the caller contract and panic.
func (s *Store) SetQuantity(productID uuid.UUID, size Size, quantity int) bool {
	if quantity < 0 {
		panic(fmt.Sprintf("cart: negative quantity %d for product %s size %s", quantity, productID, size))
	}
	if _, ok := s.index[productID]; !ok {
		return false
	}

	sizes, exists := s.selections[productID]
	if quantity == 0 {
		if exists {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(s.selections, productID)
			}
		}
		return true
	}

	if !exists {
		sizes = make(map[Size]int, 1)
		s.selections[productID] = sizes
	}
	sizes[size] = quantity
	return true
}

func (s *Store) Quantity(productID uuid.UUID, size Size) int {
	return s.selections[productID][size]
}

// Selections returns the non-zero entries of a product in size order.
func (s *Store) Selections(productID uuid.UUID) []SizeQuantity {
	sizes := s.selections[productID]
	out := make([]SizeQuantity, 0, len(sizes))
	for sz, q := range sizes {
		out = append(out, SizeQuantity{Size: sz, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size.rank() < out[j].Size.rank() })
	return out
}

// ClearAll drops every selection and keeps the catalog.
func (s *Store) ClearAll() {
	s.selections = make(map[uuid.UUID]map[Size]int)
}
