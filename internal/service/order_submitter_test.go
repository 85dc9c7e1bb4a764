package service_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var shirtA = cart.Product{ID: uuid.New(), Name: "Camisa A", UnitPrice: decimal.RequireFromString("10.00")}
var shirtB = cart.Product{ID: uuid.New(), Name: "Camisa B", UnitPrice: decimal.RequireFromString("25.50")}

func newCart() *cart.Store {
	return cart.NewStore([]cart.Product{shirtA, shirtB})
}

var validCustomer = service.CustomerInput{Name: "  Maria Silva ", Phone: "(21) 96842-8374"}

func TestSubmit_EmptyCart(t *testing.T) {
	w := &MockOrderWriter{}
	sub := service.NewOrderSubmitter(w, nil, zap.NewNop())

	res, err := sub.Submit(context.Background(), cart.Summarize(newCart()), validCustomer)

	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Equal(t, service.PhaseNone, res.Phase)
	assert.Zero(t, w.CreateOrderCalls)
	assert.Zero(t, w.CreateOrderItemsCalls)
}

func TestSubmit_Validation(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtA.ID, cart.SizeM, 1)
	sum := cart.Summarize(s)

	cases := []struct {
		name  string
		in    service.CustomerInput
		field string
	}{
		{"empty name", service.CustomerInput{Name: "   ", Phone: "21968428374"}, service.FieldName},
		{"short phone", service.CustomerInput{Name: "Ana", Phone: "96842-837"}, service.FieldPhone},
		{"long phone", service.CustomerInput{Name: "Ana", Phone: "+55 21 96842-8374"}, service.FieldPhone},
		{"no digits", service.CustomerInput{Name: "Ana", Phone: "abc"}, service.FieldPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &MockOrderWriter{}
			sub := service.NewOrderSubmitter(w, nil, zap.NewNop())

			_, err := sub.Submit(context.Background(), sum, tc.in)

			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Zero(t, w.CreateOrderCalls)
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtA.ID, cart.SizeM, 2)
	sum := cart.Summarize(s)

	orderID := uuid.New()
	var gotName, gotPhone string
	var gotTotal decimal.Decimal
	var gotItems []models.OrderItem

	w := &MockOrderWriter{
		CreateOrderFunc: func(ctx context.Context, name, phone string, total decimal.Decimal) (uuid.UUID, error) {
			gotName, gotPhone, gotTotal = name, phone, total
			return orderID, nil
		},
		CreateOrderItemsFunc: func(ctx context.Context, items []models.OrderItem) error {
			gotItems = items
			return nil
		},
	}
	ev := &MockEvents{}
	sub := service.NewOrderSubmitter(w, ev, zap.NewNop())

	res, err := sub.Submit(context.Background(), sum, validCustomer)
	require.NoError(t, err)

	assert.Equal(t, orderID, res.OrderID)
	assert.Equal(t, service.PhaseItemsCreated, res.Phase)
	assert.Equal(t, "Maria Silva", gotName)
	assert.Equal(t, "21968428374", gotPhone)
	assert.True(t, gotTotal.Equal(decimal.RequireFromString("20")))

	require.Len(t, gotItems, 1)
	assert.Equal(t, orderID, gotItems[0].OrderID)
	assert.Equal(t, shirtA.ID, gotItems[0].ProductID)
	assert.Equal(t, cart.SizeM, gotItems[0].Size)
	assert.Equal(t, 2, gotItems[0].Quantity)
	assert.True(t, gotItems[0].Price.Equal(shirtA.UnitPrice))

	assert.Equal(t, 1, w.CreateOrderCalls)
	assert.Equal(t, 1, w.CreateOrderItemsCalls)
	require.Len(t, ev.Placed, 1)
	assert.Equal(t, orderID, ev.Placed[0].OrderID)
}

func TestSubmit_OrderCreationFails(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtB.ID, cart.SizeG, 1)
	dbErr := errors.New("connection refused")

	w := &MockOrderWriter{
		CreateOrderFunc: func(ctx context.Context, name, phone string, total decimal.Decimal) (uuid.UUID, error) {
			return uuid.Nil, dbErr
		},
	}
	sub := service.NewOrderSubmitter(w, nil, zap.NewNop())

	res, err := sub.Submit(context.Background(), cart.Summarize(s), validCustomer)

	var cerr *service.OrderCreationError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, service.PhaseNone, res.Phase)
	assert.Zero(t, w.CreateOrderItemsCalls)
	assert.Equal(t, 1, s.Quantity(shirtB.ID, cart.SizeG), "cart must be left intact")
}

func TestSubmit_ItemsFailLeavesOrphan(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtA.ID, cart.SizeP, 1)
	orderID := uuid.New()
	ev := &MockEvents{}

	w := &MockOrderWriter{
		CreateOrderFunc: func(ctx context.Context, name, phone string, total decimal.Decimal) (uuid.UUID, error) {
			return orderID, nil
		},
		CreateOrderItemsFunc: func(ctx context.Context, items []models.OrderItem) error {
			return errors.New("timeout")
		},
	}
	sub := service.NewOrderSubmitter(w, ev, zap.NewNop())

	res, err := sub.Submit(context.Background(), cart.Summarize(s), validCustomer)

	var ierr *service.OrderItemsError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, orderID, ierr.OrderID)
	assert.Equal(t, orderID, res.OrderID)
	assert.Equal(t, service.PhaseOrderCreated, res.Phase)
	assert.Empty(t, ev.Placed)
}

func TestSubmit_EventFailureIgnored(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtA.ID, cart.SizeP, 1)
	ev := &MockEvents{Err: errors.New("broker down")}
	sub := service.NewOrderSubmitter(&MockOrderWriter{}, ev, zap.NewNop())

	res, err := sub.Submit(context.Background(), cart.Summarize(s), validCustomer)
	require.NoError(t, err)
	assert.Equal(t, service.PhaseItemsCreated, res.Phase)
}

func TestBuildOrderItems_SkipsZeroQuantities(t *testing.T) {
	orderID := uuid.New()
	sum := cart.Summary{
		Items: []cart.Item{
			{Product: shirtA, Sizes: []cart.SizeQuantity{{Size: cart.SizeP, Quantity: 0}, {Size: cart.SizeM, Quantity: 3}}},
			{Product: shirtB},
		},
		TotalQuantity: 3,
	}

	items := service.BuildOrderItems(orderID, sum)
	require.Len(t, items, 1)
	assert.Equal(t, cart.SizeM, items[0].Size)
	for _, it := range items {
		assert.Greater(t, it.Quantity, 0)
	}
}

func TestValidateCustomer_TenDigits(t *testing.T) {
	name, phone, err := service.ValidateCustomer(service.CustomerInput{Name: "José", Phone: "21 3333-4444"})
	require.NoError(t, err)
	assert.Equal(t, "José", name)
	assert.Equal(t, "2133334444", phone)
}

func TestBuildOrderItems_OnlySelectedProducts(t *testing.T) {
	s := newCart()
	s.SetQuantity(shirtA.ID, cart.SizeM, 4)
	s.SetQuantity(shirtA.ID, cart.SizeM, 0)
	s.SetQuantity(shirtB.ID, cart.SizeGG, 2)

	items := service.BuildOrderItems(uuid.New(), cart.Summarize(s))
	require.Len(t, items, 1)
	assert.Equal(t, shirtB.ID, items[0].ProductID)
	assert.Equal(t, cart.SizeGG, items[0].Size)
	assert.True(t, shirtB.UnitPrice.Equal(items[0].Price))
}
