package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, validOrderStatus(s), s)
	}
	assert.False(t, validOrderStatus("bogus"))
	assert.False(t, validOrderStatus(""))
	assert.False(t, validOrderStatus("Pending"))
}

func TestApplyStatus_RejectsUnknownStatus(t *testing.T) {
	order := &Order{Status: StatusPending}
	now := time.Now()

	err := applyStatus(order, "bogus", "admin", now)

	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, StatusPending, order.Status)
	assert.Empty(t, order.StatusHistory)
	assert.False(t, order.IsDelivered)
}

func TestApplyStatus_AppendsHistory(t *testing.T) {
	order := &Order{Status: StatusPending}
	now := time.Now()

	require.NoError(t, applyStatus(order, StatusProcessing, "alice", now))
	require.NoError(t, applyStatus(order, StatusShipped, "bob", now))

	assert.Equal(t, StatusShipped, order.Status)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, StatusProcessing, order.StatusHistory[0].Status)
	assert.Equal(t, "alice", order.StatusHistory[0].UpdatedBy)
	assert.Equal(t, StatusShipped, order.StatusHistory[1].Status)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.DeliveredAt)
}

func TestApplyStatus_DeliveredSetsFlag(t *testing.T) {
	order := &Order{Status: StatusShipped}
	now := time.Now()

	require.NoError(t, applyStatus(order, StatusDelivered, "admin", now))

	assert.Equal(t, StatusDelivered, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, StatusDelivered, order.StatusHistory[0].Status)
	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, now, *order.DeliveredAt)

	// Applying delivered again stays delivered and appends one more entry.
	later := now.Add(time.Minute)
	require.NoError(t, applyStatus(order, StatusDelivered, "admin", later))
	assert.True(t, order.IsDelivered)
	assert.Equal(t, later, *order.DeliveredAt)
	assert.Len(t, order.StatusHistory, 2)
}

func TestApplyStatus_CancelledHasNoSideEffects(t *testing.T) {
	order := &Order{Status: StatusProcessing}

	require.NoError(t, applyStatus(order, StatusCancelled, "admin", time.Now()))

	assert.Equal(t, StatusCancelled, order.Status)
	assert.False(t, order.IsDelivered)
	assert.False(t, order.IsPaid)
}

func validOrder() *Order {
	return &Order{
		Items: []OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 2, Price: 9.99}},
		ShippingAddress: ShippingAddress{
			Address:    "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
		PaymentMethod: "card",
		ItemsPrice:    19.98,
		TaxPrice:      2,
		ShippingPrice: 5,
		TotalPrice:    26.98,
	}
}

func TestValidateNewOrder(t *testing.T) {
	require.NoError(t, validateNewOrder(validOrder()))

	o := validOrder()
	o.Items = nil
	assert.ErrorIs(t, validateNewOrder(o), ErrNoOrderItems)

	o = validOrder()
	o.Items[0].Quantity = 0
	assert.ErrorIs(t, validateNewOrder(o), ErrInvalidQuantity)

	o = validOrder()
	o.ShippingAddress.City = ""
	assert.ErrorIs(t, validateNewOrder(o), ErrMissingShipping)

	o = validOrder()
	o.PaymentMethod = ""
	assert.ErrorIs(t, validateNewOrder(o), ErrMissingPayment)
}

// The total is caller-supplied and deliberately not reconciled against
// its parts.
func TestValidateNewOrder_TotalNotReconciled(t *testing.T) {
	o := validOrder()
	o.TotalPrice = 999

	assert.NoError(t, validateNewOrder(o))
}

// Paying an order must bump each ordered product's sold counter by
// exactly that line's quantity.
func TestFulfillmentIncrements(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	order := &Order{Items: []OrderItem{
		{ProductID: a, Quantity: 2, Price: 9.99},
		{ProductID: b, Quantity: 5, Price: 1.50},
	}}

	incs := fulfillmentIncrements(order)

	require.Len(t, incs, 2)
	assert.Equal(t, soldIncrement{ProductID: a, Qty: 2}, incs[0])
	assert.Equal(t, soldIncrement{ProductID: b, Qty: 5}, incs[1])
}

func TestFulfillmentIncrements_EmptyOrder(t *testing.T) {
	assert.Empty(t, fulfillmentIncrements(&Order{}))
}

func TestActorLabel(t *testing.T) {
	assert.Equal(t, "Alice", actorLabel(&User{Name: "Alice", Email: "a@example.com"}))
	assert.Equal(t, "a@example.com", actorLabel(&User{Email: "a@example.com"}))
}
