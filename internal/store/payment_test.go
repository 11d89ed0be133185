package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

func paymentFixture(t *testing.T) (*store.OrderStore, *store.PaymentStore, model.Order) {
	t.Helper()
	orders := store.NewOrderStore(nil, nil)
	payments := store.NewPaymentStore(nil, orders)
	order := orders.Create(draftWith(burger(2)))
	return orders, payments, order
}

func TestProcessPaymentFlipsOrderToPaid(t *testing.T) {
	orders, payments, order := paymentFixture(t)

	p, err := payments.Process(store.PaymentRequest{
		OrderID: order.ID, Amount: order.Total, Method: model.PayCard,
		CardLast4: "4242", ProcessedBy: "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAY-001", p.ID)
	assert.Equal(t, "RCP-001", p.ReceiptNumber)
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.False(t, p.ProcessedAt.IsZero())

	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, got.Status)
	assert.True(t, got.Paid)
	assert.Equal(t, p.ID, got.PaymentID)
}

func TestProcessPaymentUnknownOrderWritesNothing(t *testing.T) {
	_, payments, _ := paymentFixture(t)

	_, err := payments.Process(store.PaymentRequest{OrderID: "ORD-404", Amount: 10, Method: model.PayCash})
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
	assert.Empty(t, payments.Payments())
}

func TestRefundCreatesNegativeRecordAndFlipsOriginal(t *testing.T) {
	orders, payments, order := paymentFixture(t)

	p, err := payments.Process(store.PaymentRequest{
		OrderID: order.ID, Amount: order.Total, Method: model.PayCash, ProcessedBy: "Dana",
	})
	require.NoError(t, err)

	refund, err := payments.Refund(p.ID, order.Total)
	require.NoError(t, err)
	assert.Equal(t, "REF-002", refund.ID)
	assert.InDelta(t, -order.Total, refund.Amount, 1e-9)
	assert.Equal(t, model.PaymentCompleted, refund.Status)
	assert.Equal(t, p.OrderID, refund.OrderID)
	assert.Equal(t, p.ProcessedBy, refund.ProcessedBy)

	orig, err := payments.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRefunded, orig.Status)

	// The order stays paid; reverting is out of scope.
	got, _ := orders.Get(order.ID)
	assert.Equal(t, model.OrderPaid, got.Status)
	assert.True(t, got.Paid)
}

func TestRefundUnknownPayment(t *testing.T) {
	_, payments, _ := paymentFixture(t)
	_, err := payments.Refund("PAY-404", 5)
	assert.ErrorIs(t, err, store.ErrPaymentNotFound)
}

func TestForOrder(t *testing.T) {
	_, payments, order := paymentFixture(t)

	p, err := payments.Process(store.PaymentRequest{OrderID: order.ID, Amount: order.Total, Method: model.PayMobile})
	require.NoError(t, err)
	_, err = payments.Refund(p.ID, 3)
	require.NoError(t, err)

	got := payments.ForOrder(order.ID)
	assert.Len(t, got, 2)
	assert.Empty(t, payments.ForOrder("ORD-404"))
}
