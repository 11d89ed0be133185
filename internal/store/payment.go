package store

import (
	"errors"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
)

// ErrPaymentNotFound is returned when a payment lookup yields no
// record.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStore owns the tender records. A successful payment and its
// order-side effects (status "paid", paid flag, payment id) happen
// all-or-nothing: when the order id is unknown no payment record is
// created either.
type PaymentStore struct {
	mu       sync.Mutex
	payments []model.Payment
	seq      int
	orders   *OrderStore

	Now func() time.Time
}

// NewPaymentStore builds a store over the given initial payments. The
// order store receives the paid-status side effect.
func NewPaymentStore(initial []model.Payment, orders *OrderStore) *PaymentStore {
	ids := make([]string, 0, len(initial))
	for _, p := range initial {
		ids = append(ids, p.ID)
	}
	return &PaymentStore{
		payments: append([]model.Payment(nil), initial...),
		seq:      nextSeq(ids),
		orders:   orders,
		Now:      utcNow,
	}
}

// PaymentRequest carries the caller-supplied fields of a new payment.
// Field validation (cash covers the total, card fields well-formed) is
// an HTTP-layer concern and never reaches this store.
type PaymentRequest struct {
	OrderID       string
	Amount        float64
	Method        model.PaymentMethod
	Tip           float64
	Change        float64
	CardLast4     string
	TransactionID string
	ProcessedBy   string
}

// Process records a completed payment against an order. The order is
// flipped to "paid" and stamped with the payment id; if the order id is
// unknown the call fails with the order store's NotFound and nothing is
// written anywhere.
func (s *PaymentStore) Process(req PaymentRequest) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Payment{
		ID:            seqID("PAY", s.seq),
		ReceiptNumber: seqID("RCP", s.seq),
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        model.PaymentCompleted,
		Tip:           req.Tip,
		Change:        req.Change,
		CardLast4:     req.CardLast4,
		TransactionID: req.TransactionID,
		ProcessedBy:   req.ProcessedBy,
		ProcessedAt:   s.Now(),
	}

	// Order side effect first: if it fails, the payment is never
	// appended, closing the reference's partial-failure window.
	if err := s.orders.markPaid(req.OrderID, p.ID); err != nil {
		return model.Payment{}, err
	}
	s.seq++
	s.payments = append(s.payments, p)
	return p, nil
}

// Refund creates a new payment record with the amount negated and
// status "completed", referencing the same order and processor as the
// original, and flips the original's status to "refunded". The order's
// paid status is left untouched. The refund record is returned.
func (s *PaymentStore) Refund(paymentID string, amount float64) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(paymentID)
	if i < 0 {
		return model.Payment{}, ErrPaymentNotFound
	}
	orig := &s.payments[i]

	refund := model.Payment{
		ID:            seqID("REF", s.seq),
		ReceiptNumber: seqID("RCP", s.seq),
		OrderID:       orig.OrderID,
		Amount:        -amount,
		Method:        orig.Method,
		Status:        model.PaymentCompleted,
		ProcessedBy:   orig.ProcessedBy,
		ProcessedAt:   s.Now(),
	}
	s.seq++
	orig.Status = model.PaymentRefunded
	s.payments = append(s.payments, refund)
	return refund, nil
}

// Get returns the payment with the given id.
func (s *PaymentStore) Get(id string) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Payment{}, ErrPaymentNotFound
	}
	return s.payments[i], nil
}

// Payments returns a snapshot of all payment records.
func (s *PaymentStore) Payments() []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Payment(nil), s.payments...)
}

// ForOrder returns the payments recorded against one order.
func (s *PaymentStore) ForOrder(orderID string) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out
}

func (s *PaymentStore) index(id string) int {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return i
		}
	}
	return -1
}
