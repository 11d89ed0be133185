package model

import "time"

// PaymentMethod enumerates accepted tender types.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayMobile PaymentMethod = "mobile"
)

// PaymentStatus enumerates the states of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is one tender record against an order. A refund is a new
// Payment with a negated amount and status "completed" referencing the
// same order; the refunded original is flipped to "refunded".
type Payment struct {
	ID            string        `json:"id"` // PAY-NNN, refunds REF-NNN
	OrderID       string        `json:"order_id"`
	Amount        float64       `json:"amount"` // negative for refunds
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	ProcessedAt   time.Time     `json:"processed_at"`
	ProcessedBy   string        `json:"processed_by"`
	Tip           float64       `json:"tip,omitempty"`
	Change        float64       `json:"change,omitempty"`
	CardLast4     string        `json:"card_last4,omitempty"`
	ReceiptNumber string        `json:"receipt_number"`
}
