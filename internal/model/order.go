package model

import "time"

// OrderStatus enumerates the linear order lifecycle. "paid" is reached
// through the payment flow rather than a plain status update.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderPaid      OrderStatus = "paid"
)

// OrderItem is one line of an order. Menu data is captured by value at
// order time so later menu edits never retroactively change historical
// orders. Two lines are "the same" for merge purposes only when both
// the menu item id and the instructions text match exactly.
type OrderItem struct {
	ID           string  `json:"id"`
	MenuItemID   string  `json:"menu_item_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"` // unit price at order time
	Quantity     int     `json:"quantity"`
	Instructions string  `json:"instructions,omitempty"`
}

// LineTotal returns price times quantity for this line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is a ticket for one table. Total is derived and must equal the
// sum of the line totals after every mutation that touches Items.
type Order struct {
	ID          string      `json:"id"` // display-formatted, e.g. ORD-007
	TableNumber int         `json:"table_number"`
	Items       []OrderItem `json:"items"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	ServerName  string      `json:"server_name"`
	CreatedAt   time.Time   `json:"created_at"`
	PaymentID   string      `json:"payment_id,omitempty"`
	Paid        bool        `json:"paid,omitempty"`
}

// ItemTotal recomputes the sum of the order's line totals.
func (o Order) ItemTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.LineTotal()
	}
	return sum
}
