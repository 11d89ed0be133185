package model

import "time"

// TableStatus enumerates the floor states of a table. The states form a
// cycle (available -> occupied -> cleaning -> available) with reserved
// as a side-state, not a strictly linear lifecycle.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// Reservation holds the metadata attached to a reserved table.
type Reservation struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
}

// Table is one physical table on the floor. At most one active order is
// referenced at a time in this simplified model.
type Table struct {
	ID          string       `json:"id"`
	Number      int          `json:"number"`
	Capacity    int          `json:"capacity"`
	Status      TableStatus  `json:"status"`
	OrderID     string       `json:"order_id,omitempty"` // current active order
	Reservation *Reservation `json:"reservation,omitempty"`
}
