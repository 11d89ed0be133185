package model

import "time"

// InventoryItem tracks one stocked ingredient or supply. Crossing at or
// below MinStock on a stock update emits a single low-stock notification
// for that update call.
type InventoryItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Stock         int       `json:"stock"` // current stock, >= 0
	MinStock      int       `json:"min_stock"`
	Unit          string    `json:"unit"` // e.g. "kg", "bottles"
	CostPerUnit   float64   `json:"cost_per_unit"`
	Supplier      string    `json:"supplier,omitempty"`
	LastRestocked time.Time `json:"last_restocked"`
}

// Low reports whether the item is at or below its minimum threshold.
func (i InventoryItem) Low() bool {
	return i.Stock <= i.MinStock
}
