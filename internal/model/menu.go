package model // model defines the domain entities held by the in-memory stores

import "time"

// MenuItem represents a dish or drink offered by the restaurant.
// Availability is toggled independently of full edits so the kitchen
// can 86 an item without touching its definition.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`    // non-negative
	Category    string    `json:"category"` // free-form (e.g. "Mains", "Drinks")
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
