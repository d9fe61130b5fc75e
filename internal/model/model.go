// Package model contains domain entities shared across layers.
// Data shapes only, no behavior.
package model

import "time"

// Item is an entry of the paged catalog.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
