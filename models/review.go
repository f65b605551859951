package models

import "time"

// Review is append-only: records are created once (seeding) and never
// updated or deleted through the API.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
