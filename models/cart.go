package models

import "time"

// CartItem is keyed by the submitter's email, not by a user id — the
// cart exists before the user record does on a first visit.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"index;not null"`
	MenuItemID uint      `json:"menuItemId" gorm:"not null"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
