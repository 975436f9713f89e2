package models

import "time"

// Address is a saved location a user can place into trip sequences.
type Address struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AddressText string    `json:"address_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddressRequest represents the data needed to create or update an address.
type AddressRequest struct {
	Address string `json:"address" validate:"required,min=1"`
}
