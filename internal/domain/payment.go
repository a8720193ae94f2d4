package domain

import "time"

type Payment struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"bookingId"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
