package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.
// pending -> confirmed|cancelled; confirmed -> cancelled; cancelled is final.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	}
	return false
}

type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"propertyId"`
	TenantID   string        `json:"tenantId"`
	StartDate  time.Time     `json:"startDate"`
	EndDate    time.Time     `json:"endDate"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	IsPaid     bool          `json:"isPaid"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Overlaps reports whether an existing booking range collides with a
// requested [start, end]. The two range checks are intentionally
// asymmetric at the boundaries: an existing range starting exactly at
// the requested end, or ending exactly at the requested start, does not
// collide.
func Overlaps(existingStart, existingEnd, start, end time.Time) bool {
	if existingStart.Before(end) && !existingStart.Before(start) {
		return true
	}
	if existingEnd.After(start) && !existingEnd.After(end) {
		return true
	}
	return false
}

// Days expands the booking's date range into one entry per calendar day,
// inclusive on both ends.
func (b Booking) Days() []time.Time {
	var out []time.Time
	for d := b.StartDate; !d.After(b.EndDate); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
