package domain

import (
	"context"
	"time"
)

type PropertyRepository interface {
	Create(ctx context.Context, p Property) error
	Get(ctx context.Context, id string) (Property, error)
	List(ctx context.Context) ([]Property, error)
	Update(ctx context.Context, p Property) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b Booking) error
	Get(ctx context.Context, id string) (Booking, error)
	Update(ctx context.Context, b Booking) error

	// HasConfirmedOverlap runs the availability check against confirmed
	// bookings only. The comparison must match Overlaps exactly.
	HasConfirmedOverlap(ctx context.Context, propertyID string, start, end time.Time) (bool, error)
	ConfirmedForProperty(ctx context.Context, propertyID string) ([]Booking, error)

	ForTenant(ctx context.Context, tenantID string) ([]Booking, error)     // newest first
	ForProperty(ctx context.Context, propertyID string) ([]Booking, error) // startDate ascending
	CountByStatus(ctx context.Context, status BookingStatus) (int64, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) error
	Get(ctx context.Context, id string) (Application, error)
	GetForPair(ctx context.Context, propertyID, tenantID string) (Application, error)
	Update(ctx context.Context, a Application) error
	ForProperty(ctx context.Context, propertyID string) ([]Application, error)
	ForTenant(ctx context.Context, tenantID string) ([]Application, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Get(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) error
	List(ctx context.Context) ([]Payment, error)
	ForUser(ctx context.Context, userID string) ([]Payment, error)
	ForLandlord(ctx context.Context, landlordID string) ([]Payment, error)
	TotalAmount(ctx context.Context) (float64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) error
	ForUser(ctx context.Context, userID string) ([]Message, error) // sender or receiver, newest first
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Analytics is the admin read model, assembled from per-repository counts.
type Analytics struct {
	TotalUsers        int64   `json:"totalUsers"`
	Tenants           int64   `json:"tenants"`
	Landlords         int64   `json:"landlords"`
	TotalProperties   int64   `json:"totalProperties"`
	TotalBookings     int64   `json:"totalBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	TotalApplications int64   `json:"totalApplications"`
	Revenue           float64 `json:"revenue"`
}
