package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type BookingService struct {
	bookings   domain.BookingRepository
	properties domain.PropertyRepository
	cache      domain.Cache
	cacheTTL   time.Duration
}

func NewBookingService(b domain.BookingRepository, p domain.PropertyRepository, c domain.Cache, ttl time.Duration) *BookingService {
	return &BookingService{bookings: b, properties: p, cache: c, cacheTTL: ttl}
}

type CreateBookingInput struct {
	PropertyID string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
}

// CheckConflict reports whether any confirmed booking on the property
// overlaps [start, end] under domain.Overlaps.
func (s *BookingService) CheckConflict(ctx context.Context, propertyID string, start, end time.Time) (bool, error) {
	return s.bookings.HasConfirmedOverlap(ctx, propertyID, start, end)
}

// Create runs the conflict check and persists a new pending booking.
// The check and the insert are two separate store calls; two concurrent
// requests for overlapping dates can both pass the check. Kept as-is,
// see DESIGN.md.
func (s *BookingService) Create(ctx context.Context, tenantID string, in CreateBookingInput) (domain.Booking, error) {
	if in.PropertyID == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: propertyId, startDate and endDate are required", domain.ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return domain.Booking{}, fmt.Errorf("%w: endDate before startDate", domain.ErrValidation)
	}

	conflict, err := s.bookings.HasConfirmedOverlap(ctx, in.PropertyID, in.StartDate, in.EndDate)
	if err != nil {
		return domain.Booking{}, err
	}
	if conflict {
		return domain.Booking{}, domain.ErrConflict
	}

	b := domain.Booking{
		ID:         uuid.NewString(),
		PropertyID: in.PropertyID,
		TenantID:   tenantID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		TotalPrice: in.TotalPrice,
		Status:     domain.BookingPending,
		IsPaid:     false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// ConfirmedDates expands every confirmed booking on the property into one
// entry per calendar day, inclusive on both ends, concatenated in booking
// order. No sorting or de-duplication across bookings.
func (s *BookingService) ConfirmedDates(ctx context.Context, propertyID string) ([]time.Time, error) {
	key := "bookingdates:" + propertyID
	var cached []time.Time
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	bs, err := s.bookings.ConfirmedForProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0)
	for _, b := range bs {
		dates = append(dates, b.Days()...)
	}
	_ = s.cache.Set(ctx, key, dates, int(s.cacheTTL.Seconds()))
	return dates, nil
}

// UpdateStatus applies a landlord's confirm/cancel decision. Only the
// owner of the referenced property may update; transitions must follow
// pending->confirmed|cancelled, confirmed->cancelled. No conflict
// re-check happens on confirmation (see DESIGN.md).
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, requesterID string, status domain.BookingStatus) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}

	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	p, err := s.properties.Get(ctx, b.PropertyID)
	if err != nil {
		return domain.Booking{}, err
	}
	if !AllowOwner(requesterID, p.CreatedBy) {
		return domain.Booking{}, domain.ErrForbidden
	}
	if !b.Status.CanTransition(status) {
		return domain.Booking{}, fmt.Errorf("%w: cannot move booking from %s to %s", domain.ErrValidation, b.Status, status)
	}

	b.Status = status
	if err := s.bookings.Update(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	// Status changes shift the confirmed-dates view for the property.
	_ = s.cache.Del(ctx, "bookingdates:"+b.PropertyID)
	return b, nil
}

// MyBookings lists the tenant's bookings, newest first.
func (s *BookingService) MyBookings(ctx context.Context, tenantID string) ([]domain.Booking, error) {
	return s.bookings.ForTenant(ctx, tenantID)
}

// ForProperty lists all bookings on a property sorted by start date.
func (s *BookingService) ForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	return s.bookings.ForProperty(ctx, propertyID)
}
