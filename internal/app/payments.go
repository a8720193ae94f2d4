package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type PaymentService struct {
	payments domain.PaymentRepository
	bookings domain.BookingRepository
}

func NewPaymentService(p domain.PaymentRepository, b domain.BookingRepository) *PaymentService {
	return &PaymentService{payments: p, bookings: b}
}

// CreateIntent records a successful payment against a booking and marks
// it paid. No gateway round-trip happens here.
func (s *PaymentService) CreateIntent(ctx context.Context, userID, bookingID string, amount float64) (domain.Payment, error) {
	if amount < 1 {
		return domain.Payment{}, fmt.Errorf("%w: invalid payment amount", domain.ErrValidation)
	}
	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return domain.Payment{}, err
	}

	p := domain.Payment{
		ID:         uuid.NewString(),
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		UserID:     userID,
		Amount:     amount,
		Status:     "success",
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return domain.Payment{}, err
	}

	b.IsPaid = true
	if err := s.bookings.Update(ctx, b); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

// All lists every payment on the platform.
func (s *PaymentService) All(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

// ForUser lists a tenant's own payments.
func (s *PaymentService) ForUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	return s.payments.ForUser(ctx, userID)
}

// ForLandlord lists payments made against the landlord's properties.
func (s *PaymentService) ForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	return s.payments.ForLandlord(ctx, landlordID)
}
