package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type AdminService struct {
	users        domain.UserRepository
	properties   domain.PropertyRepository
	bookings     domain.BookingRepository
	applications domain.ApplicationRepository
	payments     domain.PaymentRepository
	cache        domain.Cache
}

func NewAdminService(
	u domain.UserRepository,
	p domain.PropertyRepository,
	b domain.BookingRepository,
	a domain.ApplicationRepository,
	pay domain.PaymentRepository,
	c domain.Cache,
) *AdminService {
	return &AdminService{users: u, properties: p, bookings: b, applications: a, payments: pay, cache: c}
}

// Users lists every user with the password hash stripped.
func (s *AdminService) Users(ctx context.Context) ([]domain.UserView, error) {
	us, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserView, 0, len(us))
	for _, u := range us {
		out = append(out, u.View())
	}
	return out, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *AdminService) Properties(ctx context.Context) ([]domain.Property, error) {
	return s.properties.List(ctx)
}

// DeleteProperty removes any property regardless of ownership.
func (s *AdminService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.properties.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	return nil
}

// Analytics gathers platform-wide counts. The counts are independent
// reads, so they run concurrently.
func (s *AdminService) Analytics(ctx context.Context) (domain.Analytics, error) {
	var a domain.Analytics
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		tenants, err := s.users.CountByRole(ctx, domain.RoleTenant)
		if err != nil {
			return err
		}
		landlords, err := s.users.CountByRole(ctx, domain.RoleLandlord)
		if err != nil {
			return err
		}
		admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		a.Tenants, a.Landlords = tenants, landlords
		a.TotalUsers = tenants + landlords + admins
		return nil
	})
	g.Go(func() (err error) {
		a.TotalProperties, err = s.properties.Count(ctx)
		return err
	})
	g.Go(func() error {
		for _, st := range []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled} {
			n, err := s.bookings.CountByStatus(ctx, st)
			if err != nil {
				return err
			}
			a.TotalBookings += n
			if st == domain.BookingConfirmed {
				a.ConfirmedBookings = n
			}
		}
		return nil
	})
	g.Go(func() (err error) {
		a.TotalApplications, err = s.applications.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		a.Revenue, err = s.payments.TotalAmount(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Analytics{}, err
	}
	return a, nil
}
