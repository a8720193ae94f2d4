package app_test

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

// ---- fakes ----

type fakeBookingRepo struct {
	bookings []domain.Booking
	created  int
}

func (f *fakeBookingRepo) Create(ctx context.Context, b domain.Booking) error {
	f.bookings = append(f.bookings, b)
	f.created++
	return nil
}

func (f *fakeBookingRepo) Get(ctx context.Context, id string) (domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (f *fakeBookingRepo) Update(ctx context.Context, b domain.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBookingRepo) HasConfirmedOverlap(ctx context.Context, propertyID string, start, end time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.PropertyID != propertyID || b.Status != domain.BookingConfirmed {
			continue
		}
		if domain.Overlaps(b.StartDate, b.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) ConfirmedForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.PropertyID == propertyID && b.Status == domain.BookingConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ForTenant(ctx context.Context, tenantID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) ForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type fakePropertyRepo struct {
	props map[string]domain.Property
}

func newFakePropertyRepo(ps ...domain.Property) *fakePropertyRepo {
	m := map[string]domain.Property{}
	for _, p := range ps {
		m[p.ID] = p
	}
	return &fakePropertyRepo{props: m}
}

func (f *fakePropertyRepo) Create(ctx context.Context, p domain.Property) error {
	f.props[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) Get(ctx context.Context, id string) (domain.Property, error) {
	p, ok := f.props[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePropertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range f.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, p domain.Property) error {
	if _, ok := f.props[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.props[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.props[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.props, id)
	return nil
}

func (f *fakePropertyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.props)), nil
}

type fakeApplicationRepo struct {
	apps []domain.Application
}

func (f *fakeApplicationRepo) Create(ctx context.Context, a domain.Application) error {
	f.apps = append(f.apps, a)
	return nil
}

func (f *fakeApplicationRepo) Get(ctx context.Context, id string) (domain.Application, error) {
	for _, a := range f.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Application{}, domain.ErrNotFound
}

func (f *fakeApplicationRepo) GetForPair(ctx context.Context, propertyID, tenantID string) (domain.Application, error) {
	for _, a := range f.apps {
		if a.PropertyID == propertyID && a.TenantID == tenantID {
			return a, nil
		}
	}
	return domain.Application{}, domain.ErrNotFound
}

func (f *fakeApplicationRepo) Update(ctx context.Context, a domain.Application) error {
	for i := range f.apps {
		if f.apps[i].ID == a.ID {
			f.apps[i] = a
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeApplicationRepo) ForProperty(ctx context.Context, propertyID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range f.apps {
		if a.PropertyID == propertyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ForTenant(ctx context.Context, tenantID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range f.apps {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.apps)), nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	payments  []domain.Payment
	landlords map[string]string // propertyID -> landlordID
}

func (f *fakePaymentRepo) Create(ctx context.Context, p domain.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	return append([]domain.Payment(nil), f.payments...), nil
}

func (f *fakePaymentRepo) ForUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if f.landlords[p.PropertyID] == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) TotalAmount(ctx context.Context) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		sum += p.Amount
	}
	return sum, nil
}

type fakeCache struct {
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}
