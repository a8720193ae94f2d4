package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/domain"
)

func newAdminFixture() (*app.AdminService, *fakeUserRepo, *fakePropertyRepo, *fakeCache) {
	users := &fakeUserRepo{users: []domain.User{
		{ID: "u-1", Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Role: domain.RoleTenant},
		{ID: "u-2", Name: "Ben", Email: "ben@example.com", PasswordHash: "x", Role: domain.RoleTenant},
		{ID: "u-3", Name: "Carol", Email: "carol@example.com", PasswordHash: "x", Role: domain.RoleLandlord},
		{ID: "u-4", Name: "Root", Email: "root@example.com", PasswordHash: "x", Role: domain.RoleAdmin},
	}}
	props := newFakePropertyRepo(
		domain.Property{ID: "prop-1", CreatedBy: "u-3"},
		domain.Property{ID: "prop-2", CreatedBy: "u-3"},
	)
	cache := &fakeCache{}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: "b-1", PropertyID: "prop-1", Status: domain.BookingConfirmed, StartDate: day("2024-01-01"), EndDate: day("2024-01-02")},
		{ID: "b-2", PropertyID: "prop-1", Status: domain.BookingPending, StartDate: day("2024-02-01"), EndDate: day("2024-02-02")},
		{ID: "b-3", PropertyID: "prop-2", Status: domain.BookingCancelled, StartDate: day("2024-03-01"), EndDate: day("2024-03-02")},
	}}
	apps := &fakeApplicationRepo{apps: []domain.Application{
		{ID: "a-1", PropertyID: "prop-1", TenantID: "u-1", Status: domain.ApplicationApproved},
	}}
	payments := &fakePaymentRepo{payments: []domain.Payment{
		{ID: "p-1", PropertyID: "prop-1", Amount: 150.5},
		{ID: "p-2", PropertyID: "prop-2", Amount: 49.5},
	}}
	return app.NewAdminService(users, props, bookings, apps, payments, cache), users, props, cache
}

func TestAdminUsersStripHash(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	views, err := svc.Users(context.Background())
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("got %d users, want 4", len(views))
	}
	for _, v := range views {
		if v.ID == "" || v.Email == "" {
			t.Fatalf("view %+v missing identity fields", v)
		}
	}
}

func TestAdminDeleteProperty(t *testing.T) {
	svc, _, props, cache := newAdminFixture()
	ctx := context.Background()

	cache.Set(ctx, "property:prop-1", domain.Property{ID: "prop-1"}, 60)

	// Admin deletion ignores ownership.
	if err := svc.DeleteProperty(ctx, "prop-1"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if _, ok := props.props["prop-1"]; ok {
		t.Fatal("property still present after delete")
	}
	var p domain.Property
	if ok, _ := cache.Get(ctx, "property:prop-1", &p); ok {
		t.Fatal("cache entry must be invalidated on delete")
	}
}

func TestAdminAnalytics(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := svc.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	want := domain.Analytics{
		TotalUsers:        4,
		Tenants:           2,
		Landlords:         1,
		TotalProperties:   2,
		TotalBookings:     3,
		ConfirmedBookings: 1,
		TotalApplications: 1,
		Revenue:           200,
	}
	if a != want {
		t.Fatalf("analytics = %+v, want %+v", a, want)
	}
}
