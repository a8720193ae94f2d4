// internal/adapters/http_server/handlers.go
package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/domain"
)

type Handlers struct {
	Bookings     *app.BookingService
	Applications *app.ApplicationService
	Properties   *app.PropertyService
	Payments     *app.PaymentService
	Messages     *app.MessageService
	Admin        *app.AdminService

	validate *validator.Validate
}

func NewHandlers(
	b *app.BookingService,
	a *app.ApplicationService,
	p *app.PropertyService,
	pay *app.PaymentService,
	m *app.MessageService,
	adm *app.AdminService,
) *Handlers {
	return &Handlers{
		Bookings:     b,
		Applications: a,
		Properties:   p,
		Payments:     pay,
		Messages:     m,
		Admin:        adm,
		validate:     validator.New(),
	}
}

// MountHandlers wires the API surface. auth resolves the caller identity
// for the protected groups; public reads stay outside it.
func (s *Server) MountHandlers(h *Handlers, auth func(http.Handler) http.Handler) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.listProperties)
			r.Get("/{id}", h.getProperty)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.With(RequireRole(domain.RoleLandlord)).Post("/", h.createProperty)
				r.Put("/{id}", h.updateProperty)
				r.Delete("/{id}", h.deleteProperty)
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/property/{propertyID}/dates", h.confirmedDates) // public calendar
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", h.createBooking)
				r.Get("/my-bookings", h.myBookings)
				r.Get("/property/{propertyID}", h.bookingsForProperty)
				r.Put("/{bookingID}", h.updateBookingStatus)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(auth)
			r.With(RequireRole(domain.RoleTenant)).Post("/{propertyID}/apply", h.apply)
			r.With(RequireRole(domain.RoleLandlord)).Get("/property/{propertyID}", h.applicationsForProperty)
			r.With(RequireRole(domain.RoleLandlord)).Put("/{id}/approve", h.approveApplication)
			r.With(RequireRole(domain.RoleLandlord)).Put("/{id}/reject", h.rejectApplication)
			r.With(RequireRole(domain.RoleTenant)).Get("/my-applications", h.myApplications)
			r.With(RequireRole(domain.RoleTenant)).Get("/my-applications/{id}", h.myApplication)
			r.Get("/status/{propertyID}", h.applicationStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(auth)
			r.Post("/create-intent", h.createPaymentIntent)
			r.With(RequireRole(domain.RoleAdmin)).Get("/", h.allPayments)
			r.Get("/my", h.myPayments)
			r.With(RequireRole(domain.RoleLandlord)).Get("/landlord", h.landlordPayments)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.sendMessage)
			r.Get("/", h.inbox)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth, RequireRole(domain.RoleAdmin))
			r.Get("/users", h.adminUsers)
			r.Delete("/users/{id}", h.adminDeleteUser)
			r.Get("/properties", h.adminProperties)
			r.Delete("/properties/{id}", h.adminDeleteProperty)
			r.Get("/analytics", h.adminAnalytics)
		})
	})
}

// parseDate accepts calendar dates with or without a time component.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, s)
	}
	return t.UTC(), nil
}

func mustIdentity(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "no identity")
	}
	return id, ok
}
