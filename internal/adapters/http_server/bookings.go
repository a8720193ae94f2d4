package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/priyanshu599/backendRantease/internal/adapters/observability"
	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/domain"
)

type createBookingRequest struct {
	PropertyID string  `json:"propertyId" validate:"required"`
	StartDate  string  `json:"startDate" validate:"required"`
	EndDate    string  `json:"endDate" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"gte=0"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	b, err := h.Bookings.Create(r.Context(), id.UserID, app.CreateBookingInput{
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			observability.ObserveBookingConflict()
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) myBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	bs, err := h.Bookings.MyBookings(r.Context(), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (h *Handlers) bookingsForProperty(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Bookings.ForProperty(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

type updateBookingRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handlers) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	b, err := h.Bookings.UpdateStatus(r.Context(), chi.URLParam(r, "bookingID"), id.UserID, domain.BookingStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// confirmedDates returns the flat array of booked-out days as ISO dates.
func (h *Handlers) confirmedDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.Bookings.ConfirmedDates(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	writeCacheable(w, r, out)
}
