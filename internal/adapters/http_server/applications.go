package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/priyanshu599/backendRantease/internal/adapters/observability"
)

type applyRequest struct {
	Message string `json:"message"`
}

type applyResponse struct {
	Message     string `json:"message"`
	Application any    `json:"application"`
}

func (h *Handlers) apply(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req applyRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // message is optional
	}

	a, resubmitted, err := h.Applications.Apply(r.Context(), chi.URLParam(r, "propertyID"), id.UserID, req.Message)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if resubmitted {
		writeJSON(w, http.StatusOK, applyResponse{Message: "Your application has been re-submitted successfully.", Application: a})
		return
	}
	writeJSON(w, http.StatusCreated, applyResponse{Message: "Application submitted successfully!", Application: a})
}

func (h *Handlers) applicationsForProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	as, err := h.Applications.ForProperty(r.Context(), chi.URLParam(r, "propertyID"), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, as)
}

func (h *Handlers) approveApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	a, err := h.Applications.Approve(r.Context(), chi.URLParam(r, "id"), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	observability.ObserveApplicationDecision("approved")
	writeJSON(w, http.StatusOK, a)
}

func (h *Handlers) rejectApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	a, err := h.Applications.Reject(r.Context(), chi.URLParam(r, "id"), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	observability.ObserveApplicationDecision("rejected")
	writeJSON(w, http.StatusOK, a)
}

func (h *Handlers) myApplications(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	as, err := h.Applications.MyApplications(r.Context(), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, as)
}

func (h *Handlers) myApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	a, err := h.Applications.MyApplication(r.Context(), chi.URLParam(r, "id"), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handlers) applicationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	st, err := h.Applications.Status(r.Context(), chi.URLParam(r, "propertyID"), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(st)})
}
