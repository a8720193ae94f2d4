package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) adminUsers(w http.ResponseWriter, r *http.Request) {
	us, err := h.Admin.Users(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, us)
}

func (h *Handlers) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (h *Handlers) adminProperties(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Admin.Properties(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handlers) adminDeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (h *Handlers) adminAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.Admin.Analytics(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
