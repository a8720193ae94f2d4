package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshu599/backendRantease/internal/app"
)

type sendMessageRequest struct {
	ReceiverID string  `json:"receiverId" validate:"required"`
	PropertyID *string `json:"propertyId"`
	Content    string  `json:"content" validate:"required"`
}

func (h *Handlers) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	m, err := h.Messages.Send(r.Context(), id.UserID, app.SendMessageInput{
		ReceiverID: req.ReceiverID,
		PropertyID: req.PropertyID,
		Content:    req.Content,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) inbox(w http.ResponseWriter, r *http.Request) {
	id, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	ms, err := h.Messages.Inbox(r.Context(), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}
