package convo

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleWebhook is the inbound edge: the transport posts one message per
// request and does not wait for the reply, so we just ACK.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		From string `json:"from"`
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.From == "" || payload.Text == "" {
		http.Error(w, "missing from or text", http.StatusBadRequest)
		return
	}

	if err := h.svc.HandleIncoming(r.Context(), payload.From, payload.Text); err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleReset reopens a completed conversation.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	if !h.svc.Reset(id) {
		http.Error(w, "conversation not completed or not found", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusOK)
}
