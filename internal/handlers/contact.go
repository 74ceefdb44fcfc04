package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// ContactMessenger defines the interface that the contact service must implement.
type ContactMessenger interface {
	SendContactMessage(ctx context.Context, name, email, message string) (*models.ContactMessageDB, error)
}

// ContactRequest represents the JSON body of a contact-us message
// swagger:model ContactRequest
type ContactRequest struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Email string `json:"email"`
	// required: true
	Message string `json:"message"`
}

// NewContactHandler returns an HTTP handler storing a contact-us message.
// @Summary Contact us
// @Description Keeps the latest message per email and mails a confirmation.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body handlers.ContactRequest true "Message"
// @Success 200 {object} handlers.Response "Message received"
// @Failure 400 {object} handlers.Response "Missing fields or invalid email"
// @Failure 502 {object} handlers.Response "Confirmation mail failed to send"
// @Router /contact/contact-us-message [post]
func NewContactHandler(svc ContactMessenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if _, err := svc.SendContactMessage(r.Context(), req.Name, req.Email, req.Message); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Your message has been received. We will get back to you soon")
	}
}
