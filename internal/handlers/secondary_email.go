package handlers

import (
	"context"
	"net/http"
)

// SecondaryEmailer defines the secondary email operations used by the handlers.
type SecondaryEmailer interface {
	SendSecondaryEmailOTP(ctx context.Context, publicID, email string) error
	VerifySecondaryEmailOTP(ctx context.Context, publicID, email, code string) error
}

// SecondaryEmailRequest represents the JSON body for secondary email verification
// swagger:model SecondaryEmailRequest
type SecondaryEmailRequest struct {
	// required: true
	// default: john.alt@example.com
	SecondaryEmail string `json:"secondaryEmail"`

	// Required when verifying
	OTP string `json:"otp,omitempty"`
}

// NewSendSecondaryEmailOTPHandler returns an HTTP handler mailing a code to a secondary email.
// @Summary Send secondary email OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.SecondaryEmailRequest true "Secondary email"
// @Success 200 {object} handlers.Response "OTP sent"
// @Failure 400 {object} handlers.Response "Invalid email or same as primary"
// @Failure 502 {object} handlers.Response "OTP mail failed to send"
// @Router /users/send-secondary-email-otp [post]
// @Security BearerAuth
func NewSendSecondaryEmailOTPHandler(svc SecondaryEmailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req SecondaryEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.SendSecondaryEmailOTP(r.Context(), claims.PublicID, req.SecondaryEmail); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "OTP sent successfully to your secondary email")
	}
}

// NewVerifySecondaryEmailOTPHandler returns an HTTP handler storing a verified secondary email.
// @Summary Verify secondary email OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.SecondaryEmailRequest true "Secondary email and code"
// @Success 200 {object} handlers.Response "Secondary email verified"
// @Failure 400 {object} handlers.Response "Invalid or expired OTP"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Router /users/verify-secondary-email-otp [post]
// @Security BearerAuth
func NewVerifySecondaryEmailOTPHandler(svc SecondaryEmailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req SecondaryEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.VerifySecondaryEmailOTP(r.Context(), claims.PublicID, req.SecondaryEmail, req.OTP); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Secondary email verified successfully")
	}
}
