package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// EmailOTPer defines the email OTP operations used by the handlers.
type EmailOTPer interface {
	SendEmailOTP(ctx context.Context, email string) (*models.AccountDB, error)
	VerifyEmailOTP(ctx context.Context, publicID, code string) error
}

// SendEmailOTPRequest represents the JSON body for requesting an email OTP
// swagger:model SendEmailOTPRequest
type SendEmailOTPRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// SendEmailOTPResponse carries the public id the code must be verified against.
// swagger:model SendEmailOTPResponse
type SendEmailOTPResponse struct {
	Response
	PublicID string `json:"publicId"`
}

// VerifyOTPRequest represents the JSON body carrying a one-time code
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// required: true
	// default: 123456
	OTP string `json:"otp"`
}

// NewSendEmailOTPHandler returns an HTTP handler that mails an email verification code.
// @Summary Send email OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.SendEmailOTPRequest true "Account email"
// @Success 200 {object} handlers.SendEmailOTPResponse "OTP sent"
// @Failure 404 {object} handlers.Response "Account does not exist"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Failure 502 {object} handlers.Response "OTP mail failed to send"
// @Router /users/send-otp-email [post]
func NewSendEmailOTPHandler(svc EmailOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendEmailOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		account, err := svc.SendEmailOTP(r.Context(), req.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SendEmailOTPResponse{
			Response: Response{Status: StatusSuccess, Message: "OTP sent successfully. Please check your email"},
			PublicID: account.PublicID,
		})
	}
}

// NewVerifyEmailOTPHandler returns an HTTP handler that verifies an email by OTP.
// @Summary Verify email OTP
// @Tags users
// @Accept json
// @Produce json
// @Param publicId path string true "Account public id"
// @Param request body handlers.VerifyOTPRequest true "One-time code"
// @Success 200 {object} handlers.Response "Email verified"
// @Failure 400 {object} handlers.Response "Invalid or expired OTP"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Router /users/verify-otp-email/{publicId} [post]
func NewVerifyEmailOTPHandler(svc EmailOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.VerifyEmailOTP(r.Context(), chi.URLParam(r, "publicId"), req.OTP); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Email verified successfully")
	}
}
