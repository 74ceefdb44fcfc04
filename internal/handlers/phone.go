package handlers

import (
	"context"
	"net/http"
)

// PhoneOTPer defines the phone verification operations used by the handlers.
type PhoneOTPer interface {
	SendPhoneOTP(ctx context.Context, phone string) error
	VerifyPhoneOTP(ctx context.Context, phone, code string) error
	SendProfilePhoneOTP(ctx context.Context, publicID, phone string) error
	VerifyProfilePhoneOTP(ctx context.Context, publicID, phone, code string) error
}

// PhoneOTPRequest represents the JSON body for phone verification
// swagger:model PhoneOTPRequest
type PhoneOTPRequest struct {
	// required: true
	// default: 9876543210
	PhoneNumber string `json:"phoneNumber"`

	// Required when verifying
	// default: 123456
	OTP string `json:"otp,omitempty"`
}

// NewSendPhoneOTPHandler returns an HTTP handler texting a signup phone code.
// @Summary Send phone OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.PhoneOTPRequest true "Phone number"
// @Success 200 {object} handlers.Response "OTP sent"
// @Failure 400 {object} handlers.Response "Invalid phone number"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Failure 502 {object} handlers.Response "SMS failed to send"
// @Router /users/send-otp-phone [post]
func NewSendPhoneOTPHandler(svc PhoneOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PhoneOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.SendPhoneOTP(r.Context(), req.PhoneNumber); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "OTP sent successfully to your phone number")
	}
}

// NewVerifyPhoneOTPHandler returns an HTTP handler verifying a signup phone code.
// @Summary Verify phone OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.PhoneOTPRequest true "Phone number and code"
// @Success 200 {object} handlers.Response "Phone verified"
// @Failure 400 {object} handlers.Response "Invalid or expired OTP"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Router /users/verify-otp-phone [post]
func NewVerifyPhoneOTPHandler(svc PhoneOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PhoneOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.VerifyPhoneOTP(r.Context(), req.PhoneNumber, req.OTP); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Phone number verified successfully")
	}
}

// NewSendProfilePhoneOTPHandler returns an HTTP handler texting a code for the profile phone.
// @Summary Send profile phone OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.PhoneOTPRequest true "Phone number"
// @Success 200 {object} handlers.Response "OTP sent"
// @Failure 400 {object} handlers.Response "Invalid phone number"
// @Failure 502 {object} handlers.Response "SMS failed to send"
// @Router /users/send-phone-otp-profile [post]
// @Security BearerAuth
func NewSendProfilePhoneOTPHandler(svc PhoneOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req PhoneOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.SendProfilePhoneOTP(r.Context(), claims.PublicID, req.PhoneNumber); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "OTP sent successfully to your phone number")
	}
}

// NewVerifyProfilePhoneOTPHandler returns an HTTP handler verifying the profile phone.
// @Summary Verify profile phone OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.PhoneOTPRequest true "Phone number and code"
// @Success 200 {object} handlers.Response "Phone verified"
// @Failure 400 {object} handlers.Response "Invalid or expired OTP"
// @Failure 409 {object} handlers.Response "OTP already used"
// @Router /users/verify-phone-otp-profile [post]
// @Security BearerAuth
func NewVerifyProfilePhoneOTPHandler(svc PhoneOTPer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req PhoneOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.VerifyProfilePhoneOTP(r.Context(), claims.PublicID, req.PhoneNumber, req.OTP); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Phone number verified successfully")
	}
}
