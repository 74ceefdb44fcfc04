package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PasswordManager defines the password operations used by the handlers.
type PasswordManager interface {
	ChangePassword(ctx context.Context, publicID, oldPassword, newPassword, confirmPassword string) error
	SendPasswordResetEmail(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, publicID, token, password, confirmPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// required: true
	OldPassword string `json:"oldPassword"`
	// required: true
	NewPassword string `json:"newPassword"`
	// required: true
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetEmailRequest represents the JSON body for requesting a reset link
// swagger:model ResetEmailRequest
type ResetEmailRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// required: true
	Password string `json:"password"`
	// required: true
	ConfirmPassword string `json:"confirmPassword"`
}

// NewChangePasswordHandler returns an HTTP handler changing the logged in user's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} handlers.Response "Password changed"
// @Failure 400 {object} handlers.Response "Mismatch, reuse or weak password"
// @Failure 401 {object} handlers.Response "Incorrect old password"
// @Failure 403 {object} handlers.Response "Google Sign-In account"
// @Failure 502 {object} handlers.Response "Confirmation mail failed to send"
// @Router /users/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		err := svc.ChangePassword(r.Context(), claims.PublicID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "User password changed successfully")
	}
}

// NewSendResetEmailHandler returns an HTTP handler mailing a password reset link.
// @Summary Send password reset email
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ResetEmailRequest true "Account email"
// @Success 200 {object} handlers.Response "Reset mail sent"
// @Failure 403 {object} handlers.Response "Google Sign-In account"
// @Failure 404 {object} handlers.Response "Account does not exist"
// @Failure 502 {object} handlers.Response "Reset mail failed to send"
// @Router /users/send-reset-password-email [post]
func NewSendResetEmailHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.SendPasswordResetEmail(r.Context(), req.Email); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Password reset email sent. Please check your email")
	}
}

// NewResetPasswordHandler returns an HTTP handler completing a password reset.
// @Summary Reset password
// @Tags users
// @Accept json
// @Produce json
// @Param publicId path string true "Account public id"
// @Param token path string true "Reset token"
// @Param request body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} handlers.Response "Password reset"
// @Failure 400 {object} handlers.Response "Mismatch or weak password"
// @Failure 401 {object} handlers.Response "Invalid or expired token"
// @Router /users/reset-password/{publicId}/{token} [post]
func NewResetPasswordHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		err := svc.ResetPassword(r.Context(),
			chi.URLParam(r, "publicId"), chi.URLParam(r, "token"),
			req.Password, req.ConfirmPassword)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "User password reset successfully")
	}
}
