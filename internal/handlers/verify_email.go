package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EmailVerifier defines the interface that the verification service must implement.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, publicID, token string) error
}

// NewVerifyEmailHandler returns an HTTP handler consuming an email verification link.
// @Summary Verify email by link
// @Description Consumes the pending verification token of the account. A token verifies once.
// @Tags users
// @Produce json
// @Param publicId path string true "Account public id"
// @Param token path string true "Verification token"
// @Success 200 {object} handlers.Response "Email verified"
// @Failure 401 {object} handlers.Response "Invalid or expired token"
// @Router /users/email-verification/{publicId}/{token} [get]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicID := chi.URLParam(r, "publicId")
		token := chi.URLParam(r, "token")

		if err := svc.VerifyEmail(r.Context(), publicID, token); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Email verified successfully")
	}
}
