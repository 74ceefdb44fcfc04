package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
)

// GoogleOAuthProvider performs the OAuth2 code flow with Google.
type GoogleOAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*models.GoogleProfile, error)
}

// GoogleLoginer defines the interface that the auth service must implement.
type GoogleLoginer interface {
	GoogleLogin(ctx context.Context, profile *models.GoogleProfile) (string, error)
}

const (
	oauthSessionName = "oauth"
	oauthStateKey    = "state"
)

var errStateMismatch = errors.New("oauth state mismatch")

// NewGoogleLoginHandler returns an HTTP handler redirecting to the Google consent page.
// @Summary Google sign-in
// @Description Stores a random state in a session cookie and redirects to Google.
// @Tags users
// @Success 307 "Redirect to Google"
// @Router /users/auth/google [get]
func NewGoogleLoginHandler(provider GoogleOAuthProvider, store sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := gonanoid.New()
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to generate oauth state", "error", err)
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		session, _ := store.Get(r, oauthSessionName)
		session.Values[oauthStateKey] = state
		if err := session.Save(r, w); err != nil {
			logger.FromContext(r.Context()).Errorw("failed to save oauth session", "error", err)
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// NewGoogleCallbackHandler returns an HTTP handler completing Google sign-in.
// The browser is sent back to the client with a session token or an error.
// @Summary Google sign-in callback
// @Tags users
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307 "Redirect to {CLIENT_URL}/google-auth-success?token=..."
// @Failure 307 "Redirect to {CLIENT_URL}/login?error=..."
// @Router /users/auth/google/callback [get]
func NewGoogleCallbackHandler(provider GoogleOAuthProvider, svc GoogleLoginer, store sessions.Store, clientURL string) http.HandlerFunc {
	fail := func(w http.ResponseWriter, r *http.Request, message string) {
		http.Redirect(w, r, clientURL+"/login?error="+url.QueryEscape(message), http.StatusTemporaryRedirect)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session, _ := store.Get(r, oauthSessionName)
		expected, _ := session.Values[oauthStateKey].(string)
		delete(session.Values, oauthStateKey)
		if err := session.Save(r, w); err != nil {
			logger.FromContext(r.Context()).Errorw("failed to clear oauth session", "error", err)
		}

		if expected == "" || r.URL.Query().Get("state") != expected {
			logger.FromContext(r.Context()).Errorw("google callback rejected", "error", errStateMismatch)
			fail(w, r, "Google sign-in failed")
			return
		}

		profile, err := provider.Exchange(ctx, r.URL.Query().Get("code"))
		if err != nil {
			logger.FromContext(r.Context()).Errorw("google code exchange failed", "error", err)
			fail(w, r, "Google sign-in failed")
			return
		}

		token, err := svc.GoogleLogin(ctx, profile)
		if err != nil {
			message := "Google sign-in failed"
			if errors.Is(err, services.ErrDuplicateAccount) {
				message = "This email is registered with a password. Please log in with email and password"
			} else {
				logger.FromContext(r.Context()).Errorw("google login failed", "email", profile.Email, "error", err)
			}
			fail(w, r, message)
			return
		}

		http.Redirect(w, r, clientURL+"/google-auth-success?token="+url.QueryEscape(token), http.StatusTemporaryRedirect)
	}
}
