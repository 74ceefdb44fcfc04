package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuthFacade runs the Google authorization code flow.
type GoogleOAuthFacade struct {
	config      *oauth2.Config
	userInfoURL string
}

// GoogleOption configures GoogleOAuthFacade.
type GoogleOption func(*GoogleOAuthFacade)

// WithGoogleEndpoint overrides the authorization and token URLs.
func WithGoogleEndpoint(authURL, tokenURL string) GoogleOption {
	return func(f *GoogleOAuthFacade) {
		f.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}
}

// WithGoogleUserInfoURL overrides the profile endpoint.
func WithGoogleUserInfoURL(url string) GoogleOption {
	return func(f *GoogleOAuthFacade) {
		f.userInfoURL = url
	}
}

func NewGoogleOAuthFacade(clientID, clientSecret, callbackURL string, opts ...GoogleOption) *GoogleOAuthFacade {
	f := &GoogleOAuthFacade{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     endpoints.Google,
		},
		userInfoURL: defaultGoogleUserInfoURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthCodeURL returns the consent page URL carrying state.
func (f *GoogleOAuthFacade) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for a token and fetches the profile.
func (f *GoogleOAuthFacade) Exchange(ctx context.Context, code string) (*models.GoogleProfile, error) {
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("google code exchange failed", "error", err)
		return nil, fmt.Errorf("google exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.config.Client(ctx, token).Do(req)
	if err != nil {
		logger.Log.Errorw("google userinfo request failed", "error", err)
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo: unexpected status %d", resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, fmt.Errorf("google userinfo: incomplete profile")
	}

	return &profile, nil
}
