package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// ProfileManager defines the profile operations used by the handlers.
type ProfileManager interface {
	GetProfile(ctx context.Context, publicID string) (*models.AccountDB, error)
	UpdateProfile(ctx context.Context, publicID string, p models.ProfileUpdate) error
	RemoveSecondaryEmail(ctx context.Context, publicID string) error
}

// Display defaults for unset profile fields.
const (
	notProvided    = "Not Provided"
	preferNotToSay = "Prefer not to say"
)

// ProfileUser is the logged in user's profile.
// swagger:model ProfileUser
type ProfileUser struct {
	PublicID                 string    `json:"publicId"`
	Name                     string    `json:"name"`
	Email                    string    `json:"email"`
	RegisteredWith           string    `json:"registeredWith"`
	PhoneNumber              string    `json:"phoneNumber"`
	IsPhoneVerified          bool      `json:"isPhoneVerified"`
	Address                  string    `json:"address"`
	FavouriteSport           string    `json:"favouriteSport"`
	BirthDate                string    `json:"birthDate"`
	Gender                   string    `json:"gender"`
	IsVerified               bool      `json:"isVerified"`
	SecondaryEmail           *string   `json:"secondaryEmail"`
	IsSecondaryEmailVerified bool      `json:"isSecondaryEmailVerified"`
	CreatedAt                time.Time `json:"createdAt"`
}

// ProfileResponse wraps the profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	User ProfileUser `json:"user"`
}

// UpdateProfileRequest represents the JSON body for a profile update. All fields are required.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Address        string `json:"address"`
	BirthDate      string `json:"birthDate"`
	FavouriteSport string `json:"favouriteSport"`
	Gender         string `json:"gender"`
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func registeredWith(p models.Provider) string {
	if p == models.ProviderGoogle {
		return "GOOGLE"
	}
	return registeredWithEmail
}

func newProfileUser(a *models.AccountDB) ProfileUser {
	return ProfileUser{
		PublicID:                 a.PublicID,
		Name:                     a.Name,
		Email:                    a.Email,
		RegisteredWith:           registeredWith(a.Provider),
		PhoneNumber:              orDefault(a.PhoneNumber, notProvided),
		IsPhoneVerified:          a.IsPhoneVerified,
		Address:                  orDefault(a.Address, notProvided),
		FavouriteSport:           orDefault(a.FavouriteSport, notProvided),
		BirthDate:                orDefault(a.BirthDate, ""),
		Gender:                   orDefault(a.Gender, preferNotToSay),
		IsVerified:               a.IsVerified,
		SecondaryEmail:           a.SecondaryEmail,
		IsSecondaryEmailVerified: a.IsSecondaryEmailVerified,
		CreatedAt:                a.CreatedAt,
	}
}

// NewLoggedUserHandler returns an HTTP handler with the logged in user's profile.
// @Summary Logged user profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 404 {object} handlers.Response "Account does not exist"
// @Router /users/logged-user [get]
// @Security BearerAuth
func NewLoggedUserHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		account, err := svc.GetProfile(r.Context(), claims.PublicID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{User: newProfileUser(account)})
	}
}

// NewUpdateProfileHandler returns an HTTP handler overwriting the logged in user's profile.
// @Summary Update profile
// @Description Every field is required. Changing the phone number resets its verification.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile"
// @Success 200 {object} handlers.Response "Profile updated"
// @Failure 400 {object} handlers.Response "Missing fields or invalid email"
// @Failure 409 {object} handlers.Response "Email used by another account"
// @Router /users/update-user-profile [post]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req UpdateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		err := svc.UpdateProfile(r.Context(), claims.PublicID, models.ProfileUpdate{
			Name:           req.Name,
			Email:          req.Email,
			PhoneNumber:    req.PhoneNumber,
			Address:        req.Address,
			BirthDate:      req.BirthDate,
			FavouriteSport: req.FavouriteSport,
			Gender:         req.Gender,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "User profile updated successfully")
	}
}

// NewRemoveSecondaryEmailHandler returns an HTTP handler clearing the secondary email.
// @Summary Remove secondary email
// @Tags users
// @Produce json
// @Success 200 {object} handlers.Response "Secondary email removed"
// @Failure 404 {object} handlers.Response "Account does not exist"
// @Router /users/remove-secondary-email [post]
// @Security BearerAuth
func NewRemoveSecondaryEmailHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveSecondaryEmail(r.Context(), claims.PublicID); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Secondary email removed successfully")
	}
}
