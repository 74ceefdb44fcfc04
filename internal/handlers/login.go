package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AccountDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// required: true
	// default: Secret#123
	Password string `json:"password"`
}

// LoggedInUser is the account summary returned on login.
// swagger:model LoggedInUser
type LoggedInUser struct {
	PublicID   string `json:"publicId"`
	Name       string `json:"name"`
	Token      string `json:"token"`
	IsVerified bool   `json:"isVerified"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Response
	// default: EMAIL
	RegisteredWith string       `json:"registeredWith"`
	User           LoggedInUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a password account and returns a session token. Unverified accounts get a fresh verification mail and 403.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 401 {object} handlers.Response "Invalid email or password"
// @Failure 403 {object} handlers.Response "Email not verified"
// @Failure 502 {object} handlers.Response "Verification mail failed to send"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		account, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Response:       Response{Status: StatusSuccess, Message: "Successfully logged in"},
			RegisteredWith: registeredWithEmail,
			User: LoggedInUser{
				PublicID:   account.PublicID,
				Name:       account.Name,
				Token:      token,
				IsVerified: account.IsVerified,
			},
		})
	}
}
