package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, phone, password string) (*models.AccountDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Optional phone number
	// default: 9876543210
	PhoneNumber string `json:"phoneNumber"`

	// At least 8 characters with lowercase, uppercase, digit and symbol
	// required: true
	// default: Secret#123
	Password string `json:"password"`
}

// RegisteredUser is the public part of a freshly registered account.
// swagger:model RegisteredUser
type RegisteredUser struct {
	PublicID   string `json:"publicId"`
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Response
	// default: EMAIL
	RegisteredWith string         `json:"registeredWith"`
	User           RegisteredUser `json:"user"`
}

// registeredWithEmail marks password accounts in auth responses.
const registeredWithEmail = "EMAIL"

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a password account and mails a verification link. The email must not be used by any account, Google accounts included.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.Response "Missing fields, invalid email or weak password"
// @Failure 409 {object} handlers.Response "Email already registered"
// @Failure 502 {object} handlers.Response "Verification mail failed to send"
// @Failure 500 {object} handlers.Response "Internal server error"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		account, err := svc.Register(r.Context(), req.Name, req.Email, req.PhoneNumber, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Response: Response{
				Status:  StatusSuccess,
				Message: "Successfully registered. Please verify your email",
			},
			RegisteredWith: registeredWithEmail,
			User: RegisteredUser{
				PublicID:   account.PublicID,
				Name:       account.Name,
				IsVerified: account.IsVerified,
			},
		})
	}
}
