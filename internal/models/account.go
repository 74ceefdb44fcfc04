package models

import "time"

// Provider tells how an account authenticates.
type Provider string

const (
	ProviderPassword Provider = "password" // email + password
	ProviderGoogle   Provider = "google"   // Google sign-in, no password
)

// AccountDB represents an account row. Password and Google accounts share
// one table and one public identifier space; the email is unique across both.
type AccountDB struct {
	PublicID                 string    `json:"public_id" db:"public_id"`                                     // Opaque external identifier
	Provider                 Provider  `json:"provider" db:"provider"`                                       // Account variant
	Name                     string    `json:"name" db:"name"`                                               // Display name
	Email                    string    `json:"email" db:"email"`                                             // Primary email
	PhoneNumber              *string   `json:"phone_number" db:"phone_number"`                               // Optional phone
	PasswordHash             *string   `json:"-" db:"password_hash"`                                         // Password variant only
	GoogleID                 *string   `json:"-" db:"google_id"`                                             // Google variant only
	IsVerified               bool      `json:"is_verified" db:"is_verified"`                                 // Primary email verified
	IsPhoneVerified          bool      `json:"is_phone_verified" db:"is_phone_verified"`                     // Phone verified
	SecondaryEmail           *string   `json:"secondary_email" db:"secondary_email"`                         // Optional secondary email
	IsSecondaryEmailVerified bool      `json:"is_secondary_email_verified" db:"is_secondary_email_verified"` // Secondary email verified
	Address                  *string   `json:"address" db:"address"`
	BirthDate                *string   `json:"birth_date" db:"birth_date"`
	FavouriteSport           *string   `json:"favourite_sport" db:"favourite_sport"`
	Gender                   *string   `json:"gender" db:"gender"`
	CreatedAt                time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time `json:"updated_at" db:"updated_at"`
}

// CanUsePassword reports whether password operations apply to the account.
func (a *AccountDB) CanUsePassword() bool {
	return a.Provider == ProviderPassword && a.PasswordHash != nil
}

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	Name            string
	Email           string
	PhoneNumber     string
	IsPhoneVerified bool
	Address         string
	BirthDate       string
	FavouriteSport  string
	Gender          string
}

// GoogleProfile is the identity returned by Google after sign-in.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
