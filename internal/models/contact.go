package models

import "time"

// ContactMessageDB represents the latest contact-us message sent from an email.
type ContactMessageDB struct {
	ContactID string    `json:"contact_id" db:"contact_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
