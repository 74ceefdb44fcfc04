package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminDB represents an admin row. The admin key is stored hashed.
type AdminDB struct {
	AdminID     string    `json:"admin_id" db:"admin_id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	KeyHash     string    `json:"-" db:"key_hash"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DashboardUser is one account row of the admin dashboard with its totals.
type DashboardUser struct {
	PublicID       string          `json:"public_id" db:"public_id"`
	Name           string          `json:"name" db:"name"`
	Email          string          `json:"email" db:"email"`
	PhoneNumber    *string         `json:"phone_number" db:"phone_number"`
	Provider       Provider        `json:"provider" db:"provider"`
	Address        *string         `json:"address" db:"address"`
	FavouriteSport *string         `json:"favourite_sport" db:"favourite_sport"`
	Gender         *string         `json:"gender" db:"gender"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	TotalIncome    decimal.Decimal `json:"total_income" db:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense" db:"total_expense"`
	TotalTurnover  decimal.Decimal `json:"total_turnover" db:"total_turnover"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	TotalUsers    int             `json:"total_users"`
	TotalTurnover decimal.Decimal `json:"total_turnover"`
	Users         []DashboardUser `json:"users"`
}
