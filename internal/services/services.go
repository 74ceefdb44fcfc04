package services

//go:generate mockgen -destination=services_mock.go -package=services . AccountReader,AccountWriter,SessionTokenGenerator,Mailer,VerificationTokenStore,VerificationTokener,ResetTokener,OTPStore,PhoneBindingStore,SMSSender,TransactionWriter,TransactionReader,KafkaWriter,ContactWriter,AdminReader,AdminWriter

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// Error variables
var (
	ErrDuplicateAccount    = errors.New("account already exists")
	ErrGoogleAccountExists = fmt.Errorf("%w: email is registered with Google Sign-In", ErrDuplicateAccount)
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("email is not verified, verification mail sent")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidOTP          = errors.New("invalid or expired otp")
	ErrOTPConsumed         = errors.New("otp already used")
	ErrAccountNotFound     = errors.New("account does not exist")
	ErrGoogleAccount       = errors.New("not available for Google Sign-In accounts")
	ErrIncorrectPassword   = errors.New("incorrect old password")
	ErrPasswordMismatch    = errors.New("password and confirm password mismatched")
	ErrPasswordReused      = errors.New("old password and new password should not be same")
	ErrWeakPassword        = errors.New("password must be at least 8 characters and contain lowercase, uppercase, digit and symbol")
	ErrInvalidEmail        = errors.New("email must be a valid email")
	ErrInvalidPhone        = errors.New("phone number must contain 10 to 15 digits")
	ErrMissingFields       = errors.New("all fields are required")
	ErrSameAsPrimaryEmail  = errors.New("secondary email must differ from primary email")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrInvalidFilter       = errors.New("invalid transaction filter")
	ErrEmailDelivery       = errors.New("failed to send email")
	ErrSMSDelivery         = errors.New("failed to send sms")
	ErrAdminNotFound       = errors.New("admin does not exist")
)

// Config holds settings shared by services.
type Config struct {
	ClientURL    string // SPA origin used in links
	SupportEmail string // reply-to shown in mail footers
	BcryptCost   int
}

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.AccountDB, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account *models.AccountDB) error
	SetVerified(ctx context.Context, publicID string) error
	SetPasswordHash(ctx context.Context, publicID string, hash string) error
	UpdateProfile(ctx context.Context, publicID string, p models.ProfileUpdate) error
	SetPhone(ctx context.Context, publicID string, phone string, verified bool) error
	SetSecondaryEmail(ctx context.Context, publicID string, email *string, verified bool) error
}

// SessionTokenGenerator issues session tokens.
type SessionTokenGenerator interface {
	Generate(ctx context.Context, publicID string, role string) (string, error)
}

// Mailer sends HTML email.
type Mailer interface {
	SendMail(ctx context.Context, to string, subject string, html string) error
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func newPublicID() (string, error) {
	return gonanoid.Generate(idAlphabet, 10)
}

func newTransactionID() (string, error) {
	return gonanoid.Generate(idAlphabet, 16)
}

func newAdminKey() (string, error) {
	return gonanoid.Generate(idAlphabet, 16)
}

// newOTP returns a random 6 digit code.
func newOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sendMail wraps delivery failures in ErrEmailDelivery.
func sendMail(ctx context.Context, mailer Mailer, to, subject, html string) error {
	if err := mailer.SendMail(ctx, to, subject, html); err != nil {
		return fmt.Errorf("%w: %w", ErrEmailDelivery, err)
	}
	return nil
}
