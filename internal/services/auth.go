package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-expense-manager/internal/emails"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// VerificationTokenStore keeps the single verification token slot of an account.
type VerificationTokenStore interface {
	Issue(ctx context.Context, publicID string, token string) error
	Consume(ctx context.Context, publicID string, token string) error
}

// VerificationTokener signs and checks email verification tokens.
type VerificationTokener interface {
	GenerateVerification(ctx context.Context, publicID string) (string, error)
	ValidateVerification(ctx context.Context, publicID string, token string) error
}

// AuthService handles registration, email verification and login.
type AuthService struct {
	reader       AccountReader
	writer       AccountWriter
	slots        VerificationTokenStore
	session      SessionTokenGenerator
	verification VerificationTokener
	mailer       Mailer
	cfg          Config
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader AccountReader,
	writer AccountWriter,
	slots VerificationTokenStore,
	session SessionTokenGenerator,
	verification VerificationTokener,
	mailer Mailer,
	cfg Config,
) *AuthService {
	return &AuthService{
		reader:       reader,
		writer:       writer,
		slots:        slots,
		session:      session,
		verification: verification,
		mailer:       mailer,
		cfg:          cfg,
	}
}

// Register creates an unverified password account and mails the verification
// link. When the mail cannot be sent the account is still returned together
// with ErrEmailDelivery.
func (svc *AuthService) Register(ctx context.Context, name, email, phone, password string) (*models.AccountDB, error) {
	if !validation.Required(name, email, password) {
		return nil, ErrMissingFields
	}
	email = validation.NormalizeEmail(email)
	if !validation.Email(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.StrongPassword(password) {
		return nil, ErrWeakPassword
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check account exists", "email", email, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.FromContext(ctx).Infow("account already exists", "email", email, "provider", existing.Provider)
		if existing.Provider == models.ProviderGoogle {
			return nil, ErrGoogleAccountExists
		}
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cfg.BcryptCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "error", err)
		return nil, err
	}
	publicID, err := newPublicID()
	if err != nil {
		return nil, err
	}

	passwordHash := string(hash)
	account := &models.AccountDB{
		PublicID:     publicID,
		Provider:     models.ProviderPassword,
		Name:         name,
		Email:        email,
		PhoneNumber:  optional(phone),
		PasswordHash: &passwordHash,
	}
	if err := svc.writer.Save(ctx, account); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, ErrDuplicateAccount
		}
		logger.FromContext(ctx).Errorw("failed to save account", "email", email, "error", err)
		return nil, err
	}

	if err := svc.sendVerification(ctx, account); err != nil {
		return account, err
	}

	return account, nil
}

// sendVerification issues a fresh verification token and mails the link.
func (svc *AuthService) sendVerification(ctx context.Context, account *models.AccountDB) error {
	token, err := svc.verification.GenerateVerification(ctx, account.PublicID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate verification token", "publicID", account.PublicID, "error", err)
		return err
	}

	if err := svc.slots.Issue(ctx, account.PublicID, token); err != nil {
		logger.FromContext(ctx).Errorw("failed to store verification token", "publicID", account.PublicID, "error", err)
		return err
	}

	link := fmt.Sprintf("%s/email-verification/%s/%s", svc.cfg.ClientURL, account.PublicID, token)
	msg, err := emails.Verification(account.Name, link, svc.cfg.SupportEmail)
	if err != nil {
		return err
	}

	if err := sendMail(ctx, svc.mailer, account.Email, msg.Subject, msg.HTML); err != nil {
		logger.FromContext(ctx).Errorw("failed to send verification email", "publicID", account.PublicID, "error", err)
		return err
	}
	return nil
}

// VerifyEmail consumes the verification token and marks the account verified.
func (svc *AuthService) VerifyEmail(ctx context.Context, publicID, token string) error {
	if err := svc.verification.ValidateVerification(ctx, publicID, token); err != nil {
		logger.FromContext(ctx).Infow("verification token rejected", "publicID", publicID, "error", err)
		return ErrInvalidToken
	}

	if err := svc.slots.Consume(ctx, publicID, token); err != nil {
		if errors.Is(err, models.ErrSlotMismatch) {
			return ErrInvalidToken
		}
		logger.FromContext(ctx).Errorw("failed to consume verification token", "publicID", publicID, "error", err)
		return err
	}

	if err := svc.writer.SetVerified(ctx, publicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Errorw("failed to mark account verified", "publicID", publicID, "error", err)
		return err
	}
	return nil
}

// Login authenticates a password account and returns it with a session token.
// Unverified accounts get a new verification mail instead.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AccountDB, string, error) {
	if !validation.Required(email, password) {
		return nil, "", ErrMissingFields
	}

	account, err := svc.reader.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get account", "email", email, "error", err)
		return nil, "", err
	}
	if account == nil || !account.CanUsePassword() {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !account.IsVerified {
		if err := svc.sendVerification(ctx, account); err != nil {
			return nil, "", err
		}
		return nil, "", ErrEmailNotVerified
	}

	token, err := svc.session.Generate(ctx, account.PublicID, jwt.RoleUser)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "publicID", account.PublicID, "error", err)
		return nil, "", err
	}

	return account, token, nil
}

// GoogleLogin signs in the Google account of profile, creating it on first use.
// An email already owned by another account returns ErrDuplicateAccount.
func (svc *AuthService) GoogleLogin(ctx context.Context, profile *models.GoogleProfile) (string, error) {
	account, err := svc.reader.GetByGoogleID(ctx, profile.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get google account", "googleID", profile.ID, "error", err)
		return "", err
	}

	if account == nil {
		email := validation.NormalizeEmail(profile.Email)

		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check account exists", "email", email, "error", err)
			return "", err
		}
		if existing != nil {
			logger.FromContext(ctx).Infow("email owned by another account", "email", email, "provider", existing.Provider)
			return "", ErrDuplicateAccount
		}

		publicID, err := newPublicID()
		if err != nil {
			return "", err
		}
		name := profile.Name
		if name == "" {
			name = email
		}
		googleID := profile.ID
		account = &models.AccountDB{
			PublicID:   publicID,
			Provider:   models.ProviderGoogle,
			Name:       name,
			Email:      email,
			GoogleID:   &googleID,
			IsVerified: true,
		}
		if err := svc.writer.Save(ctx, account); err != nil {
			if errors.Is(err, models.ErrConflict) {
				return "", ErrDuplicateAccount
			}
			logger.FromContext(ctx).Errorw("failed to save google account", "email", email, "error", err)
			return "", err
		}
	}

	token, err := svc.session.Generate(ctx, account.PublicID, jwt.RoleUser)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "publicID", account.PublicID, "error", err)
		return "", err
	}
	return token, nil
}
