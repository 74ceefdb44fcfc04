package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-expense-manager/internal/emails"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// ResetTokener signs and checks password reset tokens.
type ResetTokener interface {
	GenerateReset(ctx context.Context, publicID string) (string, error)
	ValidateReset(ctx context.Context, publicID string, token string) error
}

// PasswordService handles password change and reset.
type PasswordService struct {
	reader AccountReader
	writer AccountWriter
	reset  ResetTokener
	mailer Mailer
	cfg    Config
}

// NewPasswordService creates a new PasswordService instance.
func NewPasswordService(reader AccountReader, writer AccountWriter, reset ResetTokener, mailer Mailer, cfg Config) *PasswordService {
	return &PasswordService{
		reader: reader,
		writer: writer,
		reset:  reset,
		mailer: mailer,
		cfg:    cfg,
	}
}

// ChangePassword replaces the password of a logged in password account.
func (svc *PasswordService) ChangePassword(ctx context.Context, publicID, oldPassword, newPassword, confirmPassword string) error {
	if !validation.Required(oldPassword, newPassword, confirmPassword) {
		return ErrMissingFields
	}

	account, err := svc.account(ctx, publicID)
	if err != nil {
		return err
	}
	if !account.CanUsePassword() {
		return ErrGoogleAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if newPassword == oldPassword {
		return ErrPasswordReused
	}
	if !validation.StrongPassword(newPassword) {
		return ErrWeakPassword
	}

	return svc.setPassword(ctx, account, newPassword)
}

// SendPasswordResetEmail mails a reset link to a password account.
func (svc *PasswordService) SendPasswordResetEmail(ctx context.Context, email string) error {
	if !validation.Required(email) {
		return ErrMissingFields
	}

	account, err := svc.reader.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get account", "email", email, "error", err)
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if !account.CanUsePassword() {
		return ErrGoogleAccount
	}

	token, err := svc.reset.GenerateReset(ctx, account.PublicID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate reset token", "publicID", account.PublicID, "error", err)
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s/%s", svc.cfg.ClientURL, account.PublicID, token)
	msg, err := emails.PasswordReset(account.Name, link, svc.cfg.SupportEmail)
	if err != nil {
		return err
	}
	if err := sendMail(ctx, svc.mailer, account.Email, msg.Subject, msg.HTML); err != nil {
		logger.FromContext(ctx).Errorw("failed to send reset email", "publicID", account.PublicID, "error", err)
		return err
	}
	return nil
}

// ResetPassword sets a new password using a reset token.
func (svc *PasswordService) ResetPassword(ctx context.Context, publicID, token, password, confirmPassword string) error {
	if !validation.Required(password, confirmPassword) {
		return ErrMissingFields
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if !validation.StrongPassword(password) {
		return ErrWeakPassword
	}
	if err := svc.reset.ValidateReset(ctx, publicID, token); err != nil {
		logger.FromContext(ctx).Infow("reset token rejected", "publicID", publicID, "error", err)
		return ErrInvalidToken
	}

	account, err := svc.account(ctx, publicID)
	if err != nil {
		return err
	}
	if !account.CanUsePassword() {
		return ErrGoogleAccount
	}

	return svc.setPassword(ctx, account, password)
}

func (svc *PasswordService) account(ctx context.Context, publicID string) (*models.AccountDB, error) {
	account, err := svc.reader.GetByPublicID(ctx, publicID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get account", "publicID", publicID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// setPassword stores the new hash and sends the confirmation mail.
func (svc *PasswordService) setPassword(ctx context.Context, account *models.AccountDB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cfg.BcryptCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "error", err)
		return err
	}

	if err := svc.writer.SetPasswordHash(ctx, account.PublicID, string(hash)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGoogleAccount
		}
		logger.FromContext(ctx).Errorw("failed to save password", "publicID", account.PublicID, "error", err)
		return err
	}

	msg, err := emails.PasswordChanged(account.Name, svc.cfg.SupportEmail)
	if err != nil {
		return err
	}
	if err := sendMail(ctx, svc.mailer, account.Email, msg.Subject, msg.HTML); err != nil {
		logger.FromContext(ctx).Errorw("failed to send password changed email", "publicID", account.PublicID, "error", err)
		return err
	}
	return nil
}
