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
)

// OTPStore keeps one-time code slots.
type OTPStore interface {
	Issue(ctx context.Context, purpose models.OTPPurpose, subject string, code string, target string) error
	Consume(ctx context.Context, purpose models.OTPPurpose, subject string, code string, target string) error
}

// PhoneBindingStore tracks phone numbers being verified.
type PhoneBindingStore interface {
	Touch(ctx context.Context, phone string) error
	Bind(ctx context.Context, phone string, publicID string) error
	MarkVerified(ctx context.Context, phone string) error
}

// SMSSender texts one-time codes.
type SMSSender interface {
	SendOTP(ctx context.Context, phone string, code string) error
}

// OTPService issues and verifies one-time codes for email, phone and
// secondary email.
type OTPService struct {
	reader AccountReader
	writer AccountWriter
	otps   OTPStore
	phones PhoneBindingStore
	mailer Mailer
	sms    SMSSender
	cfg    Config
}

// NewOTPService creates a new OTPService instance.
func NewOTPService(
	reader AccountReader,
	writer AccountWriter,
	otps OTPStore,
	phones PhoneBindingStore,
	mailer Mailer,
	sms SMSSender,
	cfg Config,
) *OTPService {
	return &OTPService{
		reader: reader,
		writer: writer,
		otps:   otps,
		phones: phones,
		mailer: mailer,
		sms:    sms,
		cfg:    cfg,
	}
}

// otpError maps slot outcomes to service errors.
func otpError(err error) error {
	switch {
	case errors.Is(err, models.ErrSlotAbsent), errors.Is(err, models.ErrSlotMismatch):
		return ErrInvalidOTP
	case errors.Is(err, models.ErrSlotConsumed):
		return ErrOTPConsumed
	}
	return err
}

// issue stores a fresh code in the slot and returns it.
func (svc *OTPService) issue(ctx context.Context, purpose models.OTPPurpose, subject, target string) (string, error) {
	code, err := newOTP()
	if err != nil {
		return "", err
	}
	if err := svc.otps.Issue(ctx, purpose, subject, code, target); err != nil {
		logger.FromContext(ctx).Errorw("failed to issue otp", "purpose", purpose, "subject", subject, "error", err)
		return "", otpError(err)
	}
	return code, nil
}

func (svc *OTPService) mailCode(ctx context.Context, name, to, code string) error {
	msg, err := emails.OTP(name, code, svc.cfg.SupportEmail)
	if err != nil {
		return err
	}
	if err := sendMail(ctx, svc.mailer, to, msg.Subject, msg.HTML); err != nil {
		logger.FromContext(ctx).Errorw("failed to send otp email", "to", to, "error", err)
		return err
	}
	return nil
}

func (svc *OTPService) textCode(ctx context.Context, phone, code string) error {
	if err := svc.sms.SendOTP(ctx, phone, code); err != nil {
		logger.FromContext(ctx).Errorw("failed to send otp sms", "phone", phone, "error", err)
		return fmt.Errorf("%w: %w", ErrSMSDelivery, err)
	}
	return nil
}

func (svc *OTPService) account(ctx context.Context, publicID string) (*models.AccountDB, error) {
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

// SendEmailOTP mails a verification code to the primary email of an account.
func (svc *OTPService) SendEmailOTP(ctx context.Context, email string) (*models.AccountDB, error) {
	if !validation.Required(email) {
		return nil, ErrMissingFields
	}

	account, err := svc.reader.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get account", "email", email, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	code, err := svc.issue(ctx, models.OTPEmailVerification, account.PublicID, "")
	if err != nil {
		return nil, err
	}
	if err := svc.mailCode(ctx, account.Name, account.Email, code); err != nil {
		return nil, err
	}
	return account, nil
}

// VerifyEmailOTP consumes the code and marks the primary email verified.
func (svc *OTPService) VerifyEmailOTP(ctx context.Context, publicID, code string) error {
	if !validation.Required(code) {
		return ErrMissingFields
	}
	if err := svc.otps.Consume(ctx, models.OTPEmailVerification, publicID, code, ""); err != nil {
		return otpError(err)
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

// SendPhoneOTP texts a code to a phone during signup.
func (svc *OTPService) SendPhoneOTP(ctx context.Context, phone string) error {
	if !validation.Phone(phone) {
		return ErrInvalidPhone
	}
	if err := svc.phones.Touch(ctx, phone); err != nil {
		logger.FromContext(ctx).Errorw("failed to save phone binding", "phone", phone, "error", err)
		return err
	}

	code, err := svc.issue(ctx, models.OTPPhoneVerification, phone, "")
	if err != nil {
		return err
	}
	return svc.textCode(ctx, phone, code)
}

// VerifyPhoneOTP consumes the signup code and marks the phone verified.
func (svc *OTPService) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	if !validation.Required(phone, code) {
		return ErrMissingFields
	}
	if err := svc.otps.Consume(ctx, models.OTPPhoneVerification, phone, code, ""); err != nil {
		return otpError(err)
	}
	if err := svc.phones.MarkVerified(ctx, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidOTP
		}
		logger.FromContext(ctx).Errorw("failed to mark phone verified", "phone", phone, "error", err)
		return err
	}
	return nil
}

// SendProfilePhoneOTP binds phone to the account and texts a code.
func (svc *OTPService) SendProfilePhoneOTP(ctx context.Context, publicID, phone string) error {
	if !validation.Phone(phone) {
		return ErrInvalidPhone
	}
	if _, err := svc.account(ctx, publicID); err != nil {
		return err
	}
	if err := svc.phones.Bind(ctx, phone, publicID); err != nil {
		logger.FromContext(ctx).Errorw("failed to bind phone", "phone", phone, "publicID", publicID, "error", err)
		return err
	}

	code, err := svc.issue(ctx, models.OTPPhoneVerification, phone, publicID)
	if err != nil {
		return err
	}
	return svc.textCode(ctx, phone, code)
}

// VerifyProfilePhoneOTP consumes the code and stores the phone as verified.
func (svc *OTPService) VerifyProfilePhoneOTP(ctx context.Context, publicID, phone, code string) error {
	if !validation.Required(phone, code) {
		return ErrMissingFields
	}
	if err := svc.otps.Consume(ctx, models.OTPPhoneVerification, phone, code, publicID); err != nil {
		return otpError(err)
	}
	if err := svc.writer.SetPhone(ctx, publicID, phone, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Errorw("failed to save phone", "publicID", publicID, "error", err)
		return err
	}
	if err := svc.phones.MarkVerified(ctx, phone); err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Errorw("failed to mark phone verified", "phone", phone, "error", err)
		return err
	}
	return nil
}

// SendSecondaryEmailOTP mails a code to a prospective secondary email.
func (svc *OTPService) SendSecondaryEmailOTP(ctx context.Context, publicID, email string) error {
	if !validation.Required(email) {
		return ErrMissingFields
	}
	email = validation.NormalizeEmail(email)
	if !validation.Email(email) {
		return ErrInvalidEmail
	}

	account, err := svc.account(ctx, publicID)
	if err != nil {
		return err
	}
	if validation.NormalizeEmail(account.Email) == email {
		return ErrSameAsPrimaryEmail
	}

	code, err := svc.issue(ctx, models.OTPSecondaryEmail, publicID, email)
	if err != nil {
		return err
	}
	return svc.mailCode(ctx, account.Name, email, code)
}

// VerifySecondaryEmailOTP consumes the code and stores the secondary email.
func (svc *OTPService) VerifySecondaryEmailOTP(ctx context.Context, publicID, email, code string) error {
	if !validation.Required(email, code) {
		return ErrMissingFields
	}
	email = validation.NormalizeEmail(email)

	if err := svc.otps.Consume(ctx, models.OTPSecondaryEmail, publicID, code, email); err != nil {
		return otpError(err)
	}
	if err := svc.writer.SetSecondaryEmail(ctx, publicID, &email, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Errorw("failed to save secondary email", "publicID", publicID, "error", err)
		return err
	}
	return nil
}
