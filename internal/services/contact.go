package services

import (
	"context"

	"github.com/sbilibin2017/gw-expense-manager/internal/emails"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/validation"
)

// ContactWriter stores contact messages.
type ContactWriter interface {
	Upsert(ctx context.Context, msg *models.ContactMessageDB) (*models.ContactMessageDB, error)
}

// ContactService handles contact-us messages.
type ContactService struct {
	writer ContactWriter
	mailer Mailer
	cfg    Config
}

// NewContactService creates a new ContactService instance.
func NewContactService(writer ContactWriter, mailer Mailer, cfg Config) *ContactService {
	return &ContactService{writer: writer, mailer: mailer, cfg: cfg}
}

// SendContactMessage stores the latest message of the sender and mails a confirmation.
func (svc *ContactService) SendContactMessage(ctx context.Context, name, email, message string) (*models.ContactMessageDB, error) {
	if !validation.Required(name, email, message) {
		return nil, ErrMissingFields
	}
	email = validation.NormalizeEmail(email)
	if !validation.Email(email) {
		return nil, ErrInvalidEmail
	}

	id, err := newPublicID()
	if err != nil {
		return nil, err
	}

	saved, err := svc.writer.Upsert(ctx, &models.ContactMessageDB{
		ContactID: id,
		Name:      name,
		Email:     email,
		Message:   message,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save contact message", "email", email, "error", err)
		return nil, err
	}

	msg, err := emails.ContactReceived(name, message, svc.cfg.SupportEmail)
	if err != nil {
		return nil, err
	}
	if err := sendMail(ctx, svc.mailer, email, msg.Subject, msg.HTML); err != nil {
		logger.FromContext(ctx).Errorw("failed to send contact confirmation", "email", email, "error", err)
		return nil, err
	}
	return saved, nil
}
