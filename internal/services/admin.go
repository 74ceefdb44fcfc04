package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-expense-manager/internal/emails"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// AdminReader defines read-only operations for admins and the dashboard.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminDB, error)
	GetByID(ctx context.Context, adminID string) (*models.AdminDB, error)
	ListUsersWithTotals(ctx context.Context) ([]models.DashboardUser, error)
}

// AdminWriter defines write operations for admins.
type AdminWriter interface {
	Save(ctx context.Context, admin *models.AdminDB) (*models.AdminDB, error)
	SetPhone(ctx context.Context, adminID string, phone string) error
	Deactivate(ctx context.Context, adminID string) error
}

// AdminService handles admin access and the dashboard.
type AdminService struct {
	reader  AdminReader
	writer  AdminWriter
	session SessionTokenGenerator
	mailer  Mailer
	cfg     Config
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader AdminReader, writer AdminWriter, session SessionTokenGenerator, mailer Mailer, cfg Config) *AdminService {
	return &AdminService{
		reader:  reader,
		writer:  writer,
		session: session,
		mailer:  mailer,
		cfg:     cfg,
	}
}

// RequestAccess creates an admin and mails a generated key. If the mail
// cannot be sent the admin is deactivated again so the request can be retried.
func (svc *AdminService) RequestAccess(ctx context.Context, name, email, phone string) error {
	if !validation.Required(name, email) {
		return ErrMissingFields
	}
	email = validation.NormalizeEmail(email)
	if !validation.Email(email) {
		return ErrInvalidEmail
	}

	key, err := newAdminKey()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), svc.cfg.BcryptCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash admin key", "error", err)
		return err
	}
	adminID, err := newPublicID()
	if err != nil {
		return err
	}

	admin, err := svc.writer.Save(ctx, &models.AdminDB{
		AdminID:     adminID,
		Name:        name,
		Email:       email,
		PhoneNumber: optional(phone),
		KeyHash:     string(hash),
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return ErrDuplicateAccount
		}
		logger.FromContext(ctx).Errorw("failed to save admin", "email", email, "error", err)
		return err
	}

	msg, err := emails.AdminKey(name, key, svc.cfg.ClientURL+"/admin/login", svc.cfg.SupportEmail)
	if err == nil {
		err = sendMail(ctx, svc.mailer, email, msg.Subject, msg.HTML)
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to send admin key", "adminID", admin.AdminID, "error", err)
		if derr := svc.writer.Deactivate(ctx, admin.AdminID); derr != nil {
			logger.FromContext(ctx).Errorw("failed to roll back admin", "adminID", admin.AdminID, "error", derr)
		}
		return err
	}
	return nil
}

// Login checks the admin key and returns an admin token.
func (svc *AdminService) Login(ctx context.Context, email, key string) (*models.AdminDB, string, error) {
	if !validation.Required(email, key) {
		return nil, "", ErrMissingFields
	}

	admin, err := svc.reader.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get admin", "email", email, "error", err)
		return nil, "", err
	}
	if admin == nil || !admin.IsActive {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.KeyHash), []byte(key)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.session.Generate(ctx, admin.AdminID, jwt.RoleAdmin)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "adminID", admin.AdminID, "error", err)
		return nil, "", err
	}
	return admin, token, nil
}

// Profile returns an active admin.
func (svc *AdminService) Profile(ctx context.Context, adminID string) (*models.AdminDB, error) {
	admin, err := svc.reader.GetByID(ctx, adminID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get admin", "adminID", adminID, "error", err)
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// Dashboard lists every account with its totals.
func (svc *AdminService) Dashboard(ctx context.Context, adminID string) (*models.Dashboard, error) {
	if _, err := svc.Profile(ctx, adminID); err != nil {
		return nil, err
	}

	users, err := svc.reader.ListUsersWithTotals(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list users", "error", err)
		return nil, err
	}

	turnover := decimal.Zero
	for _, u := range users {
		turnover = turnover.Add(u.TotalTurnover)
	}

	return &models.Dashboard{
		TotalUsers:    len(users),
		TotalTurnover: turnover,
		Users:         users,
	}, nil
}

// UpdatePhone changes the phone of an active admin.
func (svc *AdminService) UpdatePhone(ctx context.Context, adminID, phone string) error {
	if !validation.Phone(phone) {
		return ErrInvalidPhone
	}
	if err := svc.writer.SetPhone(ctx, adminID, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAdminNotFound
		}
		logger.FromContext(ctx).Errorw("failed to update admin phone", "adminID", adminID, "error", err)
		return err
	}
	return nil
}

// Deactivate disables an active admin.
func (svc *AdminService) Deactivate(ctx context.Context, adminID string) error {
	if err := svc.writer.Deactivate(ctx, adminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAdminNotFound
		}
		logger.FromContext(ctx).Errorw("failed to deactivate admin", "adminID", adminID, "error", err)
		return err
	}
	return nil
}
