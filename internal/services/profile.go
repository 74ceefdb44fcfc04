package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/validation"
)

// ProfileService reads and edits the logged in account.
type ProfileService struct {
	reader AccountReader
	writer AccountWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader AccountReader, writer AccountWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// GetProfile returns the account of publicID.
func (svc *ProfileService) GetProfile(ctx context.Context, publicID string) (*models.AccountDB, error) {
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

// UpdateProfile overwrites the profile. A changed phone loses its verification.
func (svc *ProfileService) UpdateProfile(ctx context.Context, publicID string, p models.ProfileUpdate) error {
	if !validation.Required(p.Name, p.Email, p.PhoneNumber, p.Address, p.BirthDate, p.FavouriteSport, p.Gender) {
		return ErrMissingFields
	}
	p.Email = validation.NormalizeEmail(p.Email)
	if !validation.Email(p.Email) {
		return ErrInvalidEmail
	}

	account, err := svc.GetProfile(ctx, publicID)
	if err != nil {
		return err
	}

	if p.Email != validation.NormalizeEmail(account.Email) {
		owner, err := svc.reader.GetByEmail(ctx, p.Email)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check email owner", "email", p.Email, "error", err)
			return err
		}
		if owner != nil && owner.PublicID != publicID {
			return ErrDuplicateAccount
		}
	}

	p.IsPhoneVerified = account.IsPhoneVerified && deref(account.PhoneNumber) == p.PhoneNumber

	if err := svc.writer.UpdateProfile(ctx, publicID, p); err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			return ErrDuplicateAccount
		case errors.Is(err, sql.ErrNoRows):
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Errorw("failed to update profile", "publicID", publicID, "error", err)
		return err
	}
	return nil
}

// RemoveSecondaryEmail clears the secondary email of the account.
func (svc *ProfileService) RemoveSecondaryEmail(ctx context.Context, publicID string) error {
	if err := svc.writer.SetSecondaryEmail(ctx, publicID, nil, false); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Errorw("failed to remove secondary email", "publicID", publicID, "error", err)
		return err
	}
	return nil
}
