package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

const accountColumns = `
	public_id, provider, name, email, phone_number, password_hash, google_id,
	is_verified, is_phone_verified, secondary_email, is_secondary_email_verified,
	address, birth_date, favourite_sport, gender, created_at, updated_at`

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account. An email already owned by any account variant
// returns models.ErrConflict.
func (r *AccountWriteRepository) Save(ctx context.Context, account *models.AccountDB) error {
	const query = `
		INSERT INTO accounts (public_id, provider, name, email, phone_number, password_hash, google_id, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		account.PublicID,
		account.Provider,
		account.Name,
		account.Email,
		account.PhoneNumber,
		account.PasswordHash,
		account.GoogleID,
		account.IsVerified,
	)
	err = mapError(err)

	logQuery(query, []any{account.PublicID, account.Provider, account.Email}, nil, err)

	return err
}

// SetVerified marks the primary email of the account as verified.
func (r *AccountWriteRepository) SetVerified(ctx context.Context, publicID string) error {
	const query = `
		UPDATE accounts SET is_verified = TRUE, updated_at = NOW()
		WHERE public_id = $1
	`

	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, publicID))

	logQuery(query, []any{publicID}, n, err)

	return err
}

// SetPasswordHash replaces the password hash of a password account.
func (r *AccountWriteRepository) SetPasswordHash(ctx context.Context, publicID, hash string) error {
	const query = `
		UPDATE accounts SET password_hash = $2, updated_at = NOW()
		WHERE public_id = $1 AND provider = 'password'
	`

	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, publicID, hash))

	logQuery(query, []any{publicID}, n, err)

	return err
}

// UpdateProfile overwrites the editable profile fields.
func (r *AccountWriteRepository) UpdateProfile(ctx context.Context, publicID string, p models.ProfileUpdate) error {
	const query = `
		UPDATE accounts SET
			name = $2,
			email = $3,
			phone_number = NULLIF($4, ''),
			is_phone_verified = $5,
			address = NULLIF($6, ''),
			birth_date = NULLIF($7, ''),
			favourite_sport = NULLIF($8, ''),
			gender = NULLIF($9, ''),
			updated_at = NOW()
		WHERE public_id = $1
	`

	args := []any{publicID, p.Name, p.Email, p.PhoneNumber, p.IsPhoneVerified, p.Address, p.BirthDate, p.FavouriteSport, p.Gender}
	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...))

	logQuery(query, args, n, err)

	return err
}

// SetPhone stores the phone number with its verification flag.
func (r *AccountWriteRepository) SetPhone(ctx context.Context, publicID, phone string, verified bool) error {
	const query = `
		UPDATE accounts SET phone_number = $2, is_phone_verified = $3, updated_at = NOW()
		WHERE public_id = $1
	`

	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, publicID, phone, verified))

	logQuery(query, []any{publicID, phone, verified}, n, err)

	return err
}

// SetSecondaryEmail stores or clears the secondary email. A nil email clears it.
func (r *AccountWriteRepository) SetSecondaryEmail(ctx context.Context, publicID string, email *string, verified bool) error {
	const query = `
		UPDATE accounts SET secondary_email = $2, is_secondary_email_verified = $3, updated_at = NOW()
		WHERE public_id = $1
	`

	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, publicID, email, verified))

	logQuery(query, []any{publicID, email, verified}, n, err)

	return err
}

// AccountReadRepository handles account read operations. Reads join the
// request transaction when there is one.
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountReadRepository(db *sqlx.DB, txGetter TxGetter) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail looks the account up by case-insensitive email. Returns nil if absent.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	return r.get(ctx, query, email)
}

// GetByPublicID returns nil if the account does not exist.
func (r *AccountReadRepository) GetByPublicID(ctx context.Context, publicID string) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE public_id = $1`
	return r.get(ctx, query, publicID)
}

// GetByGoogleID returns nil if no Google account has the id.
func (r *AccountReadRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE google_id = $1`
	return r.get(ctx, query, googleID)
}

func (r *AccountReadRepository) get(ctx context.Context, query string, arg string) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, arg)

	logQuery(query, []any{arg}, account.PublicID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
