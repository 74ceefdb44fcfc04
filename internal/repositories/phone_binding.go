package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// PhoneBindingRepository tracks phone numbers being verified.
type PhoneBindingRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPhoneBindingRepository(db *sqlx.DB, txGetter TxGetter) *PhoneBindingRepository {
	return &PhoneBindingRepository{db: db, txGetter: txGetter}
}

// Touch creates the binding if missing, keeping an existing verification flag.
func (r *PhoneBindingRepository) Touch(ctx context.Context, phone string) error {
	const query = `
		INSERT INTO phone_bindings (phone_number, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (phone_number) DO UPDATE SET updated_at = NOW()
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, phone)

	logQuery(query, []any{phone}, nil, err)

	return err
}

// Bind assigns the phone to an account and resets its verification.
func (r *PhoneBindingRepository) Bind(ctx context.Context, phone, publicID string) error {
	const query = `
		INSERT INTO phone_bindings (phone_number, public_id, is_verified, created_at, updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		ON CONFLICT (phone_number)
		DO UPDATE SET public_id = EXCLUDED.public_id, is_verified = FALSE, updated_at = NOW()
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, phone, publicID)

	logQuery(query, []any{phone, publicID}, nil, err)

	return err
}

// MarkVerified flags the phone as verified.
func (r *PhoneBindingRepository) MarkVerified(ctx context.Context, phone string) error {
	const query = `
		UPDATE phone_bindings SET is_verified = TRUE, updated_at = NOW()
		WHERE phone_number = $1
	`

	n, err := affected(executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, phone))

	logQuery(query, []any{phone}, n, err)

	return err
}
