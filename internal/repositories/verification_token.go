package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// VerificationTokenRepository keeps the single verification token slot of
// each account. A consumed slot is never reopened.
type VerificationTokenRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewVerificationTokenRepository(db *sqlx.DB, txGetter TxGetter) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db, txGetter: txGetter}
}

// Issue stores the token as pending, replacing a pending one.
// Returns models.ErrSlotConsumed when the slot was already used.
func (r *VerificationTokenRepository) Issue(ctx context.Context, publicID, token string) error {
	const query = `
		INSERT INTO verification_tokens (public_id, token, state, created_at, updated_at)
		VALUES ($1, $2, 'pending', NOW(), NOW())
		ON CONFLICT (public_id)
		DO UPDATE SET token = EXCLUDED.token, updated_at = NOW()
		WHERE verification_tokens.state = 'pending'
		RETURNING public_id
	`

	var id string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, publicID, token)

	logQuery(query, []any{publicID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrSlotConsumed
	}
	return err
}

// Consume atomically moves a pending slot holding token to consumed.
// Any other state or a different token returns models.ErrSlotMismatch.
func (r *VerificationTokenRepository) Consume(ctx context.Context, publicID, token string) error {
	const query = `
		UPDATE verification_tokens SET state = 'consumed', updated_at = NOW()
		WHERE public_id = $1 AND token = $2 AND state = 'pending'
		RETURNING public_id
	`

	var id string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, publicID, token)

	logQuery(query, []any{publicID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrSlotMismatch
	}
	return err
}
