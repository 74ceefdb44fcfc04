package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

const transactionColumns = `
	transaction_id, public_id, amount, type, category, reference, description,
	date, created_at, updated_at`

// TransactionWriteRepository handles transaction write operations.
// Every statement is scoped by the owner's public id.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction and fills in the stored amount and timestamps.
func (r *TransactionWriteRepository) Save(ctx context.Context, tx *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (transaction_id, public_id, amount, type, category, reference, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING amount, created_at, updated_at
	`

	args := []any{tx.TransactionID, tx.PublicID, tx.Amount, tx.Type, tx.Category, tx.Reference, tx.Description, tx.Date}
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&tx.Amount, &tx.CreatedAt, &tx.UpdatedAt)
	err = mapError(err)

	logQuery(query, args, nil, err)

	return err
}

// Update overwrites the editable fields of an owned transaction and fills in
// the stored amount and timestamps.
// Returns sql.ErrNoRows if the owner has no such transaction.
func (r *TransactionWriteRepository) Update(ctx context.Context, tx *models.TransactionDB) error {
	const query = `
		UPDATE transactions SET
			amount = $3, type = $4, category = $5, reference = $6, description = $7, date = $8, updated_at = NOW()
		WHERE transaction_id = $1 AND public_id = $2
		RETURNING amount, created_at, updated_at
	`

	args := []any{tx.TransactionID, tx.PublicID, tx.Amount, tx.Type, tx.Category, tx.Reference, tx.Description, tx.Date}
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&tx.Amount, &tx.CreatedAt, &tx.UpdatedAt)
	err = mapError(err)

	logQuery(query, args, tx.UpdatedAt, err)

	return err
}

// Delete removes an owned transaction and returns it.
// Returns sql.ErrNoRows if the owner has no such transaction.
func (r *TransactionWriteRepository) Delete(ctx context.Context, publicID, transactionID string) (*models.TransactionDB, error) {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND public_id = $2 RETURNING ` + transactionColumns

	var tx models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, transactionID, publicID)

	logQuery(query, []any{transactionID, publicID}, tx.TransactionID, err)

	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns the owner's transactions matching filter, newest first.
func (r *TransactionReadRepository) ListByOwner(ctx context.Context, publicID string, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE public_id = $1`
	args := []any{publicID}

	if filter.After != nil {
		args = append(args, *filter.After)
		query += fmt.Sprintf(" AND date > $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at DESC"

	transactions := []models.TransactionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &transactions, query, args...)

	logQuery(query, args, len(transactions), err)

	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetByID returns nil if the owner has no such transaction.
func (r *TransactionReadRepository) GetByID(ctx context.Context, publicID, transactionID string) (*models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND public_id = $2`

	var tx models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, transactionID, publicID)

	logQuery(query, []any{transactionID, publicID}, tx.TransactionID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
