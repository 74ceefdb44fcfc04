package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

const adminColumns = `admin_id, name, email, phone_number, key_hash, is_active, created_at, updated_at`

// AdminWriteRepository handles admin write operations
type AdminWriteRepository struct {
	db *sqlx.DB
}

func NewAdminWriteRepository(db *sqlx.DB) *AdminWriteRepository {
	return &AdminWriteRepository{db: db}
}

// Save creates an admin or reactivates a deactivated one with a new key.
// Returns models.ErrConflict if an active admin already owns the email.
func (r *AdminWriteRepository) Save(ctx context.Context, admin *models.AdminDB) (*models.AdminDB, error) {
	query := `
		INSERT INTO admins (admin_id, name, email, phone_number, key_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, LOWER($3), $4, $5, TRUE, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET name = EXCLUDED.name, phone_number = EXCLUDED.phone_number,
			key_hash = EXCLUDED.key_hash, is_active = TRUE, updated_at = NOW()
		WHERE admins.is_active = FALSE
		RETURNING ` + adminColumns

	var saved models.AdminDB
	err := r.db.GetContext(ctx, &saved, query, admin.AdminID, admin.Name, admin.Email, admin.PhoneNumber, admin.KeyHash)

	logQuery(query, []any{admin.AdminID, admin.Email}, saved.AdminID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetPhone updates the phone of an active admin.
func (r *AdminWriteRepository) SetPhone(ctx context.Context, adminID, phone string) error {
	const query = `
		UPDATE admins SET phone_number = $2, updated_at = NOW()
		WHERE admin_id = $1 AND is_active = TRUE
	`

	n, err := affected(r.db.ExecContext(ctx, query, adminID, phone))

	logQuery(query, []any{adminID, phone}, n, err)

	return err
}

// Deactivate disables an active admin.
func (r *AdminWriteRepository) Deactivate(ctx context.Context, adminID string) error {
	const query = `
		UPDATE admins SET is_active = FALSE, updated_at = NOW()
		WHERE admin_id = $1 AND is_active = TRUE
	`

	n, err := affected(r.db.ExecContext(ctx, query, adminID))

	logQuery(query, []any{adminID}, n, err)

	return err
}

// AdminReadRepository handles admin read operations
type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// GetByEmail returns nil if no admin has the email.
func (r *AdminReadRepository) GetByEmail(ctx context.Context, email string) (*models.AdminDB, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = LOWER($1)`
	return r.get(ctx, query, email)
}

// GetByID returns nil if the admin does not exist.
func (r *AdminReadRepository) GetByID(ctx context.Context, adminID string) (*models.AdminDB, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE admin_id = $1`
	return r.get(ctx, query, adminID)
}

func (r *AdminReadRepository) get(ctx context.Context, query, arg string) (*models.AdminDB, error) {
	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, arg)

	logQuery(query, []any{arg}, admin.AdminID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListUsersWithTotals returns every account with its income, expense and
// turnover totals, newest account first.
func (r *AdminReadRepository) ListUsersWithTotals(ctx context.Context) ([]models.DashboardUser, error) {
	const query = `
		SELECT
			a.public_id, a.name, a.email, a.phone_number, a.provider,
			a.address, a.favourite_sport, a.gender, a.created_at,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'Income'), 0) AS total_income,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'Expense'), 0) AS total_expense,
			COALESCE(SUM(t.amount), 0) AS total_turnover
		FROM accounts a
		LEFT JOIN transactions t ON t.public_id = a.public_id
		GROUP BY a.public_id
		ORDER BY a.created_at DESC
	`

	users := []models.DashboardUser{}
	err := r.db.SelectContext(ctx, &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
