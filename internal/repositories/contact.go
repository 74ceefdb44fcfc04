package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// ContactRepository stores the latest contact message per email.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Upsert inserts the message or replaces the previous one from the same email.
func (r *ContactRepository) Upsert(ctx context.Context, msg *models.ContactMessageDB) (*models.ContactMessageDB, error) {
	const query = `
		INSERT INTO contact_messages (contact_id, name, email, message, created_at, updated_at)
		VALUES ($1, $2, LOWER($3), $4, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET name = EXCLUDED.name, message = EXCLUDED.message, updated_at = NOW()
		RETURNING contact_id, name, email, message, created_at, updated_at
	`

	var saved models.ContactMessageDB
	err := r.db.GetContext(ctx, &saved, query, msg.ContactID, msg.Name, msg.Email, msg.Message)

	logQuery(query, []any{msg.ContactID, msg.Email}, saved.ContactID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
