package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_Upsert(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewContactRepository(db)

	first, err := repo.Upsert(ctx, &models.ContactMessageDB{
		ContactID: "c1",
		Name:      "Dan",
		Email:     "Dan@Example.com",
		Message:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "dan@example.com", first.Email)

	second, err := repo.Upsert(ctx, &models.ContactMessageDB{
		ContactID: "c2",
		Name:      "Daniel",
		Email:     "dan@example.com",
		Message:   "hello again",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", second.ContactID)
	assert.Equal(t, "Daniel", second.Name)
	assert.Equal(t, "hello again", second.Message)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM contact_messages`))
	assert.Equal(t, 1, count)
}
