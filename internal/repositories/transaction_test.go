package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	writer := NewTransactionWriteRepository(db, nil)
	reader := NewTransactionReadRepository(db, nil)

	seedAccount(t, db, "owner00001", "owner1@example.com")
	seedAccount(t, db, "owner00002", "owner2@example.com")

	now := time.Now().UTC().Truncate(time.Second)
	seed := []models.TransactionDB{
		{TransactionID: "tx1", PublicID: "owner00001", Amount: decimal.RequireFromString("100.50"), Type: models.Income, Category: "salary", Date: now.AddDate(0, 0, -1)},
		{TransactionID: "tx2", PublicID: "owner00001", Amount: decimal.RequireFromString("20"), Type: models.Expense, Category: "food", Date: now.AddDate(0, 0, -10)},
		{TransactionID: "tx3", PublicID: "owner00001", Amount: decimal.RequireFromString("5"), Type: models.Expense, Category: "bus", Date: now.AddDate(0, 0, -40)},
		{TransactionID: "tx4", PublicID: "owner00002", Amount: decimal.RequireFromString("7"), Type: models.Expense, Category: "tea", Date: now},
	}
	for i := range seed {
		require.NoError(t, writer.Save(ctx, &seed[i]))
	}

	t.Run("save returns stored amount and timestamps", func(t *testing.T) {
		assert.False(t, seed[0].CreatedAt.IsZero())
		assert.False(t, seed[0].UpdatedAt.IsZero())

		tx := models.TransactionDB{TransactionID: "tx5", PublicID: "owner00002", Amount: decimal.RequireFromString("10.005"), Type: models.Income, Date: now.AddDate(0, 0, -100)}
		require.NoError(t, writer.Save(ctx, &tx))
		assert.True(t, decimal.RequireFromString("10.01").Equal(tx.Amount), tx.Amount.String())
	})

	t.Run("list is owner scoped and newest first", func(t *testing.T) {
		got, err := reader.ListByOwner(ctx, "owner00001", models.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "tx1", got[0].TransactionID)
		assert.Equal(t, "tx3", got[2].TransactionID)
		assert.True(t, decimal.RequireFromString("100.50").Equal(got[0].Amount))
	})

	t.Run("filters", func(t *testing.T) {
		after := now.AddDate(0, 0, -30)
		from := now.AddDate(0, 0, -15)
		to := now.AddDate(0, 0, -5)

		tests := []struct {
			name   string
			filter models.TransactionFilter
			want   []string
		}{
			{"after", models.TransactionFilter{After: &after}, []string{"tx1", "tx2"}},
			{"range", models.TransactionFilter{From: &from, To: &to}, []string{"tx2"}},
			{"type", models.TransactionFilter{Type: models.Expense}, []string{"tx2", "tx3"}},
			{"after and type", models.TransactionFilter{After: &after, Type: models.Income}, []string{"tx1"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := reader.ListByOwner(ctx, "owner00001", tt.filter)
				require.NoError(t, err)

				ids := make([]string, 0, len(got))
				for _, tx := range got {
					ids = append(ids, tx.TransactionID)
				}
				assert.Equal(t, tt.want, ids)
			})
		}
	})

	t.Run("get by id is owner scoped", func(t *testing.T) {
		got, err := reader.GetByID(ctx, "owner00001", "tx1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "salary", got.Category)

		got, err = reader.GetByID(ctx, "owner00002", "tx1")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update", func(t *testing.T) {
		tx := seed[1]
		tx.Amount = decimal.RequireFromString("25.25")
		tx.Description = "lunch"
		tx.CreatedAt = time.Time{}
		require.NoError(t, writer.Update(ctx, &tx))
		assert.True(t, seed[1].CreatedAt.Equal(tx.CreatedAt))
		assert.False(t, tx.UpdatedAt.Before(seed[1].UpdatedAt))

		got, err := reader.GetByID(ctx, "owner00001", "tx2")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("25.25").Equal(got.Amount))
		assert.Equal(t, "lunch", got.Description)

		foreign := seed[3]
		foreign.PublicID = "owner00001"
		assert.ErrorIs(t, writer.Update(ctx, &foreign), sql.ErrNoRows)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := writer.Delete(ctx, "owner00001", "tx4")
		assert.ErrorIs(t, err, sql.ErrNoRows)

		deleted, err := writer.Delete(ctx, "owner00001", "tx3")
		require.NoError(t, err)
		assert.Equal(t, "bus", deleted.Category)

		got, err := reader.GetByID(ctx, "owner00001", "tx3")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
