package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationTokenRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewVerificationTokenRepository(db, nil)

	seedAccount(t, db, "vt00000001", "vt1@example.com")
	seedAccount(t, db, "vt00000002", "vt2@example.com")

	state := func(publicID string) string {
		var s string
		err := db.Get(&s, `SELECT state FROM verification_tokens WHERE public_id = $1`, publicID)
		if errors.Is(err, sql.ErrNoRows) {
			return "absent"
		}
		require.NoError(t, err)
		return s
	}

	t.Run("absent slot", func(t *testing.T) {
		assert.Equal(t, "absent", state("vt00000001"))
		assert.ErrorIs(t, repo.Consume(ctx, "vt00000001", "any"), models.ErrSlotMismatch)
	})

	t.Run("reissue replaces pending token", func(t *testing.T) {
		require.NoError(t, repo.Issue(ctx, "vt00000001", "first"))
		require.NoError(t, repo.Issue(ctx, "vt00000001", "second"))

		assert.ErrorIs(t, repo.Consume(ctx, "vt00000001", "first"), models.ErrSlotMismatch)

		assert.Equal(t, "pending", state("vt00000001"))
	})

	t.Run("consume once", func(t *testing.T) {
		require.NoError(t, repo.Consume(ctx, "vt00000001", "second"))
		assert.ErrorIs(t, repo.Consume(ctx, "vt00000001", "second"), models.ErrSlotMismatch)

		assert.Equal(t, "consumed", state("vt00000001"))
	})

	t.Run("consumed slot is not reissued", func(t *testing.T) {
		assert.ErrorIs(t, repo.Issue(ctx, "vt00000001", "third"), models.ErrSlotConsumed)
	})

	t.Run("concurrent consume succeeds exactly once", func(t *testing.T) {
		require.NoError(t, repo.Issue(ctx, "vt00000002", "token"))

		var wg sync.WaitGroup
		var ok int32
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if repo.Consume(ctx, "vt00000002", "token") == nil {
					atomic.AddInt32(&ok, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), ok)
	})
}
