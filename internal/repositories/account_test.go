package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	writer := NewAccountWriteRepository(db, nil)
	reader := NewAccountReadRepository(db, nil)

	seedAccount(t, db, "acc0000001", "Alice@Example.com")

	t.Run("get by email is case insensitive", func(t *testing.T) {
		got, err := reader.GetByEmail(ctx, "alice@example.COM")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "acc0000001", got.PublicID)
		assert.Equal(t, models.ProviderPassword, got.Provider)
		assert.False(t, got.IsVerified)
	})

	t.Run("missing account returns nil", func(t *testing.T) {
		got, err := reader.GetByPublicID(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email across variants conflicts", func(t *testing.T) {
		err := writer.Save(ctx, &models.AccountDB{
			PublicID: "acc0000002",
			Provider: models.ProviderGoogle,
			Name:     "Alice",
			Email:    "ALICE@example.com",
			GoogleID: strPtr("g-1"),
		})
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("google account lookup", func(t *testing.T) {
		err := writer.Save(ctx, &models.AccountDB{
			PublicID:   "acc0000003",
			Provider:   models.ProviderGoogle,
			Name:       "Bob",
			Email:      "bob@example.com",
			GoogleID:   strPtr("g-2"),
			IsVerified: true,
		})
		require.NoError(t, err)

		got, err := reader.GetByGoogleID(ctx, "g-2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "acc0000003", got.PublicID)
		assert.Nil(t, got.PasswordHash)
		assert.False(t, got.CanUsePassword())
	})

	t.Run("password hash is not set on google accounts", func(t *testing.T) {
		err := writer.SetPasswordHash(ctx, "acc0000003", "$2a$10$other")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("set verified and password", func(t *testing.T) {
		require.NoError(t, writer.SetVerified(ctx, "acc0000001"))
		require.NoError(t, writer.SetPasswordHash(ctx, "acc0000001", "$2a$10$new"))

		got, err := reader.GetByPublicID(ctx, "acc0000001")
		require.NoError(t, err)
		assert.True(t, got.IsVerified)
		assert.Equal(t, "$2a$10$new", *got.PasswordHash)
	})

	t.Run("update profile clears empty fields", func(t *testing.T) {
		err := writer.UpdateProfile(ctx, "acc0000001", models.ProfileUpdate{
			Name:           "Alice B",
			Email:          "alice@example.com",
			PhoneNumber:    "9999999999",
			Address:        "Main street",
			FavouriteSport: "",
		})
		require.NoError(t, err)

		got, err := reader.GetByPublicID(ctx, "acc0000001")
		require.NoError(t, err)
		assert.Equal(t, "Alice B", got.Name)
		assert.Equal(t, "9999999999", *got.PhoneNumber)
		assert.Equal(t, "Main street", *got.Address)
		assert.Nil(t, got.FavouriteSport)
	})

	t.Run("phone and secondary email", func(t *testing.T) {
		require.NoError(t, writer.SetPhone(ctx, "acc0000001", "8888888888", true))
		require.NoError(t, writer.SetSecondaryEmail(ctx, "acc0000001", strPtr("alt@example.com"), true))

		got, err := reader.GetByPublicID(ctx, "acc0000001")
		require.NoError(t, err)
		assert.True(t, got.IsPhoneVerified)
		assert.Equal(t, "alt@example.com", *got.SecondaryEmail)
		assert.True(t, got.IsSecondaryEmailVerified)

		require.NoError(t, writer.SetSecondaryEmail(ctx, "acc0000001", nil, false))
		got, err = reader.GetByPublicID(ctx, "acc0000001")
		require.NoError(t, err)
		assert.Nil(t, got.SecondaryEmail)
		assert.False(t, got.IsSecondaryEmailVerified)
	})

	t.Run("unknown account update", func(t *testing.T) {
		assert.ErrorIs(t, writer.SetVerified(ctx, "nobody"), sql.ErrNoRows)
	})

	t.Run("write joins request transaction", func(t *testing.T) {
		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)

		txWriter := NewAccountWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
		err = txWriter.Save(ctx, &models.AccountDB{
			PublicID:     "acc0000004",
			Provider:     models.ProviderPassword,
			Name:         "Carol",
			Email:        "carol@example.com",
			PasswordHash: strPtr("$2a$10$hash"),
		})
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		got, err := reader.GetByPublicID(ctx, "acc0000004")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("read joins request transaction", func(t *testing.T) {
		db.SetMaxOpenConns(1)
		defer db.SetMaxOpenConns(20)

		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()

		txGetter := func(ctx context.Context) *sqlx.Tx { return tx }
		txWriter := NewAccountWriteRepository(db, txGetter)
		txReader := NewAccountReadRepository(db, txGetter)

		require.NoError(t, txWriter.Save(ctx, &models.AccountDB{
			PublicID:     "acc0000005",
			Provider:     models.ProviderPassword,
			Name:         "Dave",
			Email:        "dave@example.com",
			PasswordHash: strPtr("$2a$10$hash"),
		}))

		readCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		got, err := txReader.GetByEmail(readCtx, "dave@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "acc0000005", got.PublicID)
	})
}
