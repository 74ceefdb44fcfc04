package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testConfig = services.Config{
	ClientURL:    "http://app.test",
	SupportEmail: "support@app.test",
	BcryptCost:   bcrypt.MinCost,
}

type authMocks struct {
	reader       *services.MockAccountReader
	writer       *services.MockAccountWriter
	slots        *services.MockVerificationTokenStore
	session      *services.MockSessionTokenGenerator
	verification *services.MockVerificationTokener
	mailer       *services.MockMailer
}

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, authMocks) {
	m := authMocks{
		reader:       services.NewMockAccountReader(ctrl),
		writer:       services.NewMockAccountWriter(ctrl),
		slots:        services.NewMockVerificationTokenStore(ctrl),
		session:      services.NewMockSessionTokenGenerator(ctrl),
		verification: services.NewMockVerificationTokener(ctrl),
		mailer:       services.NewMockMailer(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.slots, m.session, m.verification, m.mailer, testConfig)
	return svc, m
}

func passwordAccount(t *testing.T, password string, verified bool) *models.AccountDB {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	return &models.AccountDB{
		PublicID:     "pub0000001",
		Provider:     models.ProviderPassword,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: &h,
		IsVerified:   verified,
	}
}

func googleAccount() *models.AccountDB {
	id := "g-1"
	return &models.AccountDB{
		PublicID:   "pub0000002",
		Provider:   models.ProviderGoogle,
		Name:       "Gina",
		Email:      "gina@gmail.com",
		GoogleID:   &id,
		IsVerified: true,
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAuthService(ctrl)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"missing name", "", "a@example.com", "Secret#123", services.ErrMissingFields},
		{"missing password", "Alice", "a@example.com", "", services.ErrMissingFields},
		{"invalid email", "Alice", "not-an-email", "Secret#123", services.ErrInvalidEmail},
		{"weak password", "Alice", "a@example.com", "secret", services.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.userName, tt.email, "", tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		var saved *models.AccountDB
		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.AccountDB) error {
			saved = a
			return nil
		})
		m.verification.EXPECT().GenerateVerification(ctx, gomock.Any()).Return("vtoken", nil)
		m.slots.EXPECT().Issue(ctx, gomock.Any(), "vtoken").Return(nil)
		m.mailer.EXPECT().SendMail(ctx, "alice@example.com", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, html string) error {
				assert.Contains(t, html, "http://app.test/email-verification/"+saved.PublicID+"/vtoken")
				return nil
			})

		account, err := svc.Register(ctx, "Alice", " Alice@Example.com ", "9999999999", "Secret#123")
		require.NoError(t, err)

		assert.Same(t, saved, account)
		assert.Len(t, account.PublicID, 10)
		assert.Equal(t, models.ProviderPassword, account.Provider)
		assert.Equal(t, "alice@example.com", account.Email)
		assert.Equal(t, "9999999999", *account.PhoneNumber)
		assert.False(t, account.IsVerified)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte("Secret#123")))
	})

	t.Run("password account exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(passwordAccount(t, "x", true), nil)

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "", "Secret#123")
		assert.ErrorIs(t, err, services.ErrDuplicateAccount)
		assert.NotErrorIs(t, err, services.ErrGoogleAccountExists)
	})

	t.Run("google account exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "gina@gmail.com").Return(googleAccount(), nil)

		_, err := svc.Register(ctx, "Gina", "gina@gmail.com", "", "Secret#123")
		assert.ErrorIs(t, err, services.ErrGoogleAccountExists)
		assert.ErrorIs(t, err, services.ErrDuplicateAccount)
	})

	t.Run("concurrent registration loses the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).Return(models.ErrConflict)

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "", "Secret#123")
		assert.ErrorIs(t, err, services.ErrDuplicateAccount)
	})

	t.Run("mail failure keeps the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		m.verification.EXPECT().GenerateVerification(ctx, gomock.Any()).Return("vtoken", nil)
		m.slots.EXPECT().Issue(ctx, gomock.Any(), "vtoken").Return(nil)
		m.mailer.EXPECT().SendMail(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("brevo down"))

		account, err := svc.Register(ctx, "Alice", "alice@example.com", "", "Secret#123")
		assert.ErrorIs(t, err, services.ErrEmailDelivery)
		require.NotNil(t, account)
		assert.False(t, account.IsVerified)
	})

	t.Run("reader error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, errors.New("db error"))

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "", "Secret#123")
		assert.EqualError(t, err, "db error")
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.verification.EXPECT().ValidateVerification(ctx, "pub0000001", "tok").Return(nil)
				m.slots.EXPECT().Consume(ctx, "pub0000001", "tok").Return(nil)
				m.writer.EXPECT().SetVerified(ctx, "pub0000001").Return(nil)
			},
		},
		{
			name: "expired or foreign token",
			setup: func(m authMocks) {
				m.verification.EXPECT().ValidateVerification(ctx, "pub0000001", "tok").Return(jwt.ErrInvalidToken)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "already consumed",
			setup: func(m authMocks) {
				m.verification.EXPECT().ValidateVerification(ctx, "pub0000001", "tok").Return(nil)
				m.slots.EXPECT().Consume(ctx, "pub0000001", "tok").Return(models.ErrSlotMismatch)
			},
			wantErr: services.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newAuthService(ctrl)
			tt.setup(m)

			err := svc.VerifyEmail(ctx, "pub0000001", "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		account := passwordAccount(t, "Secret#123", true)
		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(account, nil)
		m.session.EXPECT().Generate(ctx, "pub0000001", jwt.RoleUser).Return("session", nil)

		got, token, err := svc.Login(ctx, "Alice@example.com", "Secret#123")
		require.NoError(t, err)
		assert.Equal(t, account, got)
		assert.Equal(t, "session", token)
	})

	t.Run("identical errors for unknown, google and wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)
		m.reader.EXPECT().GetByEmail(ctx, "gina@gmail.com").Return(googleAccount(), nil)
		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(passwordAccount(t, "Secret#123", true), nil)

		_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "Secret#123")
		_, _, errGoogle := svc.Login(ctx, "gina@gmail.com", "Secret#123")
		_, _, errWrong := svc.Login(ctx, "alice@example.com", "Wrong#123")

		assert.Equal(t, services.ErrInvalidCredentials, errUnknown)
		assert.Equal(t, services.ErrInvalidCredentials, errGoogle)
		assert.Equal(t, services.ErrInvalidCredentials, errWrong)
	})

	t.Run("unverified account gets a new verification mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(passwordAccount(t, "Secret#123", false), nil)
		m.verification.EXPECT().GenerateVerification(ctx, "pub0000001").Return("fresh", nil)
		m.slots.EXPECT().Issue(ctx, "pub0000001", "fresh").Return(nil)
		m.mailer.EXPECT().SendMail(ctx, "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)

		_, token, err := svc.Login(ctx, "alice@example.com", "Secret#123")
		assert.ErrorIs(t, err, services.ErrEmailNotVerified)
		assert.Empty(t, token)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newAuthService(ctrl)

		_, _, err := svc.Login(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, services.ErrMissingFields)
	})
}

func TestAuthService_GoogleLogin(t *testing.T) {
	ctx := context.Background()
	profile := &models.GoogleProfile{ID: "g-1", Email: "Gina@Gmail.com", Name: "Gina"}

	t.Run("existing google account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByGoogleID(ctx, "g-1").Return(googleAccount(), nil)
		m.session.EXPECT().Generate(ctx, "pub0000002", jwt.RoleUser).Return("session", nil)

		token, err := svc.GoogleLogin(ctx, profile)
		assert.NoError(t, err)
		assert.Equal(t, "session", token)
	})

	t.Run("first sign in creates a verified account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByGoogleID(ctx, "g-1").Return(nil, nil)
		m.reader.EXPECT().GetByEmail(ctx, "gina@gmail.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.AccountDB) error {
			assert.Equal(t, models.ProviderGoogle, a.Provider)
			assert.Equal(t, "g-1", *a.GoogleID)
			assert.Nil(t, a.PasswordHash)
			assert.True(t, a.IsVerified)
			return nil
		})
		m.session.EXPECT().Generate(ctx, gomock.Any(), jwt.RoleUser).Return("session", nil)

		token, err := svc.GoogleLogin(ctx, profile)
		assert.NoError(t, err)
		assert.Equal(t, "session", token)
	})

	t.Run("email owned by a password account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByGoogleID(ctx, "g-1").Return(nil, nil)
		m.reader.EXPECT().GetByEmail(ctx, "gina@gmail.com").Return(passwordAccount(t, "x", true), nil)

		_, err := svc.GoogleLogin(ctx, profile)
		assert.ErrorIs(t, err, services.ErrDuplicateAccount)
	})
}
