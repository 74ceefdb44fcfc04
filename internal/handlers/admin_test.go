package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminClaims() *jwt.Claims {
	return &jwt.Claims{PublicID: "adm0000001", Role: jwt.RoleAdmin, Purpose: jwt.PurposeSession}
}

func TestAdminRequestAccessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"granted", nil, http.StatusCreated},
		{"already active", services.ErrDuplicateAccount, http.StatusConflict},
		{"mail failed", services.ErrEmailDelivery, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminManager(ctrl)
			mockSvc.EXPECT().RequestAccess(gomock.Any(), "Root", "root@example.com", "").Return(tt.err)

			rr := serve(t, NewAdminRequestAccessHandler(mockSvc), testRequest{
				method: http.MethodPost, target: "/request-access",
				body: AdminAccessRequest{Name: "Root", Email: "root@example.com"},
			})
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminManager(ctrl)
	mockSvc.EXPECT().Login(gomock.Any(), "root@example.com", "key").
		Return(&models.AdminDB{AdminID: "adm0000001", Name: "Root", Email: "root@example.com", IsActive: true}, "admin-token", nil)

	rr := serve(t, NewAdminLoginHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/login",
		body: AdminLoginRequest{Email: "root@example.com", AdminKey: "key"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "admin-token", body["token"])
	assert.Equal(t, "Not Provided", body["admin"].(map[string]any)["phoneNumber"])

	mockSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", services.ErrInvalidCredentials)
	rr = serve(t, NewAdminLoginHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/login",
		body: AdminLoginRequest{Email: "root@example.com", AdminKey: "wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminManager(ctrl)
	mockSvc.EXPECT().Dashboard(gomock.Any(), "adm0000001").Return(&models.Dashboard{
		TotalUsers:    1,
		TotalTurnover: decimal.RequireFromString("150.25"),
		Users: []models.DashboardUser{{
			PublicID:      "pub0000001",
			Name:          "John",
			Provider:      models.ProviderPassword,
			TotalIncome:   decimal.RequireFromString("100.25"),
			TotalExpense:  decimal.RequireFromString("50"),
			TotalTurnover: decimal.RequireFromString("150.25"),
		}},
	}, nil)

	rr := serve(t, NewAdminDashboardHandler(mockSvc), testRequest{method: http.MethodPost, target: "/dashboard", claims: adminClaims()})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, map[string]any{"totalUsers": float64(1), "totalTurnover": "150.25"}, body["summary"])
	users := body["users"].([]any)
	require.Len(t, users, 1)
	user := users[0].(map[string]any)
	assert.Equal(t, "EMAIL", user["registeredWith"])
	assert.Equal(t, "100.25", user["totalIncome"])
	assert.Equal(t, "Prefer not to say", user["gender"])
}

func TestAdminAccountHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminManager(ctrl)

	mockSvc.EXPECT().Profile(gomock.Any(), "adm0000001").Return(nil, services.ErrAdminNotFound)
	rr := serve(t, NewAdminProfileHandler(mockSvc), testRequest{method: http.MethodPost, target: "/profile", claims: adminClaims()})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	mockSvc.EXPECT().UpdatePhone(gomock.Any(), "adm0000001", "12").Return(services.ErrInvalidPhone)
	rr = serve(t, NewAdminUpdatePhoneHandler(mockSvc), testRequest{
		method: http.MethodPut, target: "/update-phone", claims: adminClaims(),
		body: AdminPhoneRequest{PhoneNumber: "12"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockSvc.EXPECT().Deactivate(gomock.Any(), "adm0000001").Return(nil)
	rr = serve(t, NewAdminDeactivateHandler(mockSvc), testRequest{method: http.MethodPut, target: "/deactivate", claims: adminClaims()})
	assert.Equal(t, http.StatusOK, rr.Code)
}
