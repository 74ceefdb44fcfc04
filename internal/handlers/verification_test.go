package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVerifyEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"verified", nil, http.StatusOK},
		{"invalid token", services.ErrInvalidToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailVerifier(ctrl)
			mockSvc.EXPECT().VerifyEmail(gomock.Any(), "pub0000001", "tok").Return(tt.err)

			rr := serve(t, NewVerifyEmailHandler(mockSvc), testRequest{
				method: http.MethodGet,
				target: "/email-verification/pub0000001/tok",
				params: map[string]string{"publicId": "pub0000001", "token": "tok"},
			})
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestEmailOTPHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("send returns the public id", func(t *testing.T) {
		mockSvc := NewMockEmailOTPer(ctrl)
		mockSvc.EXPECT().SendEmailOTP(gomock.Any(), "john@example.com").
			Return(&models.AccountDB{PublicID: "pub0000001"}, nil)

		rr := serve(t, NewSendEmailOTPHandler(mockSvc), testRequest{
			method: http.MethodPost, target: "/send-otp-email",
			body: SendEmailOTPRequest{Email: "john@example.com"},
		})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pub0000001", decodeBody(t, rr)["publicId"])
	})

	t.Run("send to unknown account", func(t *testing.T) {
		mockSvc := NewMockEmailOTPer(ctrl)
		mockSvc.EXPECT().SendEmailOTP(gomock.Any(), gomock.Any()).Return(nil, services.ErrAccountNotFound)

		rr := serve(t, NewSendEmailOTPHandler(mockSvc), testRequest{
			method: http.MethodPost, target: "/send-otp-email",
			body: SendEmailOTPRequest{Email: "nobody@example.com"},
		})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"verified", nil, http.StatusOK},
		{"wrong code", services.ErrInvalidOTP, http.StatusBadRequest},
		{"already used", services.ErrOTPConsumed, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run("verify "+tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailOTPer(ctrl)
			mockSvc.EXPECT().VerifyEmailOTP(gomock.Any(), "pub0000001", "123456").Return(tt.err)

			rr := serve(t, NewVerifyEmailOTPHandler(mockSvc), testRequest{
				method: http.MethodPost, target: "/verify-otp-email/pub0000001",
				body:   VerifyOTPRequest{OTP: "123456"},
				params: map[string]string{"publicId": "pub0000001"},
			})
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestPhoneOTPHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPhoneOTPer(ctrl)
	body := PhoneOTPRequest{PhoneNumber: "9876543210", OTP: "123456"}

	mockSvc.EXPECT().SendPhoneOTP(gomock.Any(), "9876543210").Return(services.ErrSMSDelivery)
	rr := serve(t, NewSendPhoneOTPHandler(mockSvc), testRequest{method: http.MethodPost, target: "/", body: body})
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	mockSvc.EXPECT().VerifyPhoneOTP(gomock.Any(), "9876543210", "123456").Return(nil)
	rr = serve(t, NewVerifyPhoneOTPHandler(mockSvc), testRequest{method: http.MethodPost, target: "/", body: body})
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().SendProfilePhoneOTP(gomock.Any(), "pub0000001", "9876543210").Return(nil)
	rr = serve(t, NewSendProfilePhoneOTPHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/", body: body, claims: userClaims("pub0000001"),
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().VerifyProfilePhoneOTP(gomock.Any(), "pub0000001", "9876543210", "123456").Return(services.ErrOTPConsumed)
	rr = serve(t, NewVerifyProfilePhoneOTPHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/", body: body, claims: userClaims("pub0000001"),
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	// no claims, no service call
	rr = serve(t, NewVerifyProfilePhoneOTPHandler(mockSvc), testRequest{method: http.MethodPost, target: "/", body: body})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSecondaryEmailHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSecondaryEmailer(ctrl)
	claims := userClaims("pub0000001")

	mockSvc.EXPECT().SendSecondaryEmailOTP(gomock.Any(), "pub0000001", "john@example.com").Return(services.ErrSameAsPrimaryEmail)
	rr := serve(t, NewSendSecondaryEmailOTPHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/", claims: claims,
		body: SecondaryEmailRequest{SecondaryEmail: "john@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockSvc.EXPECT().VerifySecondaryEmailOTP(gomock.Any(), "pub0000001", "alt@example.com", "654321").Return(nil)
	rr = serve(t, NewVerifySecondaryEmailOTPHandler(mockSvc), testRequest{
		method: http.MethodPost, target: "/", claims: claims,
		body: SecondaryEmailRequest{SecondaryEmail: "alt@example.com", OTP: "654321"},
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
