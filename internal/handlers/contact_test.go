package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"received", nil, http.StatusOK},
		{"missing message", services.ErrMissingFields, http.StatusBadRequest},
		{"mail failed", services.ErrEmailDelivery, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockContactMessenger(ctrl)
			var msg *models.ContactMessageDB
			if tt.err == nil {
				msg = &models.ContactMessageDB{ContactID: "c1"}
			}
			mockSvc.EXPECT().SendContactMessage(gomock.Any(), "Dan", "dan@example.com", "hello").Return(msg, tt.err)

			rr := serve(t, NewContactHandler(mockSvc), testRequest{
				method: http.MethodPost, target: "/contact-us-message",
				body: ContactRequest{Name: "Dan", Email: "dan@example.com", Message: "hello"},
			})
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
