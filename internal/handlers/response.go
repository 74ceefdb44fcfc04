package handlers

//go:generate mockgen -destination=handlers_mock.go -package=handlers . Registerer,Loginer,EmailVerifier,EmailOTPer,PasswordManager,PhoneOTPer,SecondaryEmailer,ProfileManager,GoogleOAuthProvider,GoogleLoginer,TransactionManager,ContactMessenger,AdminManager

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgUnauthorized  = "Unauthorized"
	msgInternalError = "Internal server error"
)

// Response is the envelope every endpoint answers with.
// swagger:model Response
type Response struct {
	// success or failed
	// default: success
	Status string `json:"status"`

	// Human readable outcome
	Message string `json:"message"`
}

// errorStatuses maps service sentinels to HTTP status codes. Order matters:
// ErrGoogleAccountExists wraps ErrDuplicateAccount.
var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrMissingFields, http.StatusBadRequest},
	{services.ErrInvalidEmail, http.StatusBadRequest},
	{services.ErrInvalidPhone, http.StatusBadRequest},
	{services.ErrWeakPassword, http.StatusBadRequest},
	{services.ErrPasswordMismatch, http.StatusBadRequest},
	{services.ErrPasswordReused, http.StatusBadRequest},
	{services.ErrSameAsPrimaryEmail, http.StatusBadRequest},
	{services.ErrInvalidTransaction, http.StatusBadRequest},
	{services.ErrInvalidFilter, http.StatusBadRequest},
	{services.ErrInvalidOTP, http.StatusBadRequest},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrIncorrectPassword, http.StatusUnauthorized},
	{services.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrEmailNotVerified, http.StatusForbidden},
	{services.ErrGoogleAccount, http.StatusForbidden},
	{services.ErrAccountNotFound, http.StatusNotFound},
	{services.ErrTransactionNotFound, http.StatusNotFound},
	{services.ErrAdminNotFound, http.StatusNotFound},
	{services.ErrGoogleAccountExists, http.StatusConflict},
	{services.ErrDuplicateAccount, http.StatusConflict},
	{services.ErrOTPConsumed, http.StatusConflict},
	{services.ErrEmailDelivery, http.StatusBadGateway},
	{services.ErrSMSDelivery, http.StatusBadGateway},
}

// statusFor returns the HTTP status and client message for err. Provider
// causes wrapped in delivery errors are not exposed.
func statusFor(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: StatusSuccess, Message: message})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: StatusFailed, Message: message})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("internal server error", "uri", r.RequestURI, "error", err)
	}
	writeFailure(w, status, message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFailure(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// requireClaims returns the claims set by the auth middleware.
func requireClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		writeFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return nil, false
	}
	return claims, true
}
