package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Token purposes. A token is only accepted for the purpose it was issued for.
const (
	PurposeSession           = "session"
	PurposeEmailVerification = "email_verification"
	PurposePasswordReset     = "password_reset"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrPurposeMismatch = errors.New("token purpose mismatch")
	ErrSubjectMismatch = errors.New("token subject mismatch")
)

// Claims carries the public identifier of the account (or admin) and its role.
type Claims struct {
	PublicID string `json:"public_id"`
	Role     string `json:"role,omitempty"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey       string        // Secret key for signing tokens
	Exp             time.Duration // Session token lifetime
	VerificationExp time.Duration // Email verification token lifetime
	ResetExp        time.Duration // Password reset token lifetime
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the session token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithVerificationExpiration sets the email verification token lifetime.
func WithVerificationExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.VerificationExp = exp }
}

// WithResetExpiration sets the password reset token lifetime.
func WithResetExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.ResetExp = exp }
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp:             time.Hour,
		VerificationExp: 24 * time.Hour,
		ResetExp:        time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a session token for the given public identifier and role.
func (j *JWT) Generate(ctx context.Context, publicID string, role string) (string, error) {
	return j.sign(publicID, role, PurposeSession, j.Exp, j.SecretKey)
}

// GenerateVerification creates an email verification token.
func (j *JWT) GenerateVerification(ctx context.Context, publicID string) (string, error) {
	return j.sign(publicID, "", PurposeEmailVerification, j.VerificationExp, j.SecretKey)
}

// GenerateReset creates a password reset token signed with a per-account
// secret (public identifier + server secret).
func (j *JWT) GenerateReset(ctx context.Context, publicID string) (string, error) {
	return j.sign(publicID, "", PurposePasswordReset, j.ResetExp, publicID+j.SecretKey)
}

// GetClaims parses a session token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, PurposeSession, j.SecretKey)
}

// ValidateVerification checks an email verification token issued for publicID.
func (j *JWT) ValidateVerification(ctx context.Context, publicID, tokenString string) error {
	claims, err := j.parse(tokenString, PurposeEmailVerification, j.SecretKey)
	if err != nil {
		return err
	}
	if claims.PublicID != publicID {
		return ErrSubjectMismatch
	}
	return nil
}

// ValidateReset checks a password reset token against the per-account secret.
func (j *JWT) ValidateReset(ctx context.Context, publicID, tokenString string) error {
	claims, err := j.parse(tokenString, PurposePasswordReset, publicID+j.SecretKey)
	if err != nil {
		return err
	}
	if claims.PublicID != publicID {
		return ErrSubjectMismatch
	}
	return nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (j *JWT) sign(publicID, role, purpose string, exp time.Duration, key string) (string, error) {
	now := time.Now()
	claims := Claims{
		PublicID: publicID,
		Role:     role,
		Purpose:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   publicID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

func (j *JWT) parse(tokenString, purpose, key string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(key), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.PublicID == "" {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrPurposeMismatch
	}
	return claims, nil
}
