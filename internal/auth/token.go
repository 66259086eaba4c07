package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

// Claims are the session token claims.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 session tokens.
type TokenIssuer struct {
	signingKey []byte
	issuer     string
}

func NewTokenIssuer(signingKey string, issuer string) *TokenIssuer {
	return &TokenIssuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// Issue returns a signed token for employee valid from now for ttl, and the
// token's jti.
func (s *TokenIssuer) Issue(employee id.EmployeeID, role id.Role, now time.Time, ttl time.Duration) (string, string, error) {
	jti := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		EmployeeID: string(employee),
		Role:       string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(employee),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        jti,
		},
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

// Validate checks the signature, issuer and expiry of tokenString at now.
func (s *TokenIssuer) Validate(tokenString string, now time.Time) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" || claims.EmployeeID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	return claims, nil
}
