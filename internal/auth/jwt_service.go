package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the duration for which session tokens are valid.
const TokenExpiry = 7 * 24 * time.Hour

var (
	// ErrTokenExpired is returned when a token's signature checks out but
	// its validity window has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for every other verification failure:
	// bad signature, malformed payload, unexpected algorithm.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims represents the identity carried by a session token.
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed session tokens. Tokens are
// stateless: verification relies on signature and expiry alone, there is
// no revocation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a JWT service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Issue produces a signed token embedding the user's identity, valid for
// TokenExpiry from now.
func (s *JWTService) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded claims.
// Expiry and all other failures are distinguishable via errors.Is because
// they map to different user-facing messages.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		// A token can fail for several reasons at once; an untrusted
		// signature must never be reported as mere expiry.
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
