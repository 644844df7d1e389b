package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akosarev/notekeeper/internal/common"
)

// UserClaim is the owner identity embedded into every access token.
type UserClaim struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// Claims carries the standard registered claims plus the owning user.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// GenerateToken signs an HS256 token embedding the given user identity,
// valid for validityDuration from now.
func GenerateToken(user UserClaim, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		User: user,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserFromToken parses and verifies tokenString and returns the embedded
// user identity. Expired or malformed tokens yield common.ErrorInvalidToken.
func GetUserFromToken(tokenString string, secretKey []byte) (*UserClaim, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return &claims.User, nil
}
