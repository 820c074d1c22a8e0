package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies session tokens. Overridden from the
// JWT_SECRET environment variable by InitJWTSecret at startup.
var jwtSecretKey = []byte("gymdesk-dev-only-secret")

// SessionTokenTTL is how long a dashboard session stays valid.
const SessionTokenTTL = 7 * 24 * time.Hour

// InitJWTSecret loads the signing secret from the environment.
func InitJWTSecret() {
	if secret := Getenv("JWT_SECRET", ""); secret != "" {
		jwtSecretKey = []byte(secret)
	}
}

// Claims defines the JWT claims structure. GymID is the tenant that
// every member/payment query is scoped to.
type Claims struct {
	GymID   string `json:"gym_id"`
	Email   string `json:"email"`
	GymName string `json:"gym_name"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for a gym owner.
func GenerateSessionToken(gymID, email, gymName string) (string, error) {
	expirationTime := time.Now().Add(SessionTokenTTL)
	claims := &Claims{
		GymID:   gymID,
		Email:   email,
		GymName: gymName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gymdesk-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
