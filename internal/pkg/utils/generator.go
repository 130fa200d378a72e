package utils

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const urlSafeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// GenerateURLSafeID produces a random identifier safe to embed in URLs and
// object storage paths. Used for assessment ids.
func GenerateURLSafeID(length int) (string, error) {
	max := big.NewInt(int64(len(urlSafeChars)))

	id := make([]byte, length)
	for i := range id {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		id[i] = urlSafeChars[num.Int64()]
	}

	return string(id), nil
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionJWT(email, role, secret string, jwtExpiryTimeInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Duration(jwtExpiryTimeInHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
