package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// OperatorTokenIssuer is the issuer claim of back-office tokens.
const OperatorTokenIssuer = "bank_statements_api"

// GenerateAPIKey returns a random hex key of lengthInBytes*2 characters.
func GenerateAPIKey(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashAPIKey hashes a back-office API key with bcrypt, for ADMIN_API_KEY_HASH.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAPIKeyHash compares a plaintext API key with its bcrypt hash.
func CheckAPIKeyHash(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

// IssueOperatorToken signs an HS256 token whose subject is the operator id.
func IssueOperatorToken(operatorID, secret string, ttl time.Duration) (string, error) {
	if operatorID == "" {
		return "", fmt.Errorf("operator id is required")
	}
	if secret == "" {
		return "", fmt.Errorf("signing secret is required")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    OperatorTokenIssuer,
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
