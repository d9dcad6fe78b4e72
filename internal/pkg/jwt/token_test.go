package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func signTestToken(t *testing.T, secret string, claims jwtlib.MapClaims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	tokenString := signTestToken(t, testSecret, jwtlib.MapClaims{
		"user_id": userID.String(),
		"email":   "sam@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iss":     "moneybuddy-test",
	})

	claims, err := ValidateToken(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "sam@example.com", (*claims)["email"])
	assert.Equal(t, "moneybuddy-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString := signTestToken(t, testSecret, jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, err := ValidateToken(tokenString, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	tokenString := signTestToken(t, testSecret, jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ValidateToken(tokenString, testSecret)
	assert.Error(t, err)
}
