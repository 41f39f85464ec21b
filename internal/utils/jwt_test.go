package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	accountID := int64(123)

	token, err := GenerateJWTToken(issuer, accountID, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, accountID, token.AccountID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok, "could not cast claims to RegisteredClaims")
	assert.Equal(t, issuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsedToken.AccountID)
	assert.Equal(t, "456", parsedToken.Subject)
	assert.Equal(t, genToken.SignedString, parsedToken.String())

	accountID, err := parsedToken.GetAccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(456), accountID)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("real-issuer", 1, time.Hour, "correct-key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("real-issuer", 1, -time.Second, "correct-key")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "real-issuer",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: "wrong-key", issuer: "real-issuer", target: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired.SignedString, key: "correct-key", issuer: "real-issuer", target: jwt.ErrTokenExpired},
		{name: "wrong issuer", token: valid.SignedString, key: "correct-key", issuer: "fake-issuer", target: jwt.ErrTokenInvalidIssuer},
		{name: "alg none", token: unsigned, key: "correct-key", issuer: "real-issuer", target: jwt.ErrTokenSignatureInvalid},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "iss", target: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		want      string
		expectErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", expectErr: true},
		{name: "no token", header: "Bearer", expectErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", expectErr: true},
		{name: "too many parts", header: "Bearer a b", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
