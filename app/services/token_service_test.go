package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T, ttl time.Duration) TokenService {
	t.Helper()

	service, err := NewTokenService(
		ttl,
		"autoslot-test",
		"autoslot-test-api",
		false,
		"",
		"",
		"test-secret-key-that-is-long-enough-for-hs256",
	)
	require.NoError(t, err)
	return service
}

func TestNewTokenService(t *testing.T) {
	t.Run("SymmetricKey", func(t *testing.T) {
		service, err := NewTokenService(5*time.Hour, "iss", "aud", false, "", "", "secret")
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("MissingSecretKey", func(t *testing.T) {
		service, err := NewTokenService(5*time.Hour, "iss", "aud", false, "", "", "")
		assert.Error(t, err)
		assert.Nil(t, service)
	})

	t.Run("RSAWithoutKeys", func(t *testing.T) {
		service, err := NewTokenService(5*time.Hour, "iss", "aud", true, "", "", "")
		assert.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestGenerateToken(t *testing.T) {
	service := createTestTokenService(t, 5*time.Hour)

	token, err := service.GenerateToken(10001)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have three segments")
}

func TestValidateToken(t *testing.T) {
	service := createTestTokenService(t, 5*time.Hour)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := service.GenerateToken(10001)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(10001), claims.EmployeeID)
		assert.Equal(t, "access", claims.TokenType)
		assert.NotEmpty(t, claims.TokenID)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
	})

	t.Run("ExpiryMatchesTTL", func(t *testing.T) {
		token, err := service.GenerateToken(7)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.InDelta(t, 5*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt), float64(time.Second))
	})

	t.Run("MalformedToken", func(t *testing.T) {
		claims, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, err := service.GenerateToken(10001)
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "XXXX"
		claims, err := service.ValidateToken(tampered)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		// The alg "none" rejection message contains the substring "exp",
		// which a naive string match would classify as an expired token.
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"employee_id": float64(10001),
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.NotErrorIs(t, err, ErrTokenExpired)
		assert.Nil(t, claims)
	})

	t.Run("WrongKey", func(t *testing.T) {
		otherService, err := NewTokenService(5*time.Hour, "autoslot-test", "autoslot-test-api", false, "", "", "a-different-secret-key")
		require.NoError(t, err)

		token, err := otherService.GenerateToken(10001)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, claims)
	})
}

func TestValidateToken_Expired(t *testing.T) {
	service := createTestTokenService(t, 1*time.Second)

	token, err := service.GenerateToken(10001)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	claims, err := service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestGenerateToken_Concurrent(t *testing.T) {
	service := createTestTokenService(t, 5*time.Hour)

	const goroutines = 20
	tokens := make([]string, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			token, err := service.GenerateToken(uint(10001 + idx))
			assert.NoError(t, err)
			tokens[idx] = token
		}(i)
	}
	wg.Wait()

	// Every token carries a fresh jti, so no two should collide
	seen := make(map[string]bool, goroutines)
	for i, token := range tokens {
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(10001+i), claims.EmployeeID)
		assert.False(t, seen[claims.TokenID], "duplicate token ID")
		seen[claims.TokenID] = true
	}
}

func BenchmarkGenerateToken(b *testing.B) {
	service, err := NewTokenService(5*time.Hour, "iss", "aud", false, "", "", "benchmark-secret-key")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.GenerateToken(10001); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateToken(b *testing.B) {
	service, err := NewTokenService(5*time.Hour, "iss", "aud", false, "", "", "benchmark-secret-key")
	if err != nil {
		b.Fatal(err)
	}
	token, err := service.GenerateToken(10001)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.ValidateToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
