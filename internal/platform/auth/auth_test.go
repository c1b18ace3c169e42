package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", "quote-verse", time.Hour)

	token, err := m.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "quote-verse", time.Hour)
	verifier := NewTokenManager("secret-b", "quote-verse", time.Hour)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestTokenManager_RejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenManager("secret", "someone-else", time.Hour)
	verifier := NewTokenManager("secret", "quote-verse", time.Hour)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("secret", "quote-verse", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return past }

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = time.Now

	_, err = m.Verify(token)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("secret", "quote-verse", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.NoError(t, h.Compare(hash, "hunter2"))

	err = h.Compare(hash, "wrong")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "pw"))
}
