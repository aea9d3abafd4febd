package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/githubrishi321/Blog-Application/internal/model"
)

const testSecret = "fixture-secret"

func testUser() model.User {
	return model.User{
		ID:              42,
		FullName:        "Alice Example",
		Email:           "a@x.com",
		PasswordHash:    "$2a$10$notarealhashnotarealhashnotarealhash",
		ProfileImageURL: "/images/alice.png",
		Role:            model.RoleUser,
	}
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	t.Parallel()

	u := testUser()
	tok, err := Issue(u, testSecret, TokenTTL)
	require.NoError(t, err)

	claims, err := Verify(tok, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.ID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.FullName, claims.FullName)
	assert.Equal(t, u.ProfileImageURL, claims.ProfileImageURL)
	assert.Equal(t, u.Role, claims.Role)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestIssueExcludesPasswordHash(t *testing.T) {
	t.Parallel()

	u := testUser()
	tok, err := Issue(u, testSecret, TokenTTL)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	assert.NotContains(t, string(payload), u.PasswordHash)
	assert.NotContains(t, string(payload), "password")
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testUser(), testSecret, -time.Second)
	require.NoError(t, err)

	_, err = Verify(tok, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJustBeforeExpiry(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testUser(), testSecret, 2*time.Second)
	require.NoError(t, err)

	_, err = Verify(tok, testSecret)
	assert.NoError(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testUser(), "other-secret", TokenTTL)
	require.NoError(t, err)

	_, err = Verify(tok, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testUser(), testSecret, TokenTTL)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[4] == 'A' {
		payload[4] = 'B'
	} else {
		payload[4] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = Verify(tampered, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := Verify(tok, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestClaimKeys(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testUser(), testSecret, TokenTTL)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	for _, key := range []string{`"_id"`, `"email"`, `"fullName"`, `"profileImageURL"`, `"role"`} {
		assert.Contains(t, string(payload), key)
	}
}
