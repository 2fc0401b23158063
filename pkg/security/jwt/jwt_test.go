package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznecov/bookmarkd/pkg/account"
)

func testAccount() account.Account {
	return account.Account{
		ID:    uuid.New(),
		Email: "a@x.com",
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", "bookmarkd", 15*time.Minute)
	acct := testAccount()

	token, err := svc.Issue(context.Background(), acct)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, acct.ID.String(), claims.Subject)
	assert.Equal(t, acct.Email, claims.Email)
	assert.Equal(t, "bookmarkd", claims.Issuer)

	// exp = iat + ttl
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 15*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", "bookmarkd", -1*time.Second)
	token, err := svc.Issue(context.Background(), testAccount())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewService("right-secret", "bookmarkd", time.Minute)
	token, err := issuer.Issue(context.Background(), testAccount())
	require.NoError(t, err)

	verifier := NewService("wrong-secret", "bookmarkd", time.Minute)
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewService("secret", "someone-else", time.Minute)
	token, err := issuer.Issue(context.Background(), testAccount())
	require.NoError(t, err)

	verifier := NewService("secret", "bookmarkd", time.Minute)
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", "bookmarkd", time.Minute)
	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token=%q", tok)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", "bookmarkd", time.Minute)
	token, err := svc.Issue(context.Background(), testAccount())
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}
