package account_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznecov/bookmarkd/pkg/account"
	"github.com/mkuznecov/bookmarkd/pkg/repository/memory"
	"github.com/mkuznecov/bookmarkd/pkg/security/argon2"
	"github.com/mkuznecov/bookmarkd/pkg/security/jwt"
)

func newTestService() (account.UseCase, *memory.AccountRepository, *jwt.Service) {
	repo := memory.NewAccountRepository()
	hasher := argon2.NewHasher(argon2.Params{
		Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	})
	tokens := jwt.NewService("test-secret", "bookmarkd", 15*time.Minute)
	return account.NewService(repo, hasher, tokens), repo, tokens
}

func signUpInput() account.SignUpInput {
	return account.SignUpInput{
		Email:     "a@x.com",
		Password:  "P@ssw0rd1",
		FirstName: "A",
		LastName:  "B",
	}
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	svc, repo, tokens := newTestService()

	token, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.Subject)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "P@ssw0rd1")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	_, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), signUpInput())
	assert.ErrorIs(t, err, account.ErrCredentialsTaken)
}

func TestSignUp_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SignUp(context.Background(), signUpInput())
		}(i)
	}
	wg.Wait()

	var succeeded, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, account.ErrCredentialsTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one signup must win")
	assert.Equal(t, n-1, taken)
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestService()
	_, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)

	token, err := svc.SignIn(context.Background(), "a@x.com", "P@ssw0rd1")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSignIn_IndistinguishableFailures(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	_, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)

	_, wrongPassword := svc.SignIn(context.Background(), "a@x.com", "wrong")
	_, unknownEmail := svc.SignIn(context.Background(), "nobody@x.com", "P@ssw0rd1")

	assert.ErrorIs(t, wrongPassword, account.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, account.ErrInvalidCredentials)
	// Same error value: the response body cannot differ between the cases.
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc, repo, tokens := newTestService()
	token, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, stored.ID.String(), claims.Subject)

	newFirst := "Anna"
	updated, err := svc.UpdateProfile(context.Background(), stored.ID, account.ProfileUpdate{FirstName: &newFirst})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService()
	_, err := svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)

	other := signUpInput()
	other.Email = "b@x.com"
	_, err = svc.SignUp(context.Background(), other)
	require.NoError(t, err)

	acctB, err := repo.GetByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)

	takenEmail := "a@x.com"
	_, err = svc.UpdateProfile(context.Background(), acctB.ID, account.ProfileUpdate{Email: &takenEmail})
	assert.ErrorIs(t, err, account.ErrCredentialsTaken)
}
