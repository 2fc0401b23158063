package jwt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznecov/bookmarkd/pkg/account"
	"github.com/mkuznecov/bookmarkd/pkg/repository/memory"
	"github.com/mkuznecov/bookmarkd/pkg/security/jwt"
)

func newGuardedApp(t *testing.T, svc *jwt.Service, repo *memory.AccountRepository) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", jwt.NewAuthMiddleware(svc, repo, zerolog.Nop()), func(c *fiber.Ctx) error {
		acct, ok := jwt.AccountFromCtx(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"email": acct.Email})
	})
	return app
}

func seedAccount(t *testing.T, repo *memory.AccountRepository) account.Account {
	t.Helper()
	acct := account.Account{
		ID:           uuid.New(),
		Email:        "gate@example.com",
		PasswordHash: "irrelevant",
		FirstName:    "G",
		LastName:     "K",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), acct))
	return acct
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := jwt.NewService("secret", "bookmarkd", time.Minute)
	app := newGuardedApp(t, svc, repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := jwt.NewService("secret", "bookmarkd", time.Minute)
	app := newGuardedApp(t, svc, repo)

	for _, header := range []string{"garbage", "Basic abc", "Bearer ", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header=%q", header)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	repo := memory.NewAccountRepository()
	acct := seedAccount(t, repo)

	expired := jwt.NewService("secret", "bookmarkd", -1*time.Second)
	token, err := expired.Issue(context.Background(), acct)
	require.NoError(t, err)

	app := newGuardedApp(t, jwt.NewService("secret", "bookmarkd", time.Minute), repo)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	repo := memory.NewAccountRepository()
	acct := seedAccount(t, repo)

	svc := jwt.NewService("secret", "bookmarkd", time.Minute)
	token, err := svc.Issue(context.Background(), acct)
	require.NoError(t, err)

	repo.Delete(context.Background(), acct.ID)

	app := newGuardedApp(t, svc, repo)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// A valid token whose account is gone must look exactly like a bad token.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	repo := memory.NewAccountRepository()
	acct := seedAccount(t, repo)

	svc := jwt.NewService("secret", "bookmarkd", time.Minute)
	token, err := svc.Issue(context.Background(), acct)
	require.NoError(t, err)

	app := newGuardedApp(t, svc, repo)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
