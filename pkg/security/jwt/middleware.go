package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mkuznecov/bookmarkd/pkg/account"
)

const localsAccountKey = "account"

// NewAuthMiddleware returns a Fiber middleware guarding protected routes.
// It validates the Bearer token, resolves the account behind the token's
// subject and stores it in the request context. Every failure — missing
// header, bad signature, expired token, or an account that no longer
// exists — produces the same 401 so a client cannot tell the causes apart.
func NewAuthMiddleware(tokens *Service, accounts account.Repository, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenStr == "" {
			return unauthorized(c)
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			return unauthorized(c)
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return unauthorized(c)
		}
		acct, err := accounts.GetByID(c.Context(), id)
		if err != nil {
			// Stale token for a deleted account is treated exactly like an
			// invalid one.
			if !errors.Is(err, account.ErrNotFound) {
				log.Error().Err(err).Msg("account lookup failed")
			}
			return unauthorized(c)
		}

		c.Locals(localsAccountKey, acct)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
}

// AccountFromCtx returns the account resolved by the auth middleware.
// The second result is false on unprotected routes.
func AccountFromCtx(c *fiber.Ctx) (account.Account, bool) {
	acct, ok := c.Locals(localsAccountKey).(account.Account)
	return acct, ok
}
