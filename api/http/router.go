package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkuznecov/bookmarkd/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Protected groups
// are created with the auth middleware attached, so every handler under
// /users and /bookmarks runs behind the gate; there is no way to add a
// route to those groups that skips it.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	user *handlers.UserHandler,
	bookmark *handlers.BookmarkHandler,
	health *handlers.HealthHandler,
) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	a := app.Group("/auth")
	a.Post("/signup", auth.SignUp)
	a.Post("/signin", auth.SignIn)

	users := app.Group("/users", authMW)
	users.Get("/me", user.Me)
	users.Patch("/me", user.UpdateMe)

	b := app.Group("/bookmarks", authMW)
	b.Post("/", bookmark.Create)
	b.Get("/", bookmark.List)
	b.Get("/:id", bookmark.GetByID)
	b.Patch("/:id", bookmark.Update)
	b.Delete("/:id", bookmark.Delete)
}
