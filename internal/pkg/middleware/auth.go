package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	icuser "github.com/vaishalishah/portfolio/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !icuser.IsLoggedIn(c) {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAdmin lets only members of the Admin role through. Anonymous
// visitors are sent to the login page, other users get a 403.
func RequireAdmin(c *fiber.Ctx) error {
	if !icuser.IsLoggedIn(c) {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	if !icuser.HasRole(c, icuser.RoleAdmin) {
		return fiber.ErrForbidden
	}
	return c.Next()
}
