package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     string   `json:"user_id"`
	Email      string   `json:"email"`
	IsLoggedIn bool     `json:"is_logged_in"`
	IsAdmin    bool     `json:"is_admin"`
	Roles      []string `json:"roles"`
}

// Principal is the authenticated identity acting on a request.
type Principal struct {
	ID    string
	Email string
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return ctx
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// SetUserContext stores the user context and the legacy flags used by middlewares
func SetUserContext(c *fiber.Ctx, userCtx UserContext) {
	c.Locals(KeyUserContext, userCtx)
	c.Locals(KeyFromProtected, userCtx.IsLoggedIn)
	c.Locals(KeyIsAdmin, userCtx.IsAdmin)
}

// CurrentPrincipal returns the logged in principal, or nil for anonymous requests
func CurrentPrincipal(c *fiber.Ctx) *Principal {
	userCtx := GetUserContext(c)
	if !userCtx.IsLoggedIn || userCtx.UserID == "" {
		return nil
	}
	return &Principal{ID: userCtx.UserID, Email: userCtx.Email}
}

// HasRole reports whether the current user holds role
func HasRole(c *fiber.Ctx, role string) bool {
	userCtx := GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return false
	}
	for _, r := range userCtx.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}

// GetUserID returns the current user's ID, or an empty string if not logged in
func GetUserID(c *fiber.Ctx) string {
	return GetUserContext(c).UserID
}
