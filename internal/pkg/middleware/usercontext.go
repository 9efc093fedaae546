package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/vaishalishah/portfolio/internal/pkg/session"
	"github.com/vaishalishah/portfolio/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the principal of every request from its session.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := usercontext.UserContext{IsLoggedIn: false, IsAdmin: false}

	store := session.GetSessionStore()
	if store == nil {
		usercontext.SetUserContext(c, anonymous)
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		log.Warnf("Error loading session: %v", err)
		usercontext.SetUserContext(c, anonymous)
		return c.Next()
	}

	userID, _ := sess.Get(usercontext.KeyUserID).(string)
	if userID == "" {
		usercontext.SetUserContext(c, anonymous)
		return c.Next()
	}

	email, _ := sess.Get(usercontext.KeyEmail).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	userCtx := usercontext.UserContext{
		UserID:     userID,
		Email:      email,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	}
	if isAdmin {
		userCtx.Roles = []string{usercontext.RoleAdmin}
	}
	usercontext.SetUserContext(c, userCtx)
	c.Locals(usercontext.KeyUserID, userID)
	c.Locals(usercontext.KeyEmail, email)

	return c.Next()
}
