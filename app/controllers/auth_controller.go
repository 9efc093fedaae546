package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	"github.com/vaishalishah/portfolio/internal/pkg/notice"
	"github.com/vaishalishah/portfolio/internal/pkg/session"
	"github.com/vaishalishah/portfolio/internal/pkg/usercontext"
)

const loginFailedMessage = "Invalid email or password."

// AuthController handles login and logout
type AuthController struct {
	users repository.UserRepository
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

func landingPage(isAdmin bool) string {
	if isAdmin {
		return constants.AdminDashboardRoute
	}
	return constants.HomeRoute
}

func (ac *AuthController) renderLogin(c *fiber.Ctx, email, errMsg string) error {
	return render(c, "auth/login", " | Log in", fiber.Map{
		"Email": email,
		"Error": errMsg,
	})
}

// HandleLoginForm renders the login page
func (ac *AuthController) HandleLoginForm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if userCtx.IsLoggedIn {
		return c.Redirect(landingPage(userCtx.IsAdmin), fiber.StatusSeeOther)
	}
	return ac.renderLogin(c, "", "")
}

// HandleLogin checks the credentials and starts a session
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	// one message for unknown users and wrong passwords
	user, err := ac.users.GetByEmail(email)
	if err != nil || !user.CheckPassword(password) {
		log.Warnf("Failed login attempt for %s", email)
		c.Status(fiber.StatusUnauthorized)
		return ac.renderLogin(c, email, loginFailedMessage)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyEmail, user.Email)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())
	if err := sess.Save(); err != nil {
		return err
	}

	if err := ac.users.TouchLastLogin(user.ID); err != nil {
		log.Errorf("Error recording login of %s: %v", user.ID, err)
	}
	log.Infof("User logged in: %s", user.Email)

	return notice.Send(c, landingPage(user.IsAdmin()), notice.Success("Welcome back!"))
}

// HandleLogout ends the session
func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := session.Destroy(c); err != nil {
		log.Errorf("Error destroying session: %v", err)
	}
	return notice.Send(c, constants.HomeRoute, notice.Info("You have been logged out."))
}
