// Package notice carries one-shot user messages from a write operation to the
// page rendered after its redirect.
package notice

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vaishalishah/portfolio/internal/pkg/validation"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Notice is a transient banner shown once on the next rendered page.
type Notice struct {
	Type    Type
	Message string
}

func Success(message string) *Notice {
	return &Notice{Type: TypeSuccess, Message: message}
}

func Error(message string) *Notice {
	return &Notice{Type: TypeError, Message: message}
}

func Info(message string) *Notice {
	return &Notice{Type: TypeInfo, Message: message}
}

// Map converts the notice into the flash payload read by the layout.
func (n *Notice) Map() fiber.Map {
	return fiber.Map{
		"type":    string(n.Type),
		"message": n.Message,
	}
}

// Outcome is the result of a form submission. Either RedirectTo is set, with
// an optional Notice for the next page, or the form must be shown again with
// the submitted Input and its Errors.
type Outcome[T any] struct {
	RedirectTo string
	Notice     *Notice
	Input      T
	Errors     validation.Errors
}

// IsRedirect reports whether the caller should redirect.
func (o Outcome[T]) IsRedirect() bool {
	return o.RedirectTo != ""
}

// Redirect builds a redirecting outcome.
func Redirect[T any](to string, n *Notice) Outcome[T] {
	return Outcome[T]{RedirectTo: to, Notice: n}
}

// Redisplay builds an outcome that shows the submitted form again.
func Redisplay[T any](input T, errs validation.Errors) Outcome[T] {
	return Outcome[T]{Input: input, Errors: errs}
}

// Send attaches n to the response as a flash cookie and redirects to url.
func Send(c *fiber.Ctx, url string, n *Notice) error {
	if n == nil {
		return c.Redirect(url, fiber.StatusSeeOther)
	}
	switch n.Type {
	case TypeSuccess:
		flash.WithSuccess(c, n.Map())
	case TypeInfo:
		flash.WithInfo(c, n.Map())
	default:
		flash.WithError(c, n.Map())
	}
	return c.Redirect(url, fiber.StatusSeeOther)
}
