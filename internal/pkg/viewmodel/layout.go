package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout is the data every page hands to layouts/main.
type Layout struct {
	Page          string
	FromProtected bool
	IsAdmin       bool
	Email         string
	AvatarURL     string
	Msg           fiber.Map
	CSRFToken     string
	OGViewModel   *OpenGraph
}

// HasMessage reports whether a flash notice should be rendered.
func (l Layout) HasMessage() bool {
	msg, ok := l.Msg["message"].(string)
	return ok && msg != ""
}

// MessageType returns the notice type or "info".
func (l Layout) MessageType() string {
	if t, ok := l.Msg["type"].(string); ok && t != "" {
		return t
	}
	return "info"
}
