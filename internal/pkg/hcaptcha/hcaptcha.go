package hcaptcha

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/internal/pkg/env"
)

const DefaultEndpoint = "https://hcaptcha.com/siteverify"

var ErrEmptyToken = errors.New("hCaptcha token is empty")

type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Client verifies tokens against the hCaptcha siteverify API.
type Client struct {
	Secret   string
	Endpoint string
	Timeout  time.Duration
}

// FromEnv returns a client when HCAPTCHA_SECRET is set, nil otherwise.
func FromEnv() *Client {
	secret := env.GetEnv("HCAPTCHA_SECRET", "")
	if secret == "" {
		return nil
	}
	return &Client{Secret: secret, Endpoint: DefaultEndpoint, Timeout: 5 * time.Second}
}

// SiteKey is rendered into the contact form when captcha is enabled.
func SiteKey() string {
	return env.GetEnv("HCAPTCHA_SITEKEY", "")
}

func (c *Client) Verify(token string) (bool, error) {
	if token == "" {
		return false, ErrEmptyToken
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("secret", c.Secret)
	args.Set("response", token)

	agent := fiber.Post(c.Endpoint).Form(args)
	if c.Timeout > 0 {
		agent.Timeout(c.Timeout)
	}

	var response Response
	code, _, errs := agent.Struct(&response)
	if len(errs) > 0 {
		return false, fmt.Errorf("failed to send request to hCaptcha API: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return false, fmt.Errorf("hCaptcha API returned status %d", code)
	}

	if !response.Success {
		if len(response.ErrorCodes) > 0 {
			return false, fmt.Errorf("hCaptcha validation failed: %s", strings.Join(response.ErrorCodes, ", "))
		}
		return false, errors.New("hCaptcha validation failed")
	}

	return true, nil
}
