package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionValuesSurviveRequests(t *testing.T) {
	NewSessionStore(nil)

	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		return SetSessionValue(c, "email", "a@b.com")
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		return c.SendString(GetSessionValue(c, "email"))
	})
	app.Get("/destroy", func(c *fiber.Ctx) error {
		return Destroy(c)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/set", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(fiber.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", string(body))

	req = httptest.NewRequest(fiber.MethodGet, "/destroy", nil)
	req.AddCookie(cookie)
	_, err = app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest(fiber.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHelpersWithoutStore(t *testing.T) {
	sessionStore = nil
	t.Cleanup(func() { sessionStore = nil })

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Error(t, SetSessionValue(c, "k", "v"))
		assert.Empty(t, GetSessionValue(c, "k"))
		assert.NoError(t, Destroy(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
}
