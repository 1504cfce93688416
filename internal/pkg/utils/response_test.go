package utils

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyprus-transfer/internal/pkg/errors"
)

func TestSendSuccess_MetaCarriesOnlyPaging(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SendSuccess(c, []string{"a", "b"}, &Meta{Total: 2, Limit: 5})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":["a","b"],"meta":{"total":2,"limit":5}}`, string(body))
}

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/known", func(c *fiber.Ctx) error { return SendError(c, errors.ErrLocationNotFound) })
	app.Get("/unknown", func(c *fiber.Ctx) error { return SendError(c, io.ErrUnexpectedEOF) })

	resp, err := app.Test(httptest.NewRequest("GET", "/known", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"code":"INTERNAL_SERVER_ERROR"`)
}
