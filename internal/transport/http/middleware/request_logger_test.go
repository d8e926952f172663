package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/players/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusServiceUnavailable)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/players/p1", nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "http", entries[0].LoggerName)
	require.Equal(t, "/players/:id", first["route"])
	require.Equal(t, "/players/p1", first["path"])
	require.EqualValues(t, http.StatusOK, first["status"])
	require.NotEmpty(t, first["request_id"])

	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.EqualValues(t, http.StatusServiceUnavailable, entries[1].ContextMap()["status"])
}
