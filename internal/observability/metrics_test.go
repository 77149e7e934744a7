package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(200))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "unknown", StatusClass(0))
	assert.Equal(t, "unknown", StatusClass(700))
}

func TestMetricsMiddlewareCountsByRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/things/:id", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/things/:id", "2xx"))

	resp, err := app.Test(httptest.NewRequest("GET", "/things/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/things/:id", "2xx"))
	assert.Equal(t, float64(1), after-before)
}

func TestMetricsMiddlewareUsesErrorStatus(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/teapot", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/teapot", "4xx"))

	_, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/teapot", "4xx"))
	assert.Equal(t, float64(1), after-before)
}
