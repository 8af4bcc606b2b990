package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "hourlog/docs" // registers the OpenAPI document with swag

	"hourlog/internal/service"
)

const openAPIIndex = "/openapi/index.html"

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when no relational backend is in use.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.HoursService, gatherer prometheus.Gatherer) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(openAPIIndex, fiber.StatusTemporaryRedirect)
	})
	app.Get("/openapi/*", swagger.HandlerDefault)

	app.Get("/health", HealthCheck(db))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	api.Get("/health_check", LivenessProbe())

	hours := api.Group("/hours")
	hours.Get("/", ListHours(svc))
	hours.Post("/", LogHours(svc))
	hours.Post("/export", ExportHours(svc))
	hours.Get("/:id", GetHours(svc))
	hours.Delete("/:id", DeleteHours(svc))
}
