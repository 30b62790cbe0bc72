package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"misfitpups/internal/log"
)

type RouteOptions struct {
	// APIMax requests per APIWindow per client IP on /api/v1.
	APIMax    int
	APIWindow time.Duration
}

var DefaultRouteOptions = RouteOptions{APIMax: 30, APIWindow: 30 * time.Second}

// Register mounts the site routes. It ends with the catch-all 404, so static
// handlers must be mounted before calling it.
func Register(app *fiber.App, d *Deps, opts RouteOptions) {
	app.Get("/", d.HomeHandler.Home)
	app.Post("/apply", d.HomeHandler.Apply)
	app.Get("/applications", d.ApplicationsHandler.List)
	app.Get("/puppy/:id", d.ProfileHandler.Puppy)
	app.Get("/breeder/:slug", d.ProfileHandler.Breeder)

	api := app.Group("/api/v1", limiter.New(limiter.Config{
		Max:        opts.APIMax,
		Expiration: opts.APIWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|api"
		},
		LimitReached: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusTooManyRequests)
			log.Security(c, "rate.api.hit", nil)
			return c.JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	api.Get("/puppies", d.APIHandler.Puppies)
	api.Get("/applications", d.APIHandler.Applications)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "Page not found")
	})
}
