package handlers

import (
	"github.com/gofiber/fiber/v2"

	"misfitpups/internal/log"
	"misfitpups/internal/services"
)

// APIHandler serves the same filters as the pages, as JSON. The live filter
// forms in web/static/app.js redraw their results from it.
type APIHandler struct {
	Catalog *services.CatalogService
	Reviews *services.ReviewService
}

// GET /api/v1/puppies?q=&breed=&color=&status=
func (h *APIHandler) Puppies(c *fiber.Ctx) error {
	f, field, ok := puppyFilterFrom(c)
	if !ok {
		c.Status(fiber.StatusBadRequest)
		log.Security(c, "validation.fail", map[string]any{"field": field})
		return c.JSON(fiber.Map{"error": "invalid " + field})
	}
	pups, err := h.Catalog.SearchPuppies(f)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "api.puppies.fail", err, nil)
		return c.JSON(fiber.Map{"error": "could not load puppies"})
	}
	return c.JSON(fiber.Map{"count": len(pups), "items": pups})
}

// GET /api/v1/applications?q=&status=
func (h *APIHandler) Applications(c *fiber.Ctx) error {
	f, field, ok := applicationFilterFrom(c)
	if !ok {
		c.Status(fiber.StatusBadRequest)
		log.Security(c, "validation.fail", map[string]any{"field": field})
		return c.JSON(fiber.Map{"error": "invalid " + field})
	}
	apps, err := h.Reviews.Search(f)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "api.applications.fail", err, nil)
		return c.JSON(fiber.Map{"error": "could not load applications"})
	}
	return c.JSON(fiber.Map{"count": len(apps), "items": apps})
}
