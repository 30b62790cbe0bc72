package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"misfitpups/internal/log"
	"misfitpups/internal/services"
	"misfitpups/internal/validate"
)

type ProfileHandler struct {
	Catalog *services.CatalogService
}

// GET /puppy/:id
func (h *ProfileHandler) Puppy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		log.Security(c, "validation.fail", map[string]any{"field": "puppy"})
		return notFound(c, "This pup is no longer listed")
	}
	p, err := h.Catalog.GetPuppy(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error(c, "puppy.load.fail", err, map[string]any{"puppy": id})
		}
		return notFound(c, "This pup is no longer listed")
	}
	return render(c, "puppy", fiber.Map{"P": p})
}

// GET /breeder/:slug
func (h *ProfileHandler) Breeder(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		log.Security(c, "validation.fail", map[string]any{"field": "breeder"})
		return notFound(c, "Breeder not found")
	}
	prof, err := h.Catalog.GetBreeder(slug)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Breeder not found")
	}
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "breeder.load.fail", err, map[string]any{"breeder": slug})
		return ErrorPage(c, fiber.StatusInternalServerError, "Could not load this breeder. Please retry.")
	}
	return render(c, "breeder", fiber.Map{"B": prof.Breeder, "Puppies": prof.Puppies, "Count": len(prof.Puppies)})
}
