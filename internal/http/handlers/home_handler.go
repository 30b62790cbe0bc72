package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"misfitpups/internal/domain"
	"misfitpups/internal/log"
	"misfitpups/internal/services"
)

const applyAck = "Demo submit ✅ Next step: connect to database + approval dashboard."

type HomeHandler struct {
	Catalog *services.CatalogService
}

// GET /?q=&breed=&color=&status=
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	f, field, ok := puppyFilterFrom(c)
	if !ok {
		c.Status(fiber.StatusBadRequest)
		log.Security(c, "validation.fail", map[string]any{"field": field})
		return h.page(c, services.PuppyFilter{}, fiber.Map{"Err": "Invalid filter. Search by letters, numbers and simple punctuation."})
	}
	return h.page(c, f, nil)
}

// POST /apply. The application form is a placeholder: nothing is stored and
// the page only acknowledges the submit.
func (h *HomeHandler) Apply(c *fiber.Ctx) error {
	ref := uuid.NewString()
	log.Info(c, "apply.demo", map[string]any{"ref": ref})
	return h.page(c, services.PuppyFilter{}, fiber.Map{"Ack": applyAck, "AckRef": ref})
}

func (h *HomeHandler) page(c *fiber.Ctx, f services.PuppyFilter, extra fiber.Map) error {
	pups, err := h.Catalog.SearchPuppies(f)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "home.puppies.fail", err, nil)
		return ErrorPage(c, fiber.StatusInternalServerError, "Could not load puppies. Please retry.")
	}
	breeders, err := h.Catalog.ListBreeders()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "home.breeders.fail", err, nil)
		return ErrorPage(c, fiber.StatusInternalServerError, "Could not load breeders. Please retry.")
	}
	data := fiber.Map{
		"Puppies":  pups,
		"Count":    len(pups),
		"Filtered": f.Active(),
		"Q":        f.Query,
		"Breed":    f.Breed,
		"Color":    f.Color,
		"Status":   string(f.Status),
		"Statuses": domain.PuppyStatuses,
		"Breeders": breeders,
	}
	for k, v := range extra {
		data[k] = v
	}
	return render(c, "home", data)
}
