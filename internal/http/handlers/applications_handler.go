package handlers

import (
	"github.com/gofiber/fiber/v2"

	"misfitpups/internal/domain"
	"misfitpups/internal/log"
	"misfitpups/internal/services"
)

// ApplicationsHandler shows the breeder review queue. It is read-only;
// approving and declining happen outside this site for now.
type ApplicationsHandler struct {
	Reviews *services.ReviewService
}

// GET /applications?q=&status=
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	f, field, ok := applicationFilterFrom(c)
	errMsg := ""
	if !ok {
		c.Status(fiber.StatusBadRequest)
		log.Security(c, "validation.fail", map[string]any{"field": field})
		errMsg = "Invalid filter"
		f = services.ApplicationFilter{}
	}
	apps, err := h.Reviews.Search(f)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "applications.list.fail", err, nil)
		return ErrorPage(c, fiber.StatusInternalServerError, "Could not load applications")
	}
	summary, err := h.Reviews.Summary()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		log.Error(c, "applications.summary.fail", err, nil)
		return ErrorPage(c, fiber.StatusInternalServerError, "Could not load applications")
	}
	return render(c, "applications", fiber.Map{
		"Apps":     apps,
		"Count":    len(apps),
		"Summary":  summary,
		"Q":        f.Query,
		"Status":   string(f.Status),
		"Statuses": domain.ReviewStatuses,
		"Err":      errMsg,
	})
}
