package handlers

import (
	"github.com/gofiber/fiber/v2"

	"misfitpups/internal/services"
	"misfitpups/internal/validate"
)

// puppyFilterFrom reads q, breed, color and status from the query string.
// On failure it returns the name of the offending parameter.
func puppyFilterFrom(c *fiber.Ctx) (services.PuppyFilter, string, bool) {
	var f services.PuppyFilter
	var ok bool
	if f.Query, ok = validate.Q(c.Query("q")); !ok {
		return services.PuppyFilter{}, "q", false
	}
	if f.Breed, ok = validate.Q(c.Query("breed")); !ok {
		return services.PuppyFilter{}, "breed", false
	}
	if f.Color, ok = validate.Q(c.Query("color")); !ok {
		return services.PuppyFilter{}, "color", false
	}
	if f.Status, ok = validate.PuppyStatus(c.Query("status")); !ok {
		return services.PuppyFilter{}, "status", false
	}
	return f, "", true
}

func applicationFilterFrom(c *fiber.Ctx) (services.ApplicationFilter, string, bool) {
	var f services.ApplicationFilter
	var ok bool
	if f.Query, ok = validate.Q(c.Query("q")); !ok {
		return services.ApplicationFilter{}, "q", false
	}
	if f.Status, ok = validate.ReviewStatus(c.Query("status")); !ok {
		return services.ApplicationFilter{}, "status", false
	}
	return f, "", true
}
