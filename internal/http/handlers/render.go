package handlers

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"misfitpups/internal/domain"
)

// NewEngine loads the page templates from dir and registers the view helpers
// they rely on.
func NewEngine(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("money", Money)
	engine.AddFunc("initial", initial)
	engine.AddFunc("statusClass", statusClass)
	engine.AddFunc("reviewClass", reviewClass)
	engine.AddFunc("since", since)
	return engine
}

// Money formats whole dollars the way the listing cards show them: "$3,200".
func Money(n int) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%d", n)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func statusClass(s domain.PuppyStatus) string {
	switch s {
	case domain.StatusAvailable:
		return "status-available"
	case domain.StatusHold:
		return "status-hold"
	default:
		return "status-sold"
	}
}

func reviewClass(s domain.ReviewStatus) string {
	switch s {
	case domain.ReviewApproved:
		return "review-approved"
	case domain.ReviewDeclined:
		return "review-declined"
	default:
		return "review-pending"
	}
}

// since renders a submission date as "3 weeks ago"; unparseable dates are
// shown as-is.
func since(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return humanize.Time(t)
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Year"] = time.Now().Year()
	// The csrf middleware stores the token under "csrf"; the cookie is the
	// fallback when Locals was not populated.
	tok, _ := c.Locals("csrf").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// ErrorPage renders the shared failure template with the given status.
func ErrorPage(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).Render("notfound", fiber.Map{"Message": msg, "Year": time.Now().Year()})
}

func notFound(c *fiber.Ctx, msg string) error { return ErrorPage(c, fiber.StatusNotFound, msg) }

// ErrorHandler renders a generic failure page and never exposes err to the
// client.
func ErrorHandler(logf func(c *fiber.Ctx, err error)) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		c.Status(code)
		if logf != nil {
			logf(c, err)
		}
		msg := "Something went wrong. Please try again."
		switch code {
		case fiber.StatusNotFound:
			msg = "Page not found"
		case fiber.StatusForbidden:
			msg = "Security check failed. Please refresh and try again."
		case fiber.StatusRequestEntityTooLarge:
			msg = "That request was too large."
		}
		if rerr := ErrorPage(c, code, msg); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
