package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"misfitpups/internal/http/handlers"
)

// reject malformed filter input early, and still render the page
func TestValidationBadInputs(t *testing.T) {
	app, _ := newSiteApp(t, handlers.DefaultRouteOptions)

	for _, target := range []string{
		"/?q=%3Cscript%3E",
		"/?breed=a%3Bdrop",
		"/?status=Reserved",
		"/?status=available",
	} {
		code, body := get(t, app, target)
		if code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, code)
		}
		if !strings.Contains(body, "Invalid filter") {
			t.Fatalf("%s: inline error missing", target)
		}
		// the page falls back to the unfiltered grid
		assertCards(t, body, []string{"p1", "p2", "p3", "p4"}, nil)
	}
}

// templates auto-escape untrusted text
func TestTemplateAutoEscape(t *testing.T) {
	app, db := newSiteApp(t, handlers.DefaultRouteOptions)
	if _, err := db.Exec(`
		INSERT INTO puppies(id,name,breed,color,sex,price,status,breeder_slug,sort_order)
		VALUES('xss-1','<script>alert(1)</script>','<b>breed</b>','Red','Male',10,'Available','exoticpups',9)
	`); err != nil {
		t.Fatal(err)
	}

	for _, target := range []string{"/", "/puppy/xss-1", "/breeder/exoticpups"} {
		_, s := get(t, app, target)
		if strings.Contains(s, "<script>alert(1)</script>") || strings.Contains(s, "<b>breed</b>") {
			t.Fatalf("%s: found unescaped markup in output", target)
		}
		if !strings.Contains(s, "&lt;script&gt;alert(1)&lt;/script&gt;") {
			t.Fatalf("%s: escaped script not found; output=%s", target, s)
		}
	}
}
