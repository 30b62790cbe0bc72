package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"misfitpups/internal/http/handlers"
)

type logEntry struct {
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id"`
	Action string         `json:"action"`
	Path   string         `json:"path"`
	Status int            `json:"status"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}

// rejected filters are logged as warnings with the offending field
func TestValidationFailureLogged(t *testing.T) {
	app, _ := newSiteApp(t, handlers.DefaultRouteOptions)

	entries := captureLogs(t, func() {
		_, _ = app.Test(httptest.NewRequest("GET", "/?status=Reserved", nil))
	})
	e, ok := findAction(entries, "validation.fail")
	if !ok {
		t.Fatal("expected validation.fail log")
	}
	if e.Level != "warn" || e.Fields["field"] != "status" || e.ReqID == "" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Status != 400 {
		t.Fatalf("logged status %d, want 400", e.Status)
	}
}

func TestAPIValidationFailureLoggedWithStatus(t *testing.T) {
	app, _ := newSiteApp(t, handlers.DefaultRouteOptions)

	entries := captureLogs(t, func() {
		_, _ = app.Test(httptest.NewRequest("GET", "/api/v1/applications?q=%3Cb%3E", nil))
	})
	e, ok := findAction(entries, "validation.fail")
	if !ok {
		t.Fatal("expected validation.fail log")
	}
	if e.Status != 400 || e.Fields["field"] != "q" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

// the demo apply form logs a reference but none of the submitted fields
func TestApplyLogsReferenceOnly(t *testing.T) {
	app, _ := newSiteApp(t, handlers.DefaultRouteOptions)
	tok := csrfToken(t, app)

	entries := captureLogs(t, func() {
		postApply(t, app, tok, url.Values{"business": {"Sable Sisters"}, "email": {"hi@sable.test"}})
	})
	e, ok := findAction(entries, "apply.demo")
	if !ok {
		t.Fatal("expected apply.demo log")
	}
	if ref, _ := e.Fields["ref"].(string); ref == "" {
		t.Fatalf("missing reference in %+v", e)
	}
	for _, raw := range entries {
		b, _ := json.Marshal(raw)
		if strings.Contains(string(b), "hi@sable.test") {
			t.Fatalf("submitted email leaked into logs: %s", b)
		}
	}
}

func TestRateLimitLogged(t *testing.T) {
	app, _ := newSiteApp(t, handlers.RouteOptions{APIMax: 1, APIWindow: time.Second})

	entries := captureLogs(t, func() {
		for i := 0; i < 2; i++ {
			_, _ = app.Test(httptest.NewRequest("GET", "/api/v1/applications", nil))
		}
	})
	e, ok := findAction(entries, "rate.api.hit")
	if !ok {
		t.Fatal("expected rate.api.hit log")
	}
	if e.Status != 429 {
		t.Fatalf("logged status %d, want 429", e.Status)
	}
}
