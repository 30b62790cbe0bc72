package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Query  string         `json:"query,omitempty"`
	Action string         `json:"action,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// write emits one JSON line through the standard logger so that LOG_FILE
// tee-ing in main applies to every event.
func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Query = string(c.Request().URI().QueryString())
		e.Status = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

// Info records a routine event such as a demo form submit. Callers pass only
// non-identifying fields.
func Info(c *fiber.Ctx, action string, fields map[string]any) { write(levelInfo, c, action, nil, fields) }

// Security records rejected input, csrf failures and rate-limit hits at warn
// level. Set the response status before calling so the line carries it.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(levelWarn, c, action, nil, fields)
}

// Error records a server-side failure. err is logged here and never sent to
// the client. Set the response status before calling so the line carries it.
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(levelError, c, action, err, fields)
}
