package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"chiragbattery/internal/config"
	"chiragbattery/internal/http/handlers"
	"chiragbattery/internal/repos"
	"chiragbattery/internal/services"
)

// newTestApp wires the real routes to a seeded in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *repos.DocDB) {
	t.Helper()
	st, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	services.SeedCatalog(context.Background(), st)
	return handlers.NewApp(handlers.NewDeps(st, config.Config{InquiryRateLimit: 100}), nil), st
}

func appWith(st repos.Store, rate int) *fiber.App {
	return handlers.NewApp(handlers.NewDeps(st, config.Config{InquiryRateLimit: rate}), nil)
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: non-JSON body %q", method, target, raw)
		}
	}
	return resp.StatusCode, out
}

func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("items missing or not a list: %v", body)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		out = append(out, it.(map[string]any))
	}
	return out
}

// failingStore fails every call with err, like a store that went away mid-flight.
type failingStore struct{ err error }

func (f failingStore) Insert(context.Context, string, any) (string, error) { return "", f.err }
func (f failingStore) Find(context.Context, string, repos.Filter, int) ([]repos.Document, error) {
	return nil, f.err
}
func (f failingStore) Count(context.Context, string) (int64, error)      { return 0, f.err }
func (f failingStore) CollectionNames(context.Context) ([]string, error) { return nil, f.err }
func (f failingStore) Ping(context.Context) error                        { return f.err }
func (f failingStore) Name() string                                      { return "failing" }
func (f failingStore) Close() error                                      { return nil }

var errSecret = errors.New("connection refused: 10.0.0.7:27017 user=shop")

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Err    string         `json:"err"`
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

func hasAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
