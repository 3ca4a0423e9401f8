package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkglog"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
)

type mapConfig map[string]string

func (m mapConfig) Close() error { return nil }
func (m mapConfig) GetInt(string) int64 { return 0 }
func (m mapConfig) GetBool(key string) bool { return m[key] == "true" }
func (m mapConfig) GetString(key string) string { return m[key] }
func (m mapConfig) GetArray(key string) []string { return strings.Split(m[key], ",") }

func TestNewRegistersPages(t *testing.T) {
	router := pkgrouter.NewRouter(nil)

	err := New(Dependency{
		Config: mapConfig{"app.name": "Harbor", "app.env": "Production"},
		Router: router,
		Logger: pkglog.Discard(),
		Now:    func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Home Page - Harbor</title>") {
		t.Fatalf("expected configured site name in title: %s", body)
	}
	if !strings.Contains(body, "&copy; 2031 - Harbor") {
		t.Fatalf("expected year from clock in footer")
	}
}
