package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgtrace"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

func TestContextHandlerAddsServiceAndIDs(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "tradewind"}

	act := &pkgtrace.Activity{TraceID: "4bf92f3577b34da6a3ce929d0e0e4736", SpanID: "00f067aa0ba902b7"}
	ctx := SetCorrelationID(context.Background(), "cid-abc")
	ctx = pkgtrace.WithActivity(ctx, act)
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["service"].String(); got != "tradewind" {
		t.Fatalf("expected service=tradewind, got %q", got)
	}
	if got := capture.attrs["_cID"].String(); got != "cid-abc" {
		t.Fatalf("expected _cID=cid-abc, got %q", got)
	}
	if got := capture.attrs["_tID"].String(); got != act.TraceID {
		t.Fatalf("expected _tID=%s, got %q", act.TraceID, got)
	}
	if got := capture.attrs["_sID"].String(); got != act.SpanID {
		t.Fatalf("expected _sID=%s, got %q", act.SpanID, got)
	}
}

func TestContextHandlerSkipsMissingIDs(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "tradewind"}

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := handler.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	for _, key := range []string{"_cID", "_tID", "_sID"} {
		if _, ok := capture.attrs[key]; ok {
			t.Fatalf("did not expect %s to be set", key)
		}
	}
	if got := capture.attrs["service"].String(); got != "tradewind" {
		t.Fatalf("expected service=tradewind, got %q", got)
	}
}

func TestNewWritesNormalizedJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "tradewind", slog.LevelInfo)

	logger.With("component", "test").InfoContext(SetCorrelationID(context.Background(), "cid-1"), "page rendered")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	for _, key := range []string{"ts", "severity", "msg", "_cID", "service", "component"} {
		if _, ok := line[key]; !ok {
			t.Fatalf("expected key %q in %v", key, line)
		}
	}
	if _, ok := line["time"]; ok {
		t.Fatalf("time key should be renamed to ts")
	}
}
