package pkgtrace

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const traceVersion = "00"

// FlagSampled is the W3C "sampled" trace flag.
const FlagSampled byte = 0x01

// Activity is one operation within a distributed trace.
type Activity struct {
	TraceID      string
	SpanID       string
	ParentSpanID string
	Flags        byte
}

// ID renders the activity in W3C form: 00-<trace-id>-<span-id>-<flags>.
func (a *Activity) ID() string {
	return fmt.Sprintf("%s-%s-%s-%02x", traceVersion, a.TraceID, a.SpanID, a.Flags)
}

// Start begins a new root activity with fresh trace and span ids.
func Start() *Activity {
	return &Activity{
		TraceID: newTraceID(),
		SpanID:  newSpanID(),
		Flags:   FlagSampled,
	}
}

// Child begins an activity in the same trace as parent, with a new span id.
func Child(parent *Activity) *Activity {
	return &Activity{
		TraceID:      parent.TraceID,
		SpanID:       newSpanID(),
		ParentSpanID: parent.SpanID,
		Flags:        parent.Flags,
	}
}

// uuid v4 supplies 122 random bits, never all zero, which is what the trace
// context format asks of a trace id.
func newTraceID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func newSpanID() string {
	u := uuid.New()
	return hex.EncodeToString(u[8:])
}

type activityContextKey struct{}

// WithActivity returns a copy of ctx carrying a.
func WithActivity(ctx context.Context, a *Activity) context.Context {
	return context.WithValue(ctx, activityContextKey{}, a)
}

// FromContext returns the activity carried by ctx, if any.
func FromContext(ctx context.Context) (*Activity, bool) {
	a, ok := ctx.Value(activityContextKey{}).(*Activity)
	if !ok || a == nil {
		return nil, false
	}
	return a, true
}
