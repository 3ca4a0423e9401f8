package pkguid

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerate(t *testing.T) {
	gen := NewUUID()
	id := gen.Generate()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid uuid, got %q", id)
	}
}

func TestNewStringID(t *testing.T) {
	for _, strategy := range []string{"", StrategyUUID, StrategySnowflake} {
		gen, err := NewStringID(strategy)
		if err != nil {
			t.Fatalf("NewStringID(%q): %v", strategy, err)
		}
		if gen.Generate() == "" {
			t.Fatalf("NewStringID(%q) produced empty id", strategy)
		}
	}

	if _, err := NewStringID("sequential"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}
