package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nstring: hi\narray: a, b,c\nlist:\n  - x\n  - y\n")

	cfg, err := NewViper(path, nil)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); got != true {
		t.Fatalf("GetBool: expected true, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := cfg.GetArray("array"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
	if got := cfg.GetArray("list"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("GetArray(list): unexpected value: %#v", got)
	}
	if got := cfg.GetArray("missing"); got != nil {
		t.Fatalf("GetArray(missing): expected nil, got %#v", got)
	}
}

func TestViperDefaultsAndEnvOverride(t *testing.T) {
	path := writeConfigFile(t, "server:\n  address:\n    http: \":8080\"\n")
	t.Setenv("TRADEWIND_SERVER_ADDRESS_HTTP", ":9090")

	cfg, err := NewViper(path, map[string]any{
		"app.name":               "tradewind",
		"server.address.http":    ":7070",
		"trace.activity.enabled": true,
		"cors":                   []string{"*"},
	})
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetString("server.address.http"); got != ":9090" {
		t.Fatalf("expected env override, got %q", got)
	}
	if got := cfg.GetString("app.name"); got != "tradewind" {
		t.Fatalf("expected default app name, got %q", got)
	}
	if got := cfg.GetArray("cors"); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("expected default list, got %#v", got)
	}
	if !cfg.GetBool("trace.activity.enabled") {
		t.Fatalf("expected default trace.activity.enabled=true")
	}
}

func TestNewViperMissingFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
