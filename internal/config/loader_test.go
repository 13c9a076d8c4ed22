package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dnslab/backendctl/internal/domain"
)

func TestLoader_Load(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != BackendBind9 {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendBind9)
		}
		if cfg.DNS.Port != 53 {
			t.Errorf("DNS.Port = %d, want 53", cfg.DNS.Port)
		}
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backendctl.yaml")
		data := "backend: pdns4\ndatabase:\n  password: secret\n  name: pdns_dev\ndns:\n  port: 5322\n"
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := NewLoader(path).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != BackendPDNS {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendPDNS)
		}
		if cfg.Database.Password != "secret" {
			t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret")
		}
		if cfg.Database.Name != "pdns_dev" {
			t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "pdns_dev")
		}
		if cfg.DNS.Port != 5322 {
			t.Errorf("DNS.Port = %d, want 5322", cfg.DNS.Port)
		}
		// Untouched fields keep their defaults.
		if cfg.Database.Host != "127.0.0.1" {
			t.Errorf("Database.Host = %q, want default", cfg.Database.Host)
		}
	})

	t.Run("env overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backendctl.yaml")
		if err := os.WriteFile(path, []byte("backend: bind9\n"), 0600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("BACKENDCTL_BACKEND", "pdns4")
		t.Setenv("BACKENDCTL_DB_PORT", "3307")
		t.Setenv("BACKENDCTL_TARGET_HOST", "192.0.2.10")
		t.Setenv("BACKENDCTL_TARGET_USER", "stack")

		cfg, err := NewLoader(path).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != BackendPDNS {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendPDNS)
		}
		if cfg.Database.Port != 3307 {
			t.Errorf("Database.Port = %d, want 3307", cfg.Database.Port)
		}
		if cfg.Target == nil || cfg.Target.Host != "192.0.2.10" {
			t.Fatalf("Target = %+v, want host 192.0.2.10", cfg.Target)
		}
		if cfg.Target.Port != 22 {
			t.Errorf("Target.Port = %d, want 22", cfg.Target.Port)
		}
	})

	t.Run("unreadable file keeps the cause", func(t *testing.T) {
		// A directory path makes os.ReadFile fail with something other
		// than not-exist.
		dir := t.TempDir()
		_, err := NewLoader(dir).Load()
		if !errors.Is(err, domain.ErrConfigReadFailed) {
			t.Fatalf("error = %v, want ErrConfigReadFailed", err)
		}
		if !strings.Contains(err.Error(), "is a directory") {
			t.Errorf("error %q should carry the underlying read error", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backendctl.yaml")
		if err := os.WriteFile(path, []byte("backend: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}
		_, err := NewLoader(path).Load()
		if !errors.Is(err, domain.ErrConfigParseFailed) {
			t.Errorf("error = %v, want ErrConfigParseFailed", err)
		}
	})

	t.Run("invalid after overrides", func(t *testing.T) {
		t.Setenv("BACKENDCTL_BACKEND", "maradns")
		_, err := NewLoader("").Load()
		if !errors.Is(err, domain.ErrConfigValidateFail) {
			t.Errorf("error = %v, want ErrConfigValidateFail", err)
		}
	})
}
