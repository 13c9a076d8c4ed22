package pkgmgr

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeHost struct {
	commands []string
	// failOn makes Run fail for commands containing the substring.
	failOn string
}

func (h *fakeHost) Run(ctx context.Context, cmd string) (string, string, error) {
	h.commands = append(h.commands, cmd)
	if h.failOn != "" && strings.Contains(cmd, h.failOn) {
		return "", "", fmt.Errorf("exit status 127")
	}
	return "", "", nil
}

func (h *fakeHost) WriteFileSudo(ctx context.Context, path string, data []byte, perm, owner string) error {
	return nil
}

func (h *fakeHost) Close() error {
	return nil
}

func TestManager_Install(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		want   string
	}{
		{"debian", FamilyDebian, "sudo DEBIAN_FRONTEND=noninteractive apt-get -y install 'bind9' 'bind9utils'"},
		{"redhat", FamilyRedHat, "sudo dnf -y install 'bind9' 'bind9utils'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHost{}
			m := NewManager(h, tt.family)
			if err := m.Install(context.Background(), "bind9", "bind9utils"); err != nil {
				t.Fatalf("Install() error = %v", err)
			}
			if len(h.commands) != 1 || h.commands[0] != tt.want {
				t.Errorf("commands = %v, want [%s]", h.commands, tt.want)
			}
		})
	}
}

func TestManager_InstallNoPackages(t *testing.T) {
	h := &fakeHost{}
	m := NewManager(h, FamilyDebian)
	if err := m.Install(context.Background()); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(h.commands) != 0 {
		t.Errorf("no command should run for an empty package list, got %v", h.commands)
	}
}

func TestDetect(t *testing.T) {
	t.Run("prefers apt-get", func(t *testing.T) {
		h := &fakeHost{}
		m, err := Detect(context.Background(), h)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if m.Family() != FamilyDebian {
			t.Errorf("Family() = %s, want debian", m.Family())
		}
	})

	t.Run("falls back to dnf", func(t *testing.T) {
		h := &fakeHost{failOn: "apt-get"}
		m, err := Detect(context.Background(), h)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if m.Family() != FamilyRedHat {
			t.Errorf("Family() = %s, want redhat", m.Family())
		}
	})

	t.Run("neither available", func(t *testing.T) {
		h := &fakeHost{failOn: "command -v"}
		if _, err := Detect(context.Background(), h); err == nil {
			t.Error("Detect() should fail with no package manager")
		}
	})
}
