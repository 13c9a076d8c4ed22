package pkgmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/dnslab/backendctl/internal/domain"
	"github.com/dnslab/backendctl/internal/host"
)

type Family string

const (
	FamilyDebian Family = "debian"
	FamilyRedHat Family = "redhat"
)

// Manager wraps the host's native package manager.
type Manager struct {
	host   host.Host
	family Family
}

func NewManager(h host.Host, family Family) *Manager {
	return &Manager{host: h, family: family}
}

// Detect probes for apt-get, then dnf.
func Detect(ctx context.Context, h host.Host) (*Manager, error) {
	if _, _, err := h.Run(ctx, "command -v apt-get"); err == nil {
		return NewManager(h, FamilyDebian), nil
	}
	if _, _, err := h.Run(ctx, "command -v dnf"); err == nil {
		return NewManager(h, FamilyRedHat), nil
	}
	return nil, fmt.Errorf("no supported package manager found (apt-get, dnf)")
}

func (m *Manager) Family() Family {
	return m.family
}

func (m *Manager) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	var cmd string
	switch m.family {
	case FamilyDebian:
		cmd = "sudo DEBIAN_FRONTEND=noninteractive apt-get -y install " + joinEscaped(packages)
	case FamilyRedHat:
		cmd = "sudo dnf -y install " + joinEscaped(packages)
	default:
		return fmt.Errorf("unknown package manager family: %s", m.family)
	}

	if _, stderr, err := m.host.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %v, stderr: %s", domain.ErrPackageInstallFailed, err, stderr)
	}
	return nil
}

func joinEscaped(packages []string) string {
	escaped := make([]string, 0, len(packages))
	for _, p := range packages {
		escaped = append(escaped, host.ShellEscape(p))
	}
	return strings.Join(escaped, " ")
}
