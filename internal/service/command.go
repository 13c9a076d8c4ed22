package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dnslab/backendctl/internal/domain"
	"github.com/dnslab/backendctl/internal/host"
)

type commandManager struct {
	host host.Host
}

func NewCommandManager(h host.Host) Manager {
	return &commandManager{host: h}
}

func (m *commandManager) systemctl(ctx context.Context, verb, unit string) error {
	cmd := fmt.Sprintf("sudo systemctl %s %s", verb, host.ShellEscape(unitName(unit)))
	if _, stderr, err := m.host.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: systemctl %s %s: %v, stderr: %s", domain.ErrServiceFailed, verb, unit, err, stderr)
	}
	return nil
}

func (m *commandManager) Start(ctx context.Context, unit string) error {
	return m.systemctl(ctx, "start", unit)
}

func (m *commandManager) Stop(ctx context.Context, unit string) error {
	return m.systemctl(ctx, "stop", unit)
}

func (m *commandManager) Restart(ctx context.Context, unit string) error {
	return m.systemctl(ctx, "restart", unit)
}

func (m *commandManager) IsActive(ctx context.Context, unit string) (bool, error) {
	cmd := fmt.Sprintf("systemctl is-active %s", host.ShellEscape(unitName(unit)))
	stdout, _, err := m.host.Run(ctx, cmd)
	state := strings.TrimSpace(stdout)
	if state == "active" {
		return true, nil
	}
	// is-active exits non-zero for inactive units; that is an answer,
	// not a failure.
	if state != "" {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: systemctl is-active %s: %v", domain.ErrServiceFailed, unit, err)
	}
	return false, nil
}

func (m *commandManager) Close() error {
	return nil
}
