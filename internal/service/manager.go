package service

import (
	"context"
	"strings"

	"github.com/dnslab/backendctl/internal/host"
	"github.com/dnslab/backendctl/internal/logger"
)

// Manager starts and stops system services on the bootstrap target.
type Manager interface {
	Start(ctx context.Context, unit string) error
	Stop(ctx context.Context, unit string) error
	Restart(ctx context.Context, unit string) error
	IsActive(ctx context.Context, unit string) (bool, error)
	Close() error
}

// NewManager returns a dbus-backed manager when bootstrapping the
// local host and systemd is reachable, otherwise one that shells out
// to systemctl through the Host.
func NewManager(ctx context.Context, h host.Host) Manager {
	if _, ok := h.(*host.Local); ok {
		m, err := newDbusManager(ctx)
		if err == nil {
			return m
		}
		logger.Warn("systemd dbus unavailable, falling back to systemctl", "error", err)
	}
	return &commandManager{host: h}
}

func unitName(unit string) string {
	if strings.Contains(unit, ".") {
		return unit
	}
	return unit + ".service"
}
