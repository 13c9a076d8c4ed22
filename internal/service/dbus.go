//go:build linux

package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/dnslab/backendctl/internal/domain"
)

type dbusManager struct {
	conn *dbus.Conn
}

func newDbusManager(ctx context.Context) (Manager, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting to systemd: %w", err)
	}
	return &dbusManager{conn: conn}, nil
}

func (m *dbusManager) wait(ctx context.Context, job func(chan<- string) (int, error)) error {
	done := make(chan string, 1)
	if _, err := job(done); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceFailed, err)
	}
	select {
	case result := <-done:
		if result != "done" {
			return fmt.Errorf("%w: job result %q", domain.ErrServiceFailed, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *dbusManager) Start(ctx context.Context, unit string) error {
	return m.wait(ctx, func(done chan<- string) (int, error) {
		return m.conn.StartUnitContext(ctx, unitName(unit), "replace", done)
	})
}

func (m *dbusManager) Stop(ctx context.Context, unit string) error {
	return m.wait(ctx, func(done chan<- string) (int, error) {
		return m.conn.StopUnitContext(ctx, unitName(unit), "replace", done)
	})
}

func (m *dbusManager) Restart(ctx context.Context, unit string) error {
	return m.wait(ctx, func(done chan<- string) (int, error) {
		return m.conn.RestartUnitContext(ctx, unitName(unit), "replace", done)
	})
}

func (m *dbusManager) IsActive(ctx context.Context, unit string) (bool, error) {
	prop, err := m.conn.GetUnitPropertyContext(ctx, unitName(unit), "ActiveState")
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrServiceFailed, err)
	}
	if prop == nil {
		return false, nil
	}
	return prop.Value.String() == `"active"`, nil
}

func (m *dbusManager) Close() error {
	if m.conn != nil {
		m.conn.Close()
	}
	return nil
}
