//go:build !linux

package service

import (
	"context"
	"errors"
)

func newDbusManager(ctx context.Context) (Manager, error) {
	return nil, errors.New("systemd dbus is only available on linux")
}
