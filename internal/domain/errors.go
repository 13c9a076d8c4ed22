package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidBackend  = errors.New("unsupported backend driver")
	ErrInvalidDatabase = errors.New("unsupported database type")
	ErrRequired        = errors.New("required field missing")

	ErrConfigReadFailed   = errors.New("config read failed")
	ErrConfigParseFailed  = errors.New("config parse failed")
	ErrConfigValidateFail = errors.New("config validation failed")

	ErrPackageInstallFailed = errors.New("package install failed")
	ErrServiceFailed        = errors.New("service operation failed")
	ErrFileWriteFailed      = errors.New("file write failed")

	ErrSSHConnectFailed = errors.New("SSH connection failed")
	ErrSSHSessionFailed = errors.New("SSH session creation failed")
	ErrSSHFileTransfer  = errors.New("SSH file transfer failed")

	ErrStateReadFailed    = errors.New("state read failed")
	ErrStateWriteFailed   = errors.New("state write failed")
	ErrStateSerializeFail = errors.New("state serialization failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
