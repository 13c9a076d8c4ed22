package host

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/dnslab/backendctl/internal/constants"
)

// Local executes commands on the machine backendctl itself runs on.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Run(ctx context.Context, cmd string) (string, string, error) {
	c := exec.CommandContext(ctx, "sh", "-c", cmd)

	var stdoutBuf, stderrBuf bytes.Buffer
	c.Stdout = &stdoutBuf
	c.Stderr = &stderrBuf

	err := c.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}

func (l *Local) WriteFileSudo(ctx context.Context, path string, data []byte, perm, owner string) error {
	tmpFile, err := os.CreateTemp("", constants.TempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := fmt.Sprintf("sudo install -m %s %s %s && sudo chown %s %s",
		ShellEscape(perm), ShellEscape(tmpPath), ShellEscape(path), ShellEscape(owner), ShellEscape(path))
	if _, stderr, err := l.Run(ctx, cmd); err != nil {
		return fmt.Errorf("sudo install failed: %w, stderr: %s", err, stderr)
	}
	return nil
}

func (l *Local) Close() error {
	return nil
}
