package host

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Host runs shell commands and places root-owned files on the machine
// being bootstrapped, either locally or over SSH.
type Host interface {
	Run(ctx context.Context, cmd string) (stdout, stderr string, err error)
	WriteFileSudo(ctx context.Context, path string, data []byte, perm, owner string) error
	Close() error
}

func ShellEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// RemoveSudo deletes a single file. Missing files are not an error.
func RemoveSudo(ctx context.Context, h Host, path string) error {
	_, stderr, err := h.Run(ctx, "sudo rm -f "+ShellEscape(path))
	if err != nil {
		return fmt.Errorf("rm %s failed: %w, stderr: %s", path, err, stderr)
	}
	return nil
}

var globRe = regexp.MustCompile(`^[A-Za-z0-9._*-]+$`)

// RemoveGlobSudo deletes every file in dir whose basename matches the
// shell glob. The dir comes from config and is escaped; the glob stays
// outside the quoting so the shell expands it, and is restricted to a
// fixed character set since it cannot be escaped.
func RemoveGlobSudo(ctx context.Context, h Host, dir, glob string) error {
	if !globRe.MatchString(glob) {
		return fmt.Errorf("invalid glob pattern %q", glob)
	}
	inner := "rm -f " + ShellEscape(dir) + "/" + glob
	_, stderr, err := h.Run(ctx, "sudo sh -c "+ShellEscape(inner))
	if err != nil {
		return fmt.Errorf("rm %s/%s failed: %w, stderr: %s", dir, glob, err, stderr)
	}
	return nil
}

// MkdirAllSudo creates a directory with the given mode and owner.
func MkdirAllSudo(ctx context.Context, h Host, path, perm, owner string) error {
	cmd := fmt.Sprintf("sudo mkdir -p %s && sudo chmod %s %s && sudo chown %s %s",
		ShellEscape(path), ShellEscape(perm), ShellEscape(path), ShellEscape(owner), ShellEscape(path))
	_, stderr, err := h.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("mkdir %s failed: %w, stderr: %s", path, err, stderr)
	}
	return nil
}
