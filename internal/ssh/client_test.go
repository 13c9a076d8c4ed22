package ssh

import (
	"errors"
	"testing"

	"github.com/dnslab/backendctl/internal/domain"
)

func TestNewClient_ConnectFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Port 1 is never an SSH server; the dial fails immediately.
	_, err := NewClient("127.0.0.1", 1, "stack", "secret")
	if err == nil {
		t.Fatal("expected a connection error")
	}
	if !errors.Is(err, domain.ErrSSHConnectFailed) {
		t.Errorf("error = %v, want ErrSSHConnectFailed", err)
	}
}
