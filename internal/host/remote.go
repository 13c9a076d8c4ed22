package host

import (
	"context"

	"github.com/dnslab/backendctl/internal/ssh"
)

// Remote bootstraps a backend on another machine over SSH.
type Remote struct {
	client *ssh.Client
}

func NewRemote(hostname string, port int, user, password string) (*Remote, error) {
	client, err := ssh.NewClient(hostname, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Remote{client: client}, nil
}

func (r *Remote) Run(ctx context.Context, cmd string) (string, string, error) {
	return r.client.Run(cmd)
}

func (r *Remote) WriteFileSudo(ctx context.Context, path string, data []byte, perm, owner string) error {
	return r.client.UploadSudo(data, path, perm, owner)
}

func (r *Remote) Close() error {
	return r.client.Close()
}
