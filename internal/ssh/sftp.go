package ssh

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/sftp"

	"github.com/dnslab/backendctl/internal/constants"
	"github.com/dnslab/backendctl/internal/domain"
)

func (c *Client) newSFTPClient() (*sftp.Client, error) {
	sftpClient, err := sftp.NewClient(c.client)
	if err != nil {
		return nil, fmt.Errorf("%w: sftp subsystem: %v", domain.ErrSSHFileTransfer, err)
	}
	return sftpClient, nil
}

// UploadSudo stages data in a temp file over SFTP and moves it into
// place with sudo, setting mode and ownership.
func (c *Client) UploadSudo(data []byte, remotePath, perm, owner string) error {
	sftpClient, err := c.newSFTPClient()
	if err != nil {
		return err
	}
	defer sftpClient.Close()

	tmpPath := fmt.Sprintf(constants.RemoteTempFileFmt, os.Getpid())
	tmpFile, err := sftpClient.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrSSHFileTransfer, tmpPath, err)
	}

	if _, err := io.Copy(tmpFile, bytes.NewReader(data)); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrSSHFileTransfer, tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrSSHFileTransfer, tmpPath, err)
	}

	cmd := fmt.Sprintf("sudo install -m %s %s %s && sudo chown %s %s && rm -f %s",
		shellEscape(perm), shellEscape(tmpPath), shellEscape(remotePath),
		shellEscape(owner), shellEscape(remotePath), shellEscape(tmpPath))
	if _, stderr, err := c.Run(cmd); err != nil {
		return fmt.Errorf("sudo install failed: %w, stderr: %s", err, stderr)
	}
	return nil
}
