package backend

import (
	"context"
	"fmt"
	"strings"
)

type writtenFile struct {
	data  string
	perm  string
	owner string
}

type fakeHost struct {
	commands []string
	files    map[string]writtenFile
	failOn   string
}

func newFakeHost() *fakeHost {
	return &fakeHost{files: make(map[string]writtenFile)}
}

func (h *fakeHost) Run(ctx context.Context, cmd string) (string, string, error) {
	h.commands = append(h.commands, cmd)
	if h.failOn != "" && strings.Contains(cmd, h.failOn) {
		return "", "boom", fmt.Errorf("exit status 1")
	}
	return "", "", nil
}

func (h *fakeHost) WriteFileSudo(ctx context.Context, path string, data []byte, perm, owner string) error {
	h.files[path] = writtenFile{data: string(data), perm: perm, owner: owner}
	return nil
}

func (h *fakeHost) Close() error {
	return nil
}

type fakeService struct {
	calls []string
}

func (s *fakeService) Start(ctx context.Context, unit string) error {
	s.calls = append(s.calls, "start "+unit)
	return nil
}

func (s *fakeService) Stop(ctx context.Context, unit string) error {
	s.calls = append(s.calls, "stop "+unit)
	return nil
}

func (s *fakeService) Restart(ctx context.Context, unit string) error {
	s.calls = append(s.calls, "restart "+unit)
	return nil
}

func (s *fakeService) IsActive(ctx context.Context, unit string) (bool, error) {
	s.calls = append(s.calls, "is-active "+unit)
	return true, nil
}

func (s *fakeService) Close() error {
	return nil
}
