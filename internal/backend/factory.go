package backend

import (
	"fmt"

	"github.com/dnslab/backendctl/internal/config"
	"github.com/dnslab/backendctl/internal/domain"
)

type CreatorFunc func(deps Deps) (Driver, error)

type Factory struct {
	creators map[string]CreatorFunc
}

func NewFactory() *Factory {
	return &Factory{
		creators: map[string]CreatorFunc{
			config.BackendBind9: NewBind9,
			config.BackendPDNS:  NewPDNS,
		},
	}
}

func (f *Factory) Create(name string, deps Deps) (Driver, error) {
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackend, name)
	}
	return creator(deps)
}

func (f *Factory) Register(name string, creator CreatorFunc) {
	f.creators[name] = creator
}

func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	return names
}
