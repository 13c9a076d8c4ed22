package cli

import "github.com/dnslab/backendctl/internal/constants"

type Context struct {
	ConfigPath string
	StatePath  string
	Backend    string
}

func NewContext() *Context {
	return &Context{
		ConfigPath: constants.DefaultConfigFile,
		StatePath:  constants.StateFile,
	}
}
