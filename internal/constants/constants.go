package constants

const (
	DefaultConfigFile = "backendctl.yaml"
	StateFile         = "/var/lib/backendctl/state.yaml"
	TempFilePattern   = "backendctl-*"
	RemoteTempFileFmt = "/tmp/backendctl-%d"

	RNDCKeyName = "rndc-key"
)
