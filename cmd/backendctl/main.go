package main

import (
	"github.com/dnslab/backendctl/internal/cli"
	"github.com/dnslab/backendctl/internal/logger"
)

func main() {
	logger.InitFromEnv()
	cli.Execute()
}
