package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnslab/backendctl/internal/logger"
)

var Version = "dev"

func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cliCtx := NewContext()
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   "backendctl",
		Short: "Bootstrap DNS backend servers for a Designate dev deployment",
		Long: "Backendctl installs, configures, initializes, starts, stops and cleans up\n" +
			"the DNS server (bind9 or PowerDNS) that backs a Designate development\n" +
			"deployment, on the local host or over SSH.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if showVersion {
				fmt.Println(Version)
				os.Exit(0)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cliCtx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cliCtx.ConfigPath, "config", "c", cliCtx.ConfigPath, "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&cliCtx.Backend, "backend", "b", "", "Backend driver (bind9/pdns4), overrides config")
	rootCmd.PersistentFlags().StringVar(&cliCtx.StatePath, "state", cliCtx.StatePath, "State file")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newLifecycleCommands(cliCtx)...)
	rootCmd.AddCommand(newApplyCommand(cliCtx))
	rootCmd.AddCommand(newStatusCommand(cliCtx))

	return rootCmd
}
