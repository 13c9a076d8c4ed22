package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnslab/backendctl/internal/logger"
)

func newLifecycleCommands(cliCtx *Context) []*cobra.Command {
	steps := []struct {
		name    string
		short   string
		confirm bool
	}{
		{StepInstall, "Install the backend DNS server packages", false},
		{StepConfigure, "Write the backend configuration files and restart the service", false},
		{StepInit, "Initialize the backend database", false},
		{StepStart, "Start the backend service", false},
		{StepStop, "Stop the backend service", false},
		{StepCleanup, "Remove generated zone artifacts and keys", true},
	}

	cmds := make([]*cobra.Command, 0, len(steps))
	for _, step := range steps {
		var autoApprove bool

		cmd := &cobra.Command{
			Use:   step.name,
			Short: step.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				if step.confirm && !autoApprove {
					if !ConfirmStep(step.name, backendLabel(cliCtx)) {
						fmt.Fprintln(os.Stderr, "Aborted.")
						return nil
					}
				}
				return runStep(cliCtx, step.name)
			},
		}
		if step.confirm {
			cmd.Flags().BoolVarP(&autoApprove, "yes", "y", false, "Auto approve without confirmation")
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func newApplyCommand(cliCtx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Run the full lifecycle (install, configure, init, start)",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := NewWorkflow(cliCtx)
			if err != nil {
				return err
			}
			defer wf.Close()
			if err := wf.RunSteps(context.Background(), ApplySequence); err != nil {
				return err
			}
			for key, stats := range logger.StepMetrics() {
				logger.Debug("step finished", "step", key,
					"total", stats.Total, "failed", stats.Failed, "avg_latency_ms", stats.AvgLatencyMs)
			}
			return nil
		},
	}
}

func runStep(cliCtx *Context, step string) error {
	wf, err := NewWorkflow(cliCtx)
	if err != nil {
		return err
	}
	defer wf.Close()
	return wf.RunStep(context.Background(), step)
}

func backendLabel(cliCtx *Context) string {
	if cliCtx.Backend != "" {
		return cliCtx.Backend
	}
	return "from config"
}
