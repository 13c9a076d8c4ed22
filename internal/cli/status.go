package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newStatusCommand(cliCtx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend, service and lifecycle state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cliCtx)
		},
	}
}

func runStatus(cliCtx *Context) error {
	wf, err := NewWorkflow(cliCtx)
	if err != nil {
		return err
	}
	defer wf.Close()

	record, err := wf.Store.Load()
	if err != nil {
		return err
	}

	serviceState, err := wf.ServiceState(context.Background())
	if err != nil {
		serviceState = "unknown"
	}

	titler := cases.Title(language.English)

	fmt.Printf("Backend:  %s\n", wf.Config.Backend)
	fmt.Printf("Service:  %s\n", serviceState)
	if wf.Config.Target != nil {
		fmt.Printf("Target:   %s:%d\n", wf.Config.Target.Host, wf.Config.Target.Port)
	}

	if record.Backend == "" {
		fmt.Println("Steps:    none recorded")
		return nil
	}
	if record.Backend != wf.Config.Backend {
		fmt.Printf("Steps:    recorded for %s, not %s\n", record.Backend, wf.Config.Backend)
		return nil
	}

	steps := make([]string, 0, len(record.Steps))
	for step := range record.Steps {
		steps = append(steps, step)
	}
	sort.Strings(steps)

	fmt.Println("Steps:")
	for _, step := range steps {
		fmt.Printf("  %-10s %s\n", titler.String(step), record.Steps[step].Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
