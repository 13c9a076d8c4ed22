package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ConfirmStep asks before a destructive lifecycle step runs. Cleanup
// deletes zone data, so the default answer is no.
func ConfirmStep(step, backend string) bool {
	return confirm(fmt.Sprintf("Run %s for backend %q?", step, backend), false)
}

func confirm(message string, defaultYes bool) bool {
	suffix := " (y/N): "
	if defaultYes {
		suffix = " (Y/n): "
	}
	fmt.Print(message + suffix)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}
