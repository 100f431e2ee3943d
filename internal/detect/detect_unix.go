//go:build !windows

package detect

import (
	"context"
	"os/exec"
	"strings"
)

// listCommands enumerates the full command line of every visible process
// via ps. Returns nil when ps is unavailable or fails.
func listCommands(ctx context.Context) []string {
	out, err := exec.CommandContext(ctx, "ps", "-axo", "command=").Output()
	if err != nil {
		return nil
	}

	var commands []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			commands = append(commands, line)
		}
	}
	return commands
}
