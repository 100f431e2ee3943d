//go:build windows

package detect

import (
	"context"
	"os/exec"
	"strings"
)

// listCommands enumerates running processes via tasklist. The CSV line
// carries the image name first; matching against the whole line keeps the
// substring semantics identical to the unix path. Returns nil when
// tasklist is unavailable or fails.
func listCommands(ctx context.Context) []string {
	out, err := exec.CommandContext(ctx, "tasklist", "/fo", "csv", "/nh").Output()
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
