// Package detect answers whether the target companion process is running.
//
// Detection is a case-insensitive substring match of a name token against
// the invoked command line of every visible process. Known limitation: a
// token like "claude" can false-positive on unrelated processes whose
// command line happens to contain it (an editor with the word in a file
// path, for example). No disambiguation by binary name or PID is done.
package detect

import (
	"context"
	"strings"
)

// Detector reports whether the target process is present on the host.
type Detector interface {
	TargetRunning(ctx context.Context) bool
}

// ProcessDetector matches a token against enumerated process command lines.
type ProcessDetector struct {
	token string
	list  func(ctx context.Context) []string
}

// New returns a detector for the given process name token.
func New(token string) *ProcessDetector {
	return &ProcessDetector{token: token, list: listCommands}
}

// TargetRunning reports whether any process command line contains the
// token. Detection is total: enumeration failure, an empty process list,
// or a missing listing tool all read as "not detected", never an error.
func (d *ProcessDetector) TargetRunning(ctx context.Context) bool {
	token := strings.ToLower(strings.TrimSpace(d.token))
	if token == "" {
		return false
	}
	for _, command := range d.list(ctx) {
		if strings.Contains(strings.ToLower(command), token) {
			return true
		}
	}
	return false
}
