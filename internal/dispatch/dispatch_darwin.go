//go:build darwin

package dispatch

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/rgould/autonudge/internal/errors"
)

// osascriptInjector types the response via System Events keystrokes.
// Requires the calling terminal to hold Accessibility permission.
type osascriptInjector struct {
	response string
}

func forHost(response string) Dispatcher {
	if _, err := exec.LookPath("osascript"); err != nil {
		return NoopDispatcher{}
	}
	return &osascriptInjector{response: response}
}

func (o *osascriptInjector) SendConfirmation(ctx context.Context) (Result, error) {
	// AppleScript string quoting matches Go quoting for plain words.
	script := `tell application "System Events" to keystroke ` + strconv.Quote(o.response) + ` & return`
	if err := exec.CommandContext(ctx, "osascript", "-e", script).Run(); err != nil {
		return Failed, errors.WrapDispatchError(err, "darwin")
	}
	return Sent, nil
}
