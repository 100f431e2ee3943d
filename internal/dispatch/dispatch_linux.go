//go:build linux

package dispatch

import (
	"context"
	"os/exec"

	"github.com/rgould/autonudge/internal/errors"
)

// xdotoolInjector types the response into the focused X11 window.
type xdotoolInjector struct {
	response string
}

func forHost(response string) Dispatcher {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return NoopDispatcher{}
	}
	return &xdotoolInjector{response: response}
}

func (x *xdotoolInjector) SendConfirmation(ctx context.Context) (Result, error) {
	if err := exec.CommandContext(ctx, "xdotool", "type", "--delay", "50", x.response).Run(); err != nil {
		return Failed, errors.WrapDispatchError(err, "linux")
	}
	if err := exec.CommandContext(ctx, "xdotool", "key", "Return").Run(); err != nil {
		return Failed, errors.WrapDispatchError(err, "linux")
	}
	return Sent, nil
}
