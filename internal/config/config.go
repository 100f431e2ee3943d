package config

// Run configuration for autonudge

import (
	"fmt"
	"strings"

	"github.com/rgould/autonudge/internal/errors"
)

// Defaults for a run when no flags override them.
const (
	DefaultSkipTime = 5
	DefaultMessage  = "Skipping in"
	DefaultTarget   = "claude"
	DefaultResponse = "continue"
)

// MinSkipTime is the smallest countdown duration a run will accept.
const MinSkipTime = 1

// RunConfig holds the options for a single countdown run.
// It is built once from parsed flags and never mutated afterwards.
type RunConfig struct {
	SkipTime int    // countdown duration in seconds
	Message  string // label shown while counting down
	AutoOnly bool   // abort unless the target process is detected
	Target   string // process token gating --auto and receiving the response
	Response string // confirmation word typed on completion
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() RunConfig {
	return RunConfig{
		SkipTime: DefaultSkipTime,
		Message:  DefaultMessage,
		Target:   DefaultTarget,
		Response: DefaultResponse,
	}
}

// Validate checks the run invariants. A failure here is a usage error and
// must be reported before any timer starts.
func (c RunConfig) Validate() error {
	if c.SkipTime < MinSkipTime {
		return errors.WrapFlagError(
			fmt.Errorf("duration must be at least %d second, got %d", MinSkipTime, c.SkipTime),
			"--skiptime")
	}
	if strings.TrimSpace(c.Target) == "" {
		return errors.WrapFlagError(
			fmt.Errorf("target process token must not be empty"),
			"--target")
	}
	if strings.TrimSpace(c.Response) == "" {
		return errors.WrapFlagError(
			fmt.Errorf("response text must not be empty"),
			"--response")
	}
	return nil
}

// Normalize returns a copy with out-of-range values clamped to defaults.
// It exists for programmatic construction; the CLI path rejects bad values
// via Validate instead of silently correcting them.
func (c RunConfig) Normalize() RunConfig {
	if c.SkipTime < MinSkipTime {
		c.SkipTime = MinSkipTime
	}
	if strings.TrimSpace(c.Message) == "" {
		c.Message = DefaultMessage
	}
	if strings.TrimSpace(c.Target) == "" {
		c.Target = DefaultTarget
	}
	if strings.TrimSpace(c.Response) == "" {
		c.Response = DefaultResponse
	}
	return c
}
