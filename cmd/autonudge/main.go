package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgould/autonudge/internal/config"
	"github.com/rgould/autonudge/internal/countdown"
	"github.com/rgould/autonudge/internal/detect"
	"github.com/rgould/autonudge/internal/dispatch"
	"github.com/rgould/autonudge/internal/logging"
	"github.com/rgould/autonudge/internal/progress"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitInterrupt = 130
)

type runFlags struct {
	skipTime int
	message  string
	auto     bool
	target   string
	response string
	verbose  bool
	quiet    bool
	logFile  string
	noColor  bool
}

// usageError marks failures that should be answered with the options list:
// bad flags, bad values, unexpected arguments. Runtime failures such as an
// unwritable log file stay unwrapped and get no usage text.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	exitCode := exitOK
	rootCmd := newRootCmd(&exitCode)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}
		os.Exit(exitFailure)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "autonudge",
		Short: "Countdown timer that auto-confirms a waiting coding assistant",
		Long: `autonudge waits for a configurable interval, shows a live countdown,
and then types an automated continue response into the focused window.

It is meant to run next to a coding assistant session (Claude and
friends) that has paused for a human "continue". When the countdown
expires and the assistant process is still running, autonudge sends the
confirmation keystrokes to whatever window currently has focus.`,
		Example: `  # Default five second countdown
  autonudge

  # Ten seconds with a custom label
  autonudge --skiptime 10 --message "Resuming in"

  # Only run when the assistant process is actually up
  autonudge --auto

  # Watch a different tool and send a different response
  autonudge --target aider --response yes`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, flags, exitCode)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.Flags().IntVarP(&flags.skipTime, "skiptime", "t", config.DefaultSkipTime, "countdown duration in seconds (minimum 1)")
	cmd.Flags().StringVarP(&flags.message, "message", "m", config.DefaultMessage, "label shown during the countdown")
	cmd.Flags().BoolVarP(&flags.auto, "auto", "a", false, "run only when the target process is detected")
	cmd.Flags().StringVar(&flags.target, "target", config.DefaultTarget, "process name token to detect")
	cmd.Flags().StringVar(&flags.response, "response", config.DefaultResponse, "confirmation word typed on completion")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "log errors only")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "also write logs to this file")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable styled output")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runCountdown(cmd *cobra.Command, flags *runFlags, exitCode *int) error {
	cfg := config.RunConfig{
		SkipTime: flags.skipTime,
		Message:  flags.message,
		AutoOnly: flags.auto,
		Target:   flags.target,
		Response: flags.response,
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	level := logging.LogLevelInfo
	if flags.verbose {
		level = logging.LogLevelVerbose
	}
	if flags.quiet {
		level = logging.LogLevelError
	}
	log, err := logging.NewLogger(level, flags.logFile)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := progress.NewRenderer(cfg.Message, cfg.SkipTime)
	if flags.noColor {
		renderer.DisableColor()
	}
	detector := detect.New(cfg.Target)
	dispatcher := dispatch.ForHost(cfg.Response)

	log.LogStartup(cfg.SkipTime, cfg.Message, cfg.Target, cfg.AutoOnly)

	timer := countdown.New(cfg, detector, dispatcher, renderer, log)
	switch outcome := timer.Run(ctx); outcome {
	case countdown.Completed:
		*exitCode = exitOK
	case countdown.Cancelled:
		*exitCode = exitInterrupt
	case countdown.SkippedNoTarget:
		fmt.Fprintf(cmd.OutOrStdout(), "Target process %q not detected; skipping countdown\n", cfg.Target)
		*exitCode = exitFailure
	default:
		*exitCode = exitFailure
	}

	return nil
}
