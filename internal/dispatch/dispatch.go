// Package dispatch sends the automated confirmation to the focused window.
//
// Dispatch is best effort: the keystrokes go to whatever window has focus
// at the moment of the call, and delivery is never verified. Hosts without
// an input-injection facility get a no-op dispatcher that reports
// Unsupported instead of failing the run.
package dispatch

import "context"

// Result classifies a dispatch attempt.
type Result int

const (
	Sent Result = iota
	Failed
	Unsupported
)

func (r Result) String() string {
	switch r {
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Dispatcher emits the confirmation keystroke sequence: the response word
// followed by Enter, typed into the currently focused window.
type Dispatcher interface {
	SendConfirmation(ctx context.Context) (Result, error)
}

// ForHost selects the injector for the current platform once at startup.
// Hosts without injection capability get a NoopDispatcher.
func ForHost(response string) Dispatcher {
	return forHost(response)
}

// NoopDispatcher reports Unsupported without attempting anything.
type NoopDispatcher struct{}

func (NoopDispatcher) SendConfirmation(context.Context) (Result, error) {
	return Unsupported, nil
}
