//go:build !darwin && !linux && !windows

package dispatch

// Platforms without a known injection facility get the no-op dispatcher.
func forHost(string) Dispatcher {
	return NoopDispatcher{}
}
