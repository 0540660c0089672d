// Package sigs is a thin os/signal wrapper for the two signals the
// server entrypoint cares about.
//
// Grounded on packetd's internal/sigs package: one channel per signal
// kind, rather than a single channel with a type switch.
package sigs

import (
	"os"
	"os/signal"
	"syscall"
)

// Terminate returns a channel that fires on SIGINT or SIGTERM.
func Terminate() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}
