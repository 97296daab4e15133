// Package timeouts defines timing constants used throughout the application.
// Most of them are defaults that can be overridden through configuration.
package timeouts

import "time"

const (
	// Input Simulation

	// ExecuteTimeout is the maximum time a synchronous input operation
	// (character input, text input, click) may take before it is reported
	// as failed. The underlying window message may still be delivered
	// after the timeout elapses.
	ExecuteTimeout = 10 * time.Second

	// CharInputDelay is the pause before each character delivered with
	// WM_CHAR, giving the target control time to process the previous one.
	CharInputDelay = 5 * time.Millisecond

	// Window Search

	// DefaultFindTimeout is the retry budget for a class name search when
	// none is configured. Zero means a single pass over the window tree.
	DefaultFindTimeout = 0

	// FindRetryInterval is the pause between full window tree walks while
	// retrying a search. Zero gives a tight polling loop.
	FindRetryInterval = 10 * time.Millisecond

	// ClassNameMaxLength is the size, in UTF-16 units, of the buffer used to
	// read window class names. The Win32 limit for registered class names
	// is 256, so this never truncates a real class name.
	ClassNameMaxLength = 512
)
