// Package locator finds window handles by class name.
package locator

import (
	"log/slog"
	"time"

	"github.com/Norgate-AV/winauto/internal/interfaces"
	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/timeouts"
)

// Locator searches a window tree depth-first for a visible window of a given class
type Locator struct {
	tree          interfaces.WindowTree
	log           logger.LoggerInterface
	retryInterval time.Duration
	now           func() time.Time
	sleep         func(time.Duration)
}

// Option configures a Locator
type Option func(*Locator)

// WithRetryInterval sets the pause between tree walks in FindWithTimeout.
// Zero retries in a tight loop.
func WithRetryInterval(d time.Duration) Option {
	return func(l *Locator) {
		if d < 0 {
			d = 0
		}

		l.retryInterval = d
	}
}

// New creates a Locator over tree
func New(tree interfaces.WindowTree, log logger.LoggerInterface, opts ...Option) *Locator {
	l := &Locator{
		tree:          tree,
		log:           log,
		retryInterval: timeouts.FindRetryInterval,
		now:           time.Now,
		sleep:         time.Sleep,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Find walks the tree under root once and returns the first visible window,
// in pre-order, whose class name equals className. A root of 0 means the desktop.
func (l *Locator) Find(root uintptr, className string) (uintptr, bool) {
	if className == "" {
		return 0, false
	}

	if root == 0 {
		root = l.tree.DesktopWindow()
	}

	return l.walk(root, className)
}

// FindWithTimeout repeats Find until a window matches or timeout has elapsed.
// Each attempt walks the whole tree again. A timeout <= 0 makes a single attempt.
func (l *Locator) FindWithTimeout(root uintptr, className string, timeout time.Duration) (uintptr, bool) {
	if className == "" {
		return 0, false
	}

	if root == 0 {
		root = l.tree.DesktopWindow()
	}

	start := l.now()
	attempts := 0

	for {
		attempts++
		if hwnd, ok := l.walk(root, className); ok {
			return hwnd, true
		}

		elapsed := l.now().Sub(start)
		if elapsed >= timeout {
			break
		}

		if pause := min(l.retryInterval, timeout-elapsed); pause > 0 {
			l.sleep(pause)
		}
	}

	l.log.Debug("Window not found",
		slog.String("class", className),
		slog.Uint64("root", uint64(root)),
		slog.Int("attempts", attempts),
		slog.Duration("timeout", timeout),
	)

	return 0, false
}

// FindOnDesktop searches from the desktop window
func (l *Locator) FindOnDesktop(className string, timeout time.Duration) (uintptr, bool) {
	return l.FindWithTimeout(0, className, timeout)
}

func (l *Locator) walk(root uintptr, className string) (uintptr, bool) {
	// Children are pushed in reverse so they pop in enumeration order,
	// which makes the stack visit nodes in pre-order.
	stack := reversed(l.tree.ChildWindows(root))

	for len(stack) > 0 {
		hwnd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if l.tree.IsVisible(hwnd) && l.tree.ClassName(hwnd) == className {
			l.log.Debug("Window found",
				slog.String("class", className),
				slog.Uint64("hwnd", uint64(hwnd)),
			)

			return hwnd, true
		}

		stack = append(stack, reversed(l.tree.ChildWindows(hwnd))...)
	}

	return 0, false
}

func reversed(hwnds []uintptr) []uintptr {
	out := make([]uintptr, len(hwnds))
	for i, h := range hwnds {
		out[len(hwnds)-1-i] = h
	}

	return out
}
