// Package simulator delivers keystrokes, characters, text and clicks to windows.
//
// Keystrokes are fire-and-forget: they are queued with keybd_event on the
// caller's goroutine and never time out. Character input, text input and
// clicks go through SendMessage on a dedicated worker and are reported as
// failed if they do not finish within the execute timeout.
package simulator

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf16"

	"github.com/Norgate-AV/winauto/internal/interfaces"
	"github.com/Norgate-AV/winauto/internal/keys"
	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/timeouts"
	"github.com/Norgate-AV/winauto/internal/worker"
)

// Simulator drives an InputDriver against window handles
type Simulator struct {
	driver         interfaces.InputDriver
	log            logger.LoggerInterface
	executeTimeout time.Duration
	charDelay      time.Duration
}

// Option configures a Simulator
type Option func(*Simulator)

// WithExecuteTimeout bounds SimulateChars, SimulateText and SimulateClick
func WithExecuteTimeout(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.executeTimeout = d
		}
	}
}

// WithCharDelay sets the default pause before each character in SimulateChars
func WithCharDelay(d time.Duration) Option {
	return func(s *Simulator) {
		s.charDelay = max(d, 0)
	}
}

// New creates a Simulator
func New(driver interfaces.InputDriver, log logger.LoggerInterface, opts ...Option) *Simulator {
	s := &Simulator{
		driver:         driver,
		log:            log,
		executeTimeout: timeouts.ExecuteTimeout,
		charDelay:      timeouts.CharInputDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SimulateKeys focuses hwnd and presses each chord of combo in turn.
// It returns true once the events are queued; delivery is not confirmed.
func (s *Simulator) SimulateKeys(hwnd uintptr, combo keys.Combination) bool {
	if hwnd == 0 {
		return false
	}

	s.log.Debug("Simulating keys",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.String("keys", combo.String()),
	)

	s.driver.SwitchToWindow(hwnd)
	s.driver.SetFocus(hwnd)

	for _, ev := range keys.Events(combo) {
		s.driver.KeyEvent(uint8(ev.Code), ev.Up)
	}

	return true
}

// SimulateChars focuses hwnd and sends text one character at a time as
// WM_CHAR, pausing for the default character delay before each one.
func (s *Simulator) SimulateChars(hwnd uintptr, text string) bool {
	return s.SimulateCharsWithDelay(hwnd, text, s.charDelay)
}

// SimulateCharsWithDelay is SimulateChars with an explicit per-character delay
func (s *Simulator) SimulateCharsWithDelay(hwnd uintptr, text string, delay time.Duration) bool {
	if hwnd == 0 {
		return false
	}

	delay = max(delay, 0)

	return s.execute("chars", hwnd, func(ctx context.Context) error {
		s.driver.SwitchToWindow(hwnd)
		s.driver.SetFocus(hwnd)

		for _, r := range text {
			if err := pause(ctx, delay); err != nil {
				return err
			}

			for _, unit := range utf16.Encode([]rune{r}) {
				if err := s.driver.SendChar(hwnd, unit); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// SimulateText focuses hwnd and replaces its text with a single WM_SETTEXT
func (s *Simulator) SimulateText(hwnd uintptr, text string) bool {
	if hwnd == 0 {
		return false
	}

	return s.execute("text", hwnd, func(context.Context) error {
		s.driver.SwitchToWindow(hwnd)
		s.driver.SetFocus(hwnd)

		return s.driver.SetText(hwnd, text)
	})
}

// SimulateClick brings hwnd to the foreground and sends it BM_CLICK
func (s *Simulator) SimulateClick(hwnd uintptr) bool {
	if hwnd == 0 {
		return false
	}

	return s.execute("click", hwnd, func(context.Context) error {
		s.driver.SwitchToWindow(hwnd)

		return s.driver.Click(hwnd)
	})
}

func (s *Simulator) execute(op string, hwnd uintptr, task worker.Task) bool {
	start := time.Now()

	if err := worker.Run(context.Background(), s.executeTimeout, task); err != nil {
		s.log.Debug("Input simulation failed",
			slog.String("op", op),
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		return false
	}

	s.log.Debug("Input simulation succeeded",
		slog.String("op", op),
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return true
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
