//go:build windows

package windows

import (
	"log/slog"

	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/timeouts"
)

// Tree implements interfaces.WindowTree on top of user32
type Tree struct {
	log          logger.LoggerInterface
	classNameMax int
}

// NewTree creates a window tree reader. classNameMax <= 0 selects the default buffer length.
func NewTree(log logger.LoggerInterface, classNameMax int) (*Tree, error) {
	if classNameMax <= 0 {
		classNameMax = timeouts.ClassNameMaxLength
	}

	return &Tree{log: log, classNameMax: classNameMax}, nil
}

func (t *Tree) DesktopWindow() uintptr {
	return GetDesktopWindow()
}

func (t *Tree) ChildWindows(hwnd uintptr) []uintptr {
	children := ChildWindows(hwnd)
	t.log.Debug("Enumerated child windows",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Int("count", len(children)),
	)

	return children
}

func (t *Tree) ClassName(hwnd uintptr) string {
	return GetClassName(hwnd, t.classNameMax)
}

func (t *Tree) IsVisible(hwnd uintptr) bool {
	return IsWindowVisible(hwnd)
}

// Title returns the window text
func (t *Tree) Title(hwnd uintptr) string {
	return GetWindowText(hwnd)
}
