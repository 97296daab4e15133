//go:build windows

package windows

import (
	"log/slog"

	"github.com/Norgate-AV/winauto/internal/logger"
)

// Driver implements interfaces.InputDriver on top of user32
type Driver struct {
	log logger.LoggerInterface
}

// NewDriver creates an input driver
func NewDriver(log logger.LoggerInterface) (*Driver, error) {
	return &Driver{log: log}, nil
}

func (d *Driver) SwitchToWindow(hwnd uintptr) {
	d.log.Debug("SwitchToThisWindow", slog.Uint64("hwnd", uint64(hwnd)))
	SwitchToThisWindow(hwnd)
}

func (d *Driver) SetFocus(hwnd uintptr) {
	prev := SetFocus(hwnd)
	d.log.Debug("SetFocus",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Uint64("previous", uint64(prev)),
	)
}

func (d *Driver) KeyEvent(vk uint8, up bool) {
	d.log.Debug("keybd_event", slog.Int("vk", int(vk)), slog.Bool("up", up))
	KeybdEvent(vk, up)
}

func (d *Driver) SendChar(hwnd uintptr, unit uint16) error {
	return SendChar(hwnd, unit)
}

func (d *Driver) SetText(hwnd uintptr, text string) error {
	d.log.Debug("WM_SETTEXT", slog.Uint64("hwnd", uint64(hwnd)), slog.Int("length", len(text)))
	return SetText(hwnd, text)
}

func (d *Driver) Click(hwnd uintptr) error {
	d.log.Debug("BM_CLICK", slog.Uint64("hwnd", uint64(hwnd)))
	return Click(hwnd)
}
