//go:build windows

package windows

import "golang.org/x/sys/windows"

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetAncestor          = user32.NewProc("GetAncestor")
	procGetClassNameW        = user32.NewProc("GetClassNameW")
	procGetDesktopWindow     = user32.NewProc("GetDesktopWindow")
	procGetWindow            = user32.NewProc("GetWindow")
	procIsWindow             = user32.NewProc("IsWindow")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procKeybd_event          = user32.NewProc("keybd_event")
	procSendMessageW         = user32.NewProc("SendMessageW")
	procSetFocus             = user32.NewProc("SetFocus")
	procSwitchToThisWindow   = user32.NewProc("SwitchToThisWindow")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
)
