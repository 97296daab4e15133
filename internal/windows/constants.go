package windows

import "errors"

const (
	WM_SETTEXT = 0x000C
	WM_CHAR    = 0x0102
	BM_CLICK   = 0x00F5

	KEYEVENTF_KEYDOWN = 0x0000
	KEYEVENTF_KEYUP   = 0x0002

	GA_PARENT = 1

	GW_HWNDNEXT = 2
	GW_CHILD    = 5

	SW_SHOWNORMAL = 1
)

var (
	// ErrInvalidWindow means the handle does not identify an existing window
	ErrInvalidWindow = errors.New("invalid window handle")

	// ErrUnsupportedPlatform is returned by every OS operation on non-Windows builds
	ErrUnsupportedPlatform = errors.New("window automation is only supported on Windows")
)
