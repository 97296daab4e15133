//go:build windows

package windows

// SwitchToThisWindow brings a window to the foreground, restoring it if minimized
func SwitchToThisWindow(hwnd uintptr) {
	// fAltTab=TRUE restores minimized windows; the function has no return value
	_, _, _ = procSwitchToThisWindow.Call(hwnd, 1)
}

// SetFocus assigns keyboard focus to a window and returns the previously focused window
func SetFocus(hwnd uintptr) uintptr {
	prev, _, _ := procSetFocus.Call(hwnd)
	return prev
}
