//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SendChar delivers one UTF-16 code unit to a window as WM_CHAR
func SendChar(hwnd uintptr, unit uint16) error {
	if !IsWindow(hwnd) {
		return ErrInvalidWindow
	}

	// The result of WM_CHAR is application defined, so it is not checked
	_, _, _ = procSendMessageW.Call(hwnd, WM_CHAR, uintptr(unit), 0)
	return nil
}

// SetText replaces the text of a window with WM_SETTEXT
func SetText(hwnd uintptr, text string) error {
	if !IsWindow(hwnd) {
		return ErrInvalidWindow
	}

	ptr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return fmt.Errorf("encode text: %w", err)
	}

	ret, _, _ := procSendMessageW.Call(hwnd, WM_SETTEXT, 0, uintptr(unsafe.Pointer(ptr)))
	if ret == 0 {
		return fmt.Errorf("WM_SETTEXT rejected by window 0x%X", hwnd)
	}

	return nil
}

// Click sends BM_CLICK, which makes a button act as if it was pressed and released
func Click(hwnd uintptr) error {
	if !IsWindow(hwnd) {
		return ErrInvalidWindow
	}

	_, _, _ = procSendMessageW.Call(hwnd, BM_CLICK, 0, 0)
	return nil
}
