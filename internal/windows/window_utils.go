//go:build windows

package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// ChildWindows returns the direct children of parent in Z-order.
// Handles reparented or recycled during the walk are skipped.
func ChildWindows(parent uintptr) []uintptr {
	var children []uintptr
	seen := make(map[uintptr]bool)

	for hwnd := getWindow(parent, GW_CHILD); hwnd != 0 && !seen[hwnd]; hwnd = getWindow(hwnd, GW_HWNDNEXT) {
		seen[hwnd] = true

		if GetParent(hwnd) == parent {
			children = append(children, hwnd)
		}
	}

	return children
}

func getWindow(hwnd uintptr, cmd uintptr) uintptr {
	ret, _, _ := procGetWindow.Call(hwnd, cmd)
	return ret
}

// GetParent returns the parent of hwnd, never its owner
func GetParent(hwnd uintptr) uintptr {
	ret, _, _ := procGetAncestor.Call(hwnd, GA_PARENT)
	return ret
}

// GetDesktopWindow returns the handle of the desktop window
func GetDesktopWindow() uintptr {
	ret, _, _ := procGetDesktopWindow.Call()
	return ret
}

// GetClassName retrieves the class name of a window, reading at most maxLen UTF-16 units
func GetClassName(hwnd uintptr, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	buf := make([]uint16, maxLen)

	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf[:ret])
}

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}

	buf := make([]uint16, length+1)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf[:ret])
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// IsWindow checks if hwnd identifies an existing window
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}
