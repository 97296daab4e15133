package interfaces

// WindowTree exposes the parts of the window hierarchy needed to search it
type WindowTree interface {
	DesktopWindow() uintptr
	// ChildWindows returns the direct children of hwnd in Z-order
	ChildWindows(hwnd uintptr) []uintptr
	ClassName(hwnd uintptr) string
	IsVisible(hwnd uintptr) bool
}

// InputDriver delivers focus changes, keystrokes and window messages
type InputDriver interface {
	SwitchToWindow(hwnd uintptr)
	SetFocus(hwnd uintptr)
	// KeyEvent synthesizes a global key press or release; it is not targeted at a window
	KeyEvent(vk uint8, up bool)
	SendChar(hwnd uintptr, unit uint16) error
	SetText(hwnd uintptr, text string) error
	Click(hwnd uintptr) error
}
