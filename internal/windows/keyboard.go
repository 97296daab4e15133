//go:build windows

package windows

// KeybdEvent synthesizes a key press or release for the virtual key vk.
// The event goes to whichever window has keyboard focus.
func KeybdEvent(vk uint8, up bool) {
	flags := uintptr(KEYEVENTF_KEYDOWN)
	if up {
		flags = KEYEVENTF_KEYUP
	}

	// keybd_event has void return type, no error checking possible
	_, _, _ = procKeybd_event.Call(uintptr(vk), 0, flags, 0)
}
