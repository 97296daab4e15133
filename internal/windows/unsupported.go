//go:build !windows

package windows

import "github.com/Norgate-AV/winauto/internal/logger"

// Tree is unavailable outside Windows
type Tree struct{}

// NewTree always fails outside Windows
func NewTree(_ logger.LoggerInterface, _ int) (*Tree, error) {
	return nil, ErrUnsupportedPlatform
}

func (t *Tree) DesktopWindow() uintptr           { return 0 }
func (t *Tree) ChildWindows(_ uintptr) []uintptr { return nil }
func (t *Tree) ClassName(_ uintptr) string       { return "" }
func (t *Tree) IsVisible(_ uintptr) bool         { return false }
func (t *Tree) Title(_ uintptr) string           { return "" }

// Driver is unavailable outside Windows
type Driver struct{}

// NewDriver always fails outside Windows
func NewDriver(_ logger.LoggerInterface) (*Driver, error) {
	return nil, ErrUnsupportedPlatform
}

func (d *Driver) SwitchToWindow(_ uintptr)           {}
func (d *Driver) SetFocus(_ uintptr)                 {}
func (d *Driver) KeyEvent(_ uint8, _ bool)           {}
func (d *Driver) SendChar(_ uintptr, _ uint16) error { return ErrUnsupportedPlatform }
func (d *Driver) SetText(_ uintptr, _ string) error  { return ErrUnsupportedPlatform }
func (d *Driver) Click(_ uintptr) error              { return ErrUnsupportedPlatform }

// IsElevated reports false outside Windows
func IsElevated() bool {
	return false
}

// RelaunchAsAdmin is unavailable outside Windows
func RelaunchAsAdmin() error {
	return ErrUnsupportedPlatform
}
