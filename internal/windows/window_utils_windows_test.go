//go:build windows

package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winauto/internal/logger"
)

func TestGetDesktopWindow(t *testing.T) {
	desktop := GetDesktopWindow()
	assert.NotZero(t, desktop)
	assert.True(t, IsWindow(desktop))
}

func TestIsWindow_InvalidHandle(t *testing.T) {
	assert.False(t, IsWindow(0))
}

func TestChildWindows_DesktopHasTopLevelWindows(t *testing.T) {
	desktop := GetDesktopWindow()

	children := ChildWindows(desktop)
	require.NotEmpty(t, children, "An interactive session always has top-level windows")

	for _, hwnd := range children {
		assert.Equal(t, desktop, GetParent(hwnd))
	}
}

func TestChildWindows_NoDuplicates(t *testing.T) {
	children := ChildWindows(GetDesktopWindow())

	seen := make(map[uintptr]bool, len(children))
	for _, hwnd := range children {
		assert.False(t, seen[hwnd], "handle 0x%X listed twice", hwnd)
		seen[hwnd] = true
	}
}

func TestChildWindows_InvalidParent(t *testing.T) {
	assert.Empty(t, ChildWindows(0))
}

func TestGetWindowText_InvalidHandle(t *testing.T) {
	assert.Empty(t, GetWindowText(0))
}

func TestTree_TitleMatchesWindowText(t *testing.T) {
	tree, err := NewTree(logger.NewNoOpLogger(), 0)
	require.NoError(t, err)

	for _, hwnd := range ChildWindows(GetDesktopWindow()) {
		if text := GetWindowText(hwnd); text != "" {
			assert.Equal(t, text, tree.Title(hwnd))
			return
		}
	}

	t.Skip("No titled top-level window in this session")
}

func TestGetClassName_Desktop(t *testing.T) {
	// The desktop window class is the atom #32769
	assert.Equal(t, "#32769", GetClassName(GetDesktopWindow(), 512))
	assert.Empty(t, GetClassName(GetDesktopWindow(), 0))
}

func TestDriver_RejectsInvalidWindow(t *testing.T) {
	d, err := NewDriver(logger.NewNoOpLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, d.SendChar(0, 'a'), ErrInvalidWindow)
	assert.ErrorIs(t, d.SetText(0, "text"), ErrInvalidWindow)
	assert.ErrorIs(t, d.Click(0), ErrInvalidWindow)
}

func TestNewTree_DefaultClassNameLength(t *testing.T) {
	tree, err := NewTree(logger.NewNoOpLogger(), 0)
	require.NoError(t, err)
	assert.Equal(t, 512, tree.classNameMax)
}
