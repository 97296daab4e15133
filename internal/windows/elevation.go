//go:build windows

package windows

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated returns whether the current process is running with administrator privileges
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RelaunchAsAdmin starts the current executable again through the "runas" verb
func RelaunchAsAdmin() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	// Check if running via 'go run' (exe will be in temp dir)
	if strings.Contains(exe, "go-build") {
		return fmt.Errorf("cannot relaunch when run via 'go run', please build first")
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}

	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}

	args, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(os.Args[1:]))
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, file, args, nil, SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("ShellExecute runas failed: %w", err)
	}

	return nil
}
