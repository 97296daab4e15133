package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// titled is implemented by trees that can read window text
type titled interface {
	Title(hwnd uintptr) string
}

// target identifies the window an input command acts on
type target struct {
	hwnd  string
	class string
	root  string
}

func addRootFlags(cmd *cobra.Command, root *string) {
	cmd.Flags().StringVar(root, "root", "", "handle of the window to search under (default: desktop)")
	cmd.Flags().Duration("timeout", 0, "how long to keep retrying the class search (default from config)")
}

func addTargetFlags(cmd *cobra.Command, t *target) {
	cmd.Flags().StringVar(&t.hwnd, "hwnd", "", "target window handle, decimal or 0x hex")
	cmd.Flags().StringVarP(&t.class, "class", "c", "", "find the target window by class name")
	addRootFlags(cmd, &t.root)

	cmd.MarkFlagsMutuallyExclusive("hwnd", "class")
	cmd.MarkFlagsOneRequired("hwnd", "class")
}

// resolve returns the handle given with --hwnd, or searches for --class
func (t *target) resolve(a *app) (uintptr, error) {
	if t.hwnd != "" {
		return parseHandle(t.hwnd)
	}

	return findClass(a, t.root, t.class)
}

func findClass(a *app, rootFlag, className string) (uintptr, error) {
	root, err := parseOptionalHandle(rootFlag)
	if err != nil {
		return 0, err
	}

	if root == 0 {
		root = a.tree.DesktopWindow()
	}

	hwnd, ok := a.locator.FindWithTimeout(root, className, a.cfg.FindTimeout)
	if !ok {
		return 0, fmt.Errorf("%w: class %q", ErrNotFound, className)
	}

	attrs := []any{
		slog.String("class", className),
		slog.String("hwnd", formatHandle(hwnd)),
	}

	if tt, ok := a.tree.(titled); ok {
		attrs = append(attrs, slog.String("title", tt.Title(hwnd)))
	}

	a.log.Debug("Resolved target window", attrs...)

	return hwnd, nil
}

// parseHandle accepts a handle in decimal or with a 0x prefix
func parseHandle(s string) (uintptr, error) {
	s = strings.TrimSpace(s)

	digits, base := s, 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits, base = s[2:], 16
	}

	// Base 0 would also take 0b, 0o and underscores
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidHandle, s, err)
	}

	if n == 0 {
		return 0, fmt.Errorf("%w %q: handle must be non-zero", ErrInvalidHandle, s)
	}

	return uintptr(n), nil
}

func parseOptionalHandle(s string) (uintptr, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	return parseHandle(s)
}

func formatHandle(hwnd uintptr) string {
	return fmt.Sprintf("0x%X", hwnd)
}
