package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "find <class>",
		Short: "Find the first visible window with the given class name",
		Long: `Searches the window tree depth first, parents before children, and prints
the handle of the first visible window whose class name matches exactly.`,
		Example: `  winauto find Notepad
  winauto find Edit --root 0x1A2B3C --timeout 5s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensurePlatform(); err != nil {
				return err
			}

			hwnd, err := findClass(a, root, args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatHandle(hwnd))
			return err
		},
	}

	addRootFlags(cmd, &root)

	return cmd
}
