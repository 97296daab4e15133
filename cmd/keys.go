package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winauto/internal/keys"
)

func newKeysCmd(a *app) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "keys <combination>",
		Short: "Send a key combination to a window",
		Long: `Focuses the target window and presses each chord of the combination in
turn. Keys within a chord are joined with '+', chords with ','.`,
		Example: `  winauto keys ctrl+s --class Notepad
  winauto keys ctrl+a,delete --hwnd 0x1A2B3C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			combo, err := keys.Parse(args[0])
			if err != nil {
				return err
			}

			if err := a.ensurePlatform(); err != nil {
				return err
			}

			hwnd, err := t.resolve(a)
			if err != nil {
				return err
			}

			a.log.Info("Sending keys",
				slog.String("keys", combo.String()),
				slog.String("hwnd", formatHandle(hwnd)),
			)

			if !a.simulator.SimulateKeys(hwnd, combo) {
				return fmt.Errorf("%w: keys %s", ErrOperationFailed, combo)
			}

			return nil
		},
	}

	addTargetFlags(cmd, &t)

	return cmd
}
