package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newCharsCmd(a *app) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "chars <text>",
		Short: "Type text into a window one character at a time",
		Long: `Delivers each character of text to the target window as a WM_CHAR
message, pausing before every character.`,
		Example: `  winauto chars "hello world" --class Edit
  winauto chars abc --hwnd 0x1A2B3C --delay 20ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensurePlatform(); err != nil {
				return err
			}

			hwnd, err := t.resolve(a)
			if err != nil {
				return err
			}

			a.log.Info("Sending characters",
				slog.Int("count", len([]rune(args[0]))),
				slog.String("hwnd", formatHandle(hwnd)),
			)

			if !a.simulator.SimulateCharsWithDelay(hwnd, args[0], a.cfg.CharDelay) {
				return fmt.Errorf("%w: chars", ErrOperationFailed)
			}

			return nil
		},
	}

	addTargetFlags(cmd, &t)
	cmd.Flags().Duration("delay", 0, "pause before each character (default from config)")

	return cmd
}

func newTextCmd(a *app) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "text <text>",
		Short: "Replace the text of a window",
		Long:  `Sets the whole text of the target window or control with WM_SETTEXT.`,
		Example: `  winauto text "new contents" --class Edit
  winauto text "" --hwnd 0x1A2B3C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensurePlatform(); err != nil {
				return err
			}

			hwnd, err := t.resolve(a)
			if err != nil {
				return err
			}

			a.log.Info("Setting text", slog.String("hwnd", formatHandle(hwnd)))

			if !a.simulator.SimulateText(hwnd, args[0]) {
				return fmt.Errorf("%w: text", ErrOperationFailed)
			}

			return nil
		},
	}

	addTargetFlags(cmd, &t)

	return cmd
}

func newClickCmd(a *app) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "click",
		Short: "Click a button",
		Long:  `Brings the target window forward and sends it BM_CLICK.`,
		Example: `  winauto click --class Button
  winauto click --hwnd 0x1A2B3C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensurePlatform(); err != nil {
				return err
			}

			hwnd, err := t.resolve(a)
			if err != nil {
				return err
			}

			a.log.Info("Clicking", slog.String("hwnd", formatHandle(hwnd)))

			if !a.simulator.SimulateClick(hwnd) {
				return fmt.Errorf("%w: click", ErrOperationFailed)
			}

			return nil
		},
	}

	addTargetFlags(cmd, &t)

	return cmd
}
