// Package cmd implements the winauto command line interface.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winauto/internal/config"
	"github.com/Norgate-AV/winauto/internal/interfaces"
	"github.com/Norgate-AV/winauto/internal/locator"
	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/simulator"
	"github.com/Norgate-AV/winauto/internal/timeouts"
	"github.com/Norgate-AV/winauto/internal/version"
	"github.com/Norgate-AV/winauto/internal/windows"
)

var (
	// ErrNotFound is returned when no window matches the requested class
	ErrNotFound = errors.New("window not found")

	// ErrOperationFailed is returned when an input simulation reports failure
	ErrOperationFailed = errors.New("input simulation failed")

	// ErrInvalidHandle is returned for unparsable or zero window handles
	ErrInvalidHandle = errors.New("invalid window handle")
)

// errRelaunched is only seen when osExit does not exit
var errRelaunched = errors.New("relaunched as administrator")

// Swapped out in tests
var (
	osExit          = os.Exit
	isElevated      = windows.IsElevated
	relaunchAsAdmin = windows.RelaunchAsAdmin
)

// platformFactory builds the OS bindings; tests replace it with mocks
var platformFactory = func(log logger.LoggerInterface, cfg *config.Config) (interfaces.WindowTree, interfaces.InputDriver, error) {
	tree, err := windows.NewTree(log, cfg.ClassNameMax)
	if err != nil {
		return nil, nil, err
	}

	driver, err := windows.NewDriver(log)
	if err != nil {
		return nil, nil, err
	}

	return tree, driver, nil
}

// flagKeys maps command line flags onto config keys so flags win over file and env
var flagKeys = map[string]string{
	"exec-timeout": "execute_timeout",
	"timeout":      "find_timeout",
	"delay":        "char_delay",
}

type options struct {
	cfgFile  string
	verbose  bool
	showLogs bool
	elevate  bool
}

// app holds what subcommands share once the root pre-run has completed
type app struct {
	opts      *options
	cfg       *config.Config
	log       *logger.Logger
	tree      interfaces.WindowTree
	locator   *locator.Locator
	simulator *simulator.Simulator
}

// Execute builds the command tree and runs it. Called by main.go.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and returns the root command for winauto
func NewRootCmd() *cobra.Command {
	a := &app{opts: &options{}}

	rootCmd := &cobra.Command{
		Use:   "winauto",
		Short: "winauto - find windows by class name and simulate input",
		Long: `winauto locates Windows GUI windows by class name and drives them with
keystrokes, character input, text replacement and button clicks.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.showLogs {
				return logger.PrintLogFile(cmd.OutOrStdout(), a.cfg.Log)
			}

			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.opts.cfgFile, "config", "", `config file (default %LOCALAPPDATA%\winauto\config.yaml)`)
	pf.BoolVarP(&a.opts.verbose, "verbose", "V", false, "enable verbose output")
	pf.BoolVar(&a.opts.elevate, "elevate", false, "relaunch as administrator when not elevated")
	pf.Duration("exec-timeout", timeouts.ExecuteTimeout, "time limit for character, text and click operations")

	rootCmd.Flags().BoolVarP(&a.opts.showLogs, "logs", "l", false, "print the log file")

	rootCmd.AddCommand(
		newFindCmd(a),
		newKeysCmd(a),
		newCharsCmd(a),
		newTextCmd(a),
		newClickCmd(a),
	)

	return rootCmd
}

// setup loads configuration and starts logging
func (a *app) setup(cmd *cobra.Command) error {
	v := config.New(a.opts.cfgFile)

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	cfg.Log.Verbose = a.opts.verbose
	// Results go to stdout, diagnostics to stderr
	cfg.Log.Console = cmd.ErrOrStderr()

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to start logging: %w", err)
	}

	a.cfg = cfg
	a.log = log

	log.Debug("Configuration loaded",
		slog.String("command", cmd.CommandPath()),
		slog.String("config", v.ConfigFileUsed()),
		slog.Duration("execute_timeout", cfg.ExecuteTimeout),
		slog.Duration("char_delay", cfg.CharDelay),
		slog.Duration("find_timeout", cfg.FindTimeout),
	)

	return nil
}

// ensurePlatform creates the window bindings on first use
func (a *app) ensurePlatform() error {
	if a.locator != nil {
		return nil
	}

	if !isElevated() {
		if a.opts.elevate {
			a.log.Info("Relaunching as administrator")

			if err := relaunchAsAdmin(); err != nil {
				return fmt.Errorf("error relaunching as admin: %w", err)
			}

			// The elevated instance carries on from here
			a.close()
			osExit(0)
			return errRelaunched
		}

		a.log.Debug("Not running elevated, input to elevated windows will be blocked")
	}

	tree, driver, err := platformFactory(a.log, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise window automation: %w", err)
	}

	a.tree = tree
	a.locator = locator.New(tree, a.log, locator.WithRetryInterval(a.cfg.FindInterval))
	a.simulator = simulator.New(driver, a.log,
		simulator.WithExecuteTimeout(a.cfg.ExecuteTimeout),
		simulator.WithCharDelay(a.cfg.CharDelay),
	)

	return nil
}

func (a *app) close() {
	if a.log != nil {
		a.log.Close()
		a.log = nil
	}
}
