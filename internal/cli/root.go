// Package cli implements the countdown command line entry point.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"countdown/internal/core/countdown"
	"countdown/internal/core/model"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appName = "Countdown"

// Options holds the parsed command line flags.
type Options struct {
	Seconds    int
	Start      bool
	ConfigPath string
	NoTray     bool
	Verbose    bool
}

// NewRootCmd returns the countdown command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(run)
}

func newRootCmd(runApp func(*cobra.Command, Options) error) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Desktop countdown timer",
		Long: `Countdown opens a window with a MM:SS countdown timer.

Enter a duration in seconds (up to 3599, 59:59), then start, pause, resume or
reset it from the window, its keyboard shortcuts, or the system tray menu.

Keyboard shortcuts:
	Enter  - start
	Space  - pause / resume
	Escape - reset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := opts.validate(cmd.Flags().Changed("seconds")); err != nil {
				return err
			}
			return runApp(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Seconds, "seconds", "s", 0, "prefill the countdown length in seconds")
	flags.BoolVar(&opts.Start, "start", false, "start the countdown immediately (requires --seconds)")
	flags.StringVar(&opts.ConfigPath, "config", "", "settings file (default <user config dir>/Countdown/settings.yaml)")
	flags.BoolVar(&opts.NoTray, "no-tray", false, "do not install the system tray menu")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func (opts Options) validate(secondsSet bool) error {
	if !secondsSet {
		if opts.Start {
			return errors.New("--start requires --seconds")
		}
		return nil
	}
	if _, err := countdown.Validate(strconv.Itoa(opts.Seconds), model.DefaultMaxSeconds); err != nil {
		return fmt.Errorf("--seconds: %w", err)
	}
	return nil
}

func newLogger(verbose bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
