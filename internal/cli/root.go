// Package cli provides the Cobra-based flashwin command, a small tool for
// exercising window flashing by hand.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ariel-frischer/flashwin/internal/config"
	"github.com/ariel-frischer/flashwin/internal/flash"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Platform hooks. Tests replace them.
var (
	nativeAPI     = flash.NativeAPI
	consoleWindow = flash.ConsoleWindow
)

// app carries state shared by subcommands after flags and config are parsed.
type app struct {
	configPath string
	className  string
	timeout    time.Duration
	hwnd       string
	debug      bool

	cfg     *config.Configuration
	log     *logrus.Logger
	flasher flash.Flasher
}

// NewRootCmd builds the flashwin command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "flashwin",
		Short: "Flash a window's caption and taskbar button",
		Long: `flashwin asks Windows to flash the caption and taskbar button of a window
so the user notices it, and to stop flashing.

The window is the one given by --hwnd, otherwise the active window of the
process, the first window of the calling thread whose class name matches
--class, or the console window flashwin runs in. On platforms other than
Windows every command reports that flashing is unsupported.`,
		Example: `  # Flash until the window comes to the foreground
  flashwin flash

  # Flash three times
  flashwin flash --count 3

  # Flash another window by handle
  flashwin flash --hwnd 0x1a2b3c

  # Flash until stopped
  flashwin start
  flashwin stop`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", ".flashwin/config.json", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&a.className, "class", "", "Window class name to match (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Delay between flashes, 0 for the cursor blink rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.hwnd, "hwnd", "", "Window handle to flash, decimal or 0x hex (skips discovery)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(
		newFlashCmd(a),
		newStartCmd(a),
		newStopCmd(a),
		newResolveCmd(a),
		newNotifyCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and prints errors that carry no exit code.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	var e *exitError
	if err != nil && !errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// setup loads configuration, applies flag overrides, and builds the logger
// and flasher.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("class") {
		cfg.ClassName = a.className
	}
	if flags.Changed("timeout") {
		if a.timeout < 0 {
			return fmt.Errorf("--timeout must not be negative")
		}
		cfg.TimeoutMS = int(a.timeout.Milliseconds())
	}
	if err := config.Validate(cfg, a.configPath); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	target, err := parseHandle(a.hwnd)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(cfg.Level())

	a.flasher = newFlasher(target, cfg.FlashOptions(a.log)...)
	return nil
}

// newFlasher builds the platform Flasher. A console process owns no window,
// so without an explicit target the console window stands in when the
// resolver finds no active window.
func newFlasher(target flash.Handle, opts ...flash.Option) flash.Flasher {
	api := nativeAPI()
	if api == nil {
		return flash.NewNoop()
	}
	if target != 0 {
		api = flash.WithTargetWindow(api, target)
	} else {
		api = flash.WithFallbackWindow(api, consoleWindow)
	}
	return flash.NewWithAPI(api, opts...)
}

func parseHandle(s string) (flash.Handle, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("--hwnd %q is not a window handle", s)
	}
	return flash.Handle(v), nil
}
