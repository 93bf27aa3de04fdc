package cli

import (
	"fmt"

	"github.com/ariel-frischer/flashwin/internal/flash"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFlashCmd(a *app) *cobra.Command {
	var count uint32

	cmd := &cobra.Command{
		Use:   "flash",
		Short: "Flash until the window comes to the foreground, or --count times",
		Example: `  flashwin flash
  flashwin flash --count 5 --timeout 300ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.flasher.Init()
			if cmd.Flags().Changed("count") {
				return a.report(cmd, a.flasher.FlashCount(count))
			}
			return a.report(cmd, a.flasher.Flash())
		},
	}
	cmd.Flags().Uint32VarP(&count, "count", "n", 0, "Flash exactly this many times instead of until focused")
	return cmd
}

func newStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Flash until stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.flasher.Init()
			return a.report(cmd, a.flasher.Start())
		},
	}
}

func newStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop flashing and restore the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.flasher.Init()
			return a.report(cmd, a.flasher.Stop())
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the handle of the window flash commands would target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ok := a.flasher.(*flash.Controller)
			if !ok {
				return a.unsupported(cmd)
			}

			c.Init()
			h := c.Resolver().Resolve()
			if h == 0 {
				cmd.PrintErrf("no window found (class %q)\n", c.Resolver().ClassName())
				return NewExitError(ExitNotFlashed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%x\n", uintptr(h))
			return nil
		},
	}
}

func newNotifyCmd(a *app) *cobra.Command {
	var stop bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Flash the window as configured under attention, for use in hooks",
		Long: `Flash the window the way the attention section of the configuration
describes: until_focus, count or persistent. Does nothing unless
attention.enabled is true, and nothing in CI.`,
		Example: `  FLASHWIN_ATTENTION_ENABLED=true flashwin notify
  flashwin notify --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := flash.NewHandler(a.cfg.Attention, a.flasher)
			if !h.Config().Enabled {
				cmd.PrintErrln("attention is disabled (set attention.enabled)")
				return NewExitError(ExitNotFlashed)
			}

			a.flasher.Init()
			if stop {
				return a.report(cmd, h.Clear())
			}
			return a.report(cmd, h.OnEvent())
		},
	}
	cmd.Flags().BoolVar(&stop, "clear", false, "Stop flashing started by a previous notify")
	return cmd
}

// report prints the outcome of a flash operation and maps it to an exit code.
func (a *app) report(cmd *cobra.Command, ok bool) error {
	if !flash.Supported(a.flasher) {
		return a.unsupported(cmd)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("not flashed"))
		return NewExitError(ExitNotFlashed)
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("ok"))
	return nil
}

func (a *app) unsupported(cmd *cobra.Command) error {
	cmd.PrintErrf("window flashing is not supported on %s\n", flash.Platform())
	return NewExitError(ExitUnsupported)
}
