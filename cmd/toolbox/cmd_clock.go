package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/o0fung/toolbox/internal/clock"
)

var (
	clockSize  string
	clockColor string
)

// clockCmd shows the full-screen wall clock; timer and countdown are
// subcommands sharing the size/color flags.
var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Full-screen seven-segment clock",
	Long: `Shows a full-screen seven-segment digital clock until interrupted.

Subcommands:
  timer      stopwatch counting up from zero
  countdown  count down from a duration

Examples:
  toolbox clock
  toolbox clock -s xlarge -c magenta
  toolbox clock timer
  toolbox clock countdown 10
  toolbox clock countdown 1 10
  toolbox clock countdown 2:15:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClockFace(clock.Options{Mode: clock.ModeClock})
	},
}

var clockTimerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Stopwatch counting up from zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClockFace(clock.Options{Mode: clock.ModeTimer})
	},
}

var clockCountdownCmd = &cobra.Command{
	Use:   "countdown <duration>...",
	Short: "Count down from a duration",
	Long: `Counts down from a duration and exits when it reaches zero.

The duration may be given as seconds, minute/second or
hour/minute/second fields, separated by spaces, colons or commas.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := clock.ParseCountdown(args)
		if err != nil {
			return err
		}
		return runClockFace(clock.Options{Mode: clock.ModeCountdown, Duration: d})
	},
}

func init() {
	clockCmd.PersistentFlags().StringVarP(&clockSize, "size", "s", "", "size preset: small, medium, large, xlarge")
	clockCmd.PersistentFlags().StringVarP(&clockColor, "color", "c", "", "color preset: cyan, magenta, green, yellow, red, blue, white")
	clockCmd.AddCommand(clockTimerCmd)
	clockCmd.AddCommand(clockCountdownCmd)
}

func runClockFace(opts clock.Options) error {
	opts.Size = clockSize
	if opts.Size == "" {
		opts.Size = cfg.Clock.Size
	}
	opts.Color = clockColor
	if opts.Color == "" {
		opts.Color = cfg.Clock.Color
	}

	p := tea.NewProgram(clock.New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
