package clock

import (
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which face the clock program shows.
type Mode int

const (
	ModeClock Mode = iota // wall clock, HH:MM:SS
	ModeTimer             // stopwatch counting up
	ModeCountdown
)

// Options configure the clock TUI.
type Options struct {
	Mode     Mode
	Size     string        // size preset name
	Color    string        // color preset name
	Gap      int           // spaces between glyphs
	Duration time.Duration // countdown only
}

// Model is the bubbletea model for all three clock faces.
type Model struct {
	mode  Mode
	inner int
	gap   int
	style lipgloss.Style

	width  int
	height int

	stopwatch stopwatch.Model
	countdown timer.Model
}

type tickMsg time.Time

// New builds a clock model from options.
func New(opts Options) Model {
	gap := opts.Gap
	if gap <= 0 {
		gap = 1
	}
	m := Model{
		mode:  opts.Mode,
		inner: SizeInner(opts.Size),
		gap:   gap,
		style: BannerStyle(opts.Color),
	}
	switch opts.Mode {
	case ModeTimer:
		m.stopwatch = stopwatch.NewWithInterval(time.Second)
	case ModeCountdown:
		m.countdown = timer.NewWithInterval(opts.Duration, time.Second)
	}
	return m
}

// tickOnSecond fires on the next wall-clock second boundary so the display
// flips in step with real time.
func tickOnSecond() tea.Cmd {
	next := time.Now().Truncate(time.Second).Add(time.Second)
	return tea.Tick(time.Until(next), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	switch m.mode {
	case ModeTimer:
		return m.stopwatch.Init()
	case ModeCountdown:
		return m.countdown.Init()
	default:
		return tickOnSecond()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, tickOnSecond()

	case timer.TimeoutMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeTimer:
		m.stopwatch, cmd = m.stopwatch.Update(msg)
	case ModeCountdown:
		m.countdown, cmd = m.countdown.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	banner := m.style.Render(RenderBanner(m.faceTime(), m.inner, m.gap))
	if m.width == 0 || m.height == 0 {
		return banner
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, banner)
}

// faceTime returns the HH:MM:SS string for the current mode.
func (m Model) faceTime() string {
	switch m.mode {
	case ModeTimer:
		return formatHMS(m.stopwatch.Elapsed())
	case ModeCountdown:
		return formatHMS(m.countdown.Timeout)
	default:
		return time.Now().Format("15:04:05")
	}
}
