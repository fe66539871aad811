package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

var modeLabels = map[tracker.TimerMode]string{
	tracker.ModePomodoro:   "POMODORO",
	tracker.ModeShortBreak: "SHORT BREAK",
	tracker.ModeLongBreak:  "LONG BREAK",
	tracker.ModeCustom:     "CUSTOM",
}

type focusModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form field pointer (survives value copies)
	formMinutes *string
}

func newFocusModel(tr *tracker.Tracker) focusModel {
	minutes := ""
	return focusModel{
		tracker:     tr,
		formMinutes: &minutes,
	}
}

func (f *focusModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

func (f focusModel) update(msg tea.Msg) (focusModel, tea.Cmd) {
	if f.formActive && f.form != nil {
		return f.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(msgKey, keys.Start):
		if f.tracker.Timer().Running {
			f.tracker.StopTimer()
		} else {
			f.tracker.StartTimer()
		}
		return f, nil
	case key.Matches(msgKey, keys.Stop):
		f.tracker.StopTimer()
		return f, nil
	case key.Matches(msgKey, keys.Reset):
		f.tracker.ResetTimer()
		return f, nil
	}

	switch msgKey.String() {
	case "p":
		return f, f.setMode(tracker.ModePomodoro)
	case "b":
		return f, f.setMode(tracker.ModeShortBreak)
	case "l":
		return f, f.setMode(tracker.ModeLongBreak)
	case "c":
		return f.showCustomForm()
	}
	return f, nil
}

func (f focusModel) setMode(mode tracker.TimerMode) tea.Cmd {
	if err := f.tracker.SetTimerMode(mode); err != nil {
		return errStatus(err)
	}
	return nil
}

func (f focusModel) showCustomForm() (focusModel, tea.Cmd) {
	*f.formMinutes = ""

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Custom session (%d-%d minutes)", tracker.MinCustomMinutes, tracker.MaxCustomMinutes)).
				Value(f.formMinutes).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a number")
					}
					if n < tracker.MinCustomMinutes || n > tracker.MaxCustomMinutes {
						return fmt.Errorf("must be between %d and %d", tracker.MinCustomMinutes, tracker.MaxCustomMinutes)
					}
					return nil
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)

	f.formActive = true
	return f, f.form.Init()
}

func (f focusModel) updateForm(msg tea.Msg) (focusModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			f.formActive = false
			f.form = nil
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if fm, ok := form.(*huh.Form); ok {
		f.form = fm
	}

	if f.form.State == huh.StateCompleted {
		f.formActive = false
		minutes, err := strconv.Atoi(strings.TrimSpace(*f.formMinutes))
		if err == nil {
			err = f.tracker.SetCustomTime(minutes)
		}
		if err != nil {
			return f, errStatus(err)
		}
	}

	return f, cmd
}

func (f focusModel) view() string {
	if f.formActive && f.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Custom Session"), "", f.form.View(),
		)
		return panelStyle.Width(f.width - 4).Render(content)
	}

	w := f.width - 4
	timer := f.tracker.Timer()

	title := titleStyle.Render("Focus Timer")

	var timeDisplay, phaseLabel, indicator string
	clock := formatClock(timer.TimeLeft)
	if timer.Running {
		timeDisplay = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(clock)
		phaseLabel = accentStyle.Bold(true).Render(modeLabels[timer.Mode])
		indicator = successStyle.Render("●  RUNNING")
	} else {
		timeDisplay = timerStyle.Width(w - 6).Render(clock)
		phaseLabel = mutedStyle.Render(modeLabels[timer.Mode])
		indicator = mutedStyle.Render("■  STOPPED")
	}

	progress := f.renderProgressBar(w - 12)

	tally := mutedStyle.Render(fmt.Sprintf("%d sessions completed  ·  %s focused",
		timer.CompletedPomodoros, formatHours(timer.TotalFocusTime)))

	modes := f.renderModeTabs()

	controls := mutedStyle.Render("s: start/stop  r: reset  p/b/l: mode  c: custom")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		modes,
		"",
		timeDisplay,
		phaseLabel,
		"",
		progress,
		indicator,
		"",
		tally,
		"",
		controls,
	)

	return panelStyle.Width(w).Render(content)
}

func (f focusModel) renderModeTabs() string {
	current := f.tracker.Timer().Mode
	order := []tracker.TimerMode{
		tracker.ModePomodoro, tracker.ModeShortBreak, tracker.ModeLongBreak, tracker.ModeCustom,
	}
	var tabs []string
	for _, mode := range order {
		if mode == current {
			tabs = append(tabs, activeTabStyle.Render(modeLabels[mode]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(modeLabels[mode]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (f focusModel) renderProgressBar(width int) string {
	if width < 10 {
		width = 10
	}
	filled := int(f.tracker.TimerProgress() * float64(width))
	if filled > width {
		filled = width
	}
	return secondaryStyle.Render(strings.Repeat("━", filled)) +
		mutedStyle.Render(strings.Repeat("━", width-filled))
}
