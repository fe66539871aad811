package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

var habitIcons = []string{"💪", "📚", "🏃", "💧", "🧘", "✍️", "🌙", "🥗"}
var habitColors = []string{"#6C63FF", "#2DD4BF", "#EC4899", "#10B981", "#F59E0B", "#8B5CF6"}

type habitsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName      *string
	formIcon      *string
	formColor     *string
	formFrequency *string
}

func newHabitsModel(tr *tracker.Tracker) habitsModel {
	name, icon, color, freq := "", habitIcons[0], habitColors[0], string(tracker.FrequencyDaily)
	return habitsModel{
		tracker:       tr,
		formName:      &name,
		formIcon:      &icon,
		formColor:     &color,
		formFrequency: &freq,
	}
}

func (h *habitsModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

func (h habitsModel) update(msg tea.Msg) (habitsModel, tea.Cmd) {
	if h.formActive && h.form != nil {
		return h.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	habits := h.tracker.Habits()
	switch {
	case key.Matches(msgKey, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if h.cursor < len(habits)-1 {
			h.cursor++
		}
	case key.Matches(msgKey, keys.New):
		return h.showNewHabitForm()
	case key.Matches(msgKey, keys.Toggle):
		if h.cursor < len(habits) {
			if _, err := h.tracker.ToggleHabitDay(habits[h.cursor].ID, today()); err != nil {
				return h, errStatus(err)
			}
		}
	case key.Matches(msgKey, keys.Delete):
		if h.cursor < len(habits) {
			if err := h.tracker.DeleteHabit(habits[h.cursor].ID); err != nil {
				return h, errStatus(err)
			}
			if h.cursor > 0 {
				h.cursor--
			}
		}
	}
	return h, nil
}

func (h habitsModel) showNewHabitForm() (habitsModel, tea.Cmd) {
	*h.formName = ""
	*h.formIcon = habitIcons[0]
	*h.formColor = habitColors[0]
	*h.formFrequency = string(tracker.FrequencyDaily)

	iconOptions := make([]huh.Option[string], len(habitIcons))
	for i, ic := range habitIcons {
		iconOptions[i] = huh.NewOption(ic, ic)
	}
	colorOptions := make([]huh.Option[string], len(habitColors))
	for i, c := range habitColors {
		colorOptions[i] = huh.NewOption(fmt.Sprintf("● %s", c), c)
	}

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit Name").Value(h.formName),
			huh.NewSelect[string]().Title("Icon").Options(iconOptions...).Value(h.formIcon),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(h.formColor),
			huh.NewSelect[string]().Title("Frequency").
				Options(
					huh.NewOption("Daily", string(tracker.FrequencyDaily)),
					huh.NewOption("Weekly", string(tracker.FrequencyWeekly)),
				).
				Value(h.formFrequency),
		),
	).WithShowHelp(true).WithShowErrors(true)

	h.formActive = true
	return h, h.form.Init()
}

func (h habitsModel) updateForm(msg tea.Msg) (habitsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			h.formActive = false
			h.form = nil
			return h, nil
		}
	}

	form, cmd := h.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		h.form = f
	}

	if h.form.State == huh.StateCompleted {
		h.formActive = false
		_, err := h.tracker.AddHabit(tracker.HabitInput{
			Name:      *h.formName,
			Icon:      *h.formIcon,
			Color:     *h.formColor,
			Frequency: tracker.Frequency(*h.formFrequency),
		})
		if err != nil {
			return h, errStatus(err)
		}
	}

	return h, cmd
}

func (h habitsModel) view() string {
	if h.formActive && h.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New Habit"), "", h.form.View(),
		)
		return panelStyle.Width(h.width - 4).Render(content)
	}

	w := h.width - 4
	habits := h.tracker.Habits()
	title := titleStyle.Render("Habits")

	if len(habits) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No habits yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, habit := range habits {
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(habit.Color)).Render("●")
		check := mutedStyle.Render("☐")
		if habit.CheckedIn(today()) {
			check = successStyle.Render("☑")
		}

		row := fmt.Sprintf("%s%s %s %s %s  %s  %s",
			cursor, check, dot, habit.Icon,
			style.Render(fmt.Sprintf("%-20s", habit.Name)),
			warningStyle.Render(fmt.Sprintf("🔥 %d", habit.Streak)),
			mutedStyle.Render(fmt.Sprintf("best %d", habit.BestStreak)),
		)
		rows = append(rows, row)
		rows = append(rows, "      "+renderWeekStrip(&habits[i]))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space: check in today  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderWeekStrip shows the last seven days, oldest first.
func renderWeekStrip(habit *tracker.Habit) string {
	var cells []string
	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		label := day.Format("Mon")[:1]
		if habit.CheckedIn(day.Format("2006-01-02")) {
			cells = append(cells, successStyle.Render(label))
		} else {
			cells = append(cells, mutedStyle.Render(label))
		}
	}
	return strings.Join(cells, " ")
}
