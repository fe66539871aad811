package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

type dashboardModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formPriority    *string
	formDate        *string
	formLocation    *string
}

func newDashboardModel(tr *tracker.Tracker) dashboardModel {
	title, desc, priority, date, location := "", "", string(tracker.PriorityMedium), "", ""
	return dashboardModel{
		tracker:         tr,
		formTitle:       &title,
		formDescription: &desc,
		formPriority:    &priority,
		formDate:        &date,
		formLocation:    &location,
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	tasks := d.tracker.Tasks()
	switch {
	case key.Matches(msgKey, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if d.cursor < len(tasks)-1 {
			d.cursor++
		}
	case key.Matches(msgKey, keys.New):
		return d.showNewTaskForm()
	case key.Matches(msgKey, keys.Toggle):
		if d.cursor < len(tasks) {
			if _, err := d.tracker.ToggleTask(tasks[d.cursor].ID); err != nil {
				return d, errStatus(err)
			}
		}
	case key.Matches(msgKey, keys.Delete):
		if d.cursor < len(tasks) {
			if err := d.tracker.DeleteTask(tasks[d.cursor].ID); err != nil {
				return d, errStatus(err)
			}
			if d.cursor > 0 {
				d.cursor--
			}
		}
	}
	return d, nil
}

func (d dashboardModel) showNewTaskForm() (dashboardModel, tea.Cmd) {
	*d.formTitle = ""
	*d.formDescription = ""
	*d.formPriority = string(tracker.PriorityMedium)
	*d.formDate = ""
	*d.formLocation = ""

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(d.formTitle),
			huh.NewInput().Title("Description").Value(d.formDescription),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", string(tracker.PriorityLow)),
					huh.NewOption("Medium", string(tracker.PriorityMedium)),
					huh.NewOption("High", string(tracker.PriorityHigh)),
				).
				Value(d.formPriority),
			huh.NewInput().Title("Due (YYYY-MM-DDTHH:MM, optional)").Value(d.formDate),
			huh.NewInput().Title("Location (optional)").Value(d.formLocation),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		_, err := d.tracker.AddTask(tracker.TaskInput{
			Title:       *d.formTitle,
			Description: *d.formDescription,
			Priority:    tracker.Priority(*d.formPriority),
			Date:        *d.formDate,
			Location:    *d.formLocation,
		})
		if err != nil {
			return d, errStatus(err)
		}
	}

	return d, cmd
}

func errStatus(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}

func (d dashboardModel) view() string {
	if d.formActive && d.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New Task"), "", d.form.View(),
		)
		return panelStyle.Width(d.width - 4).Render(content)
	}

	w := d.width - 4
	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderProfile(w),
		d.renderTasks(w),
	)
}

func (d dashboardModel) renderProfile(w int) string {
	user := d.tracker.User()
	if user == nil {
		return ""
	}

	name := titleStyle.Render(user.Name)
	level := highlightStyle.Render(fmt.Sprintf("Level %d", user.Level))
	streak := warningStyle.Render(fmt.Sprintf("🔥 %d day streak", user.Streak))

	// Progress toward the next level.
	into := user.EXP % tracker.ExpPerLevel
	barWidth := min(w-30, 30)
	if barWidth < 10 {
		barWidth = 10
	}
	filled := into * barWidth / tracker.ExpPerLevel
	bar := successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	expLine := fmt.Sprintf("%s %s", bar, mutedStyle.Render(fmt.Sprintf("%d/%d EXP", into, tracker.ExpPerLevel)))

	header := fmt.Sprintf("%s  %s  %s", name, level, streak)
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, expLine))
}

func (d dashboardModel) renderTasks(w int) string {
	tasks := d.tracker.Tasks()
	title := titleStyle.Render("Tasks")

	if len(tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, task := range tasks {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		check := "☐"
		if task.Completed {
			check = successStyle.Render("☑")
			style = style.Strikethrough(true)
		}

		row := fmt.Sprintf("%s%s %s %s", cursor, check, priorityDot(task.Priority), style.Render(task.Title))
		if task.HasLocation {
			row += mutedStyle.Render(" @" + task.Location)
		}
		if task.Date != "" {
			row += mutedStyle.Render("  " + task.Date)
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space: toggle  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func priorityDot(p tracker.Priority) string {
	switch p {
	case tracker.PriorityHigh:
		return errorStyle.Render("●")
	case tracker.PriorityLow:
		return successStyle.Render("●")
	default:
		return warningStyle.Render("●")
	}
}
