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

var goalCategories = []string{"career", "health", "learning", "finance", "personal"}

type goalsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor          int
	milestoneCursor int
	viewingGoal     bool // true = viewing milestones of selected goal

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formCategory    *string
	formDeadline    *string
	formMilestones  *string
}

func newGoalsModel(tr *tracker.Tracker) goalsModel {
	title, desc, cat, deadline, milestones := "", "", goalCategories[0], "", ""
	return goalsModel{
		tracker:         tr,
		formTitle:       &title,
		formDescription: &desc,
		formCategory:    &cat,
		formDeadline:    &deadline,
		formMilestones:  &milestones,
	}
}

func (g *goalsModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

func (g goalsModel) update(msg tea.Msg) (goalsModel, tea.Cmd) {
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	if g.viewingGoal {
		return g.updateMilestoneView(msgKey)
	}
	return g.updateGoalList(msgKey)
}

func (g goalsModel) updateGoalList(msg tea.KeyMsg) (goalsModel, tea.Cmd) {
	goals := g.tracker.Goals()
	switch {
	case key.Matches(msg, keys.Up):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(msg, keys.Down):
		if g.cursor < len(goals)-1 {
			g.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(goals) > 0 {
			g.viewingGoal = true
			g.milestoneCursor = 0
		}
	case key.Matches(msg, keys.New):
		return g.showNewGoalForm()
	case key.Matches(msg, keys.Delete):
		if g.cursor < len(goals) {
			if err := g.tracker.DeleteGoal(goals[g.cursor].ID); err != nil {
				return g, errStatus(err)
			}
			if g.cursor > 0 {
				g.cursor--
			}
		}
	}
	return g, nil
}

func (g goalsModel) updateMilestoneView(msg tea.KeyMsg) (goalsModel, tea.Cmd) {
	goals := g.tracker.Goals()
	if g.cursor >= len(goals) {
		g.viewingGoal = false
		return g, nil
	}
	goal := goals[g.cursor]

	switch {
	case key.Matches(msg, keys.Back):
		g.viewingGoal = false
	case key.Matches(msg, keys.Up):
		if g.milestoneCursor > 0 {
			g.milestoneCursor--
		}
	case key.Matches(msg, keys.Down):
		if g.milestoneCursor < len(goal.Milestones)-1 {
			g.milestoneCursor++
		}
	case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
		if g.milestoneCursor < len(goal.Milestones) {
			ms := goal.Milestones[g.milestoneCursor]
			if _, err := g.tracker.ToggleMilestone(goal.ID, ms.ID); err != nil {
				return g, errStatus(err)
			}
		}
	}
	return g, nil
}

func (g goalsModel) showNewGoalForm() (goalsModel, tea.Cmd) {
	*g.formTitle = ""
	*g.formDescription = ""
	*g.formCategory = goalCategories[0]
	*g.formDeadline = ""
	*g.formMilestones = ""

	catOptions := make([]huh.Option[string], len(goalCategories))
	for i, c := range goalCategories {
		catOptions[i] = huh.NewOption(c, c)
	}

	g.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal Title").Value(g.formTitle),
			huh.NewInput().Title("Description").Value(g.formDescription),
			huh.NewSelect[string]().Title("Category").Options(catOptions...).Value(g.formCategory),
			huh.NewInput().Title("Deadline (YYYY-MM-DD, optional)").Value(g.formDeadline),
			huh.NewInput().Title("Milestones (comma-separated)").Value(g.formMilestones),
		),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func (g goalsModel) updateForm(msg tea.Msg) (goalsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		_, err := g.tracker.AddGoal(tracker.GoalInput{
			Title:       *g.formTitle,
			Description: *g.formDescription,
			Category:    *g.formCategory,
			Deadline:    *g.formDeadline,
			Milestones:  strings.Split(*g.formMilestones, ","),
		})
		if err != nil {
			return g, errStatus(err)
		}
	}

	return g, cmd
}

func (g goalsModel) view() string {
	if g.formActive && g.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New Goal"), "", g.form.View(),
		)
		return panelStyle.Width(g.width - 4).Render(content)
	}

	if g.viewingGoal {
		return g.renderMilestoneView()
	}
	return g.renderGoalList()
}

func (g goalsModel) renderGoalList() string {
	w := g.width - 4
	goals := g.tracker.Goals()
	title := titleStyle.Render("Goals")

	if len(goals) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No goals yet. Press n to set one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i := range goals {
		goal := &goals[i]
		cursor := "  "
		style := normalItemStyle
		if i == g.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		done, total := goal.Progress()
		progress := mutedStyle.Render(fmt.Sprintf("%d/%d", done, total))
		if total > 0 && done == total {
			progress = successStyle.Render(fmt.Sprintf("%d/%d ✓", done, total))
		}

		row := fmt.Sprintf("%s%s  %s  %s", cursor, style.Render(goal.Title), progress, secondaryStyle.Render(goal.Category))
		if goal.Deadline != "" {
			row += mutedStyle.Render("  due " + goal.Deadline)
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: milestones  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (g goalsModel) renderMilestoneView() string {
	w := g.width - 4
	goal := g.tracker.Goals()[g.cursor]
	title := titleStyle.Render(goal.Title)

	var rows []string
	rows = append(rows, title)
	if goal.Description != "" {
		rows = append(rows, mutedStyle.Render(goal.Description))
	}
	rows = append(rows, "")

	if len(goal.Milestones) == 0 {
		rows = append(rows, mutedStyle.Render("No milestones."))
	}
	for i, ms := range goal.Milestones {
		cursor := "  "
		style := normalItemStyle
		if i == g.milestoneCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		check := mutedStyle.Render("☐")
		if ms.Completed {
			check = successStyle.Render("☑")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, check, style.Render(ms.Title)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  space: toggle  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
