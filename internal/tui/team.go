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

var projectColors = []string{"#6C63FF", "#2DD4BF", "#EC4899", "#10B981", "#F59E0B", "#8B5CF6"}

type teamModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor         int
	taskCursor     int
	viewingProject bool // true = viewing tasks/members of selected project

	formActive bool
	form       *huh.Form
	formType   string // "project", "invite", "task"

	// Form field pointers (survive value copies)
	formName        *string
	formDescription *string
	formColor       *string
	formTasks       *string
	formEmail       *string
	formAssignee    *string
	formDeadline    *string
}

func newTeamModel(tr *tracker.Tracker) teamModel {
	name, desc, color, tasks, email, assignee, deadline := "", "", projectColors[0], "", "", "", ""
	return teamModel{
		tracker:         tr,
		formName:        &name,
		formDescription: &desc,
		formColor:       &color,
		formTasks:       &tasks,
		formEmail:       &email,
		formAssignee:    &assignee,
		formDeadline:    &deadline,
	}
}

func (m *teamModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m teamModel) selectedProject() *tracker.TeamProject {
	projects := m.tracker.TeamProjects()
	if m.cursor >= len(projects) {
		return nil
	}
	return &projects[m.cursor]
}

func (m teamModel) update(msg tea.Msg) (teamModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.viewingProject {
		return m.updateProjectView(msgKey)
	}
	return m.updateProjectList(msgKey)
}

func (m teamModel) updateProjectList(msg tea.KeyMsg) (teamModel, tea.Cmd) {
	projects := m.tracker.TeamProjects()
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(projects) > 0 {
			m.viewingProject = true
			m.taskCursor = 0
		}
	case key.Matches(msg, keys.New):
		return m.showNewProjectForm()
	case key.Matches(msg, keys.Invite):
		if len(projects) > 0 {
			return m.showInviteForm()
		}
	}
	return m, nil
}

func (m teamModel) updateProjectView(msg tea.KeyMsg) (teamModel, tea.Cmd) {
	project := m.selectedProject()
	if project == nil {
		m.viewingProject = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		m.viewingProject = false
	case key.Matches(msg, keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.taskCursor < len(project.Tasks)-1 {
			m.taskCursor++
		}
	case key.Matches(msg, keys.New):
		return m.showNewTaskForm(project)
	case key.Matches(msg, keys.Invite):
		return m.showInviteForm()
	case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
		if m.taskCursor < len(project.Tasks) {
			task := project.Tasks[m.taskCursor]
			if _, err := m.tracker.CycleTaskStatus(project.ID, task.ID); err != nil {
				return m, errStatus(err)
			}
		}
	}
	return m, nil
}

func (m teamModel) showNewProjectForm() (teamModel, tea.Cmd) {
	*m.formName = ""
	*m.formDescription = ""
	*m.formColor = projectColors[0]
	*m.formTasks = ""
	m.formType = "project"

	colorOptions := make([]huh.Option[string], len(projectColors))
	for i, c := range projectColors {
		colorOptions[i] = huh.NewOption(fmt.Sprintf("● %s", c), c)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(m.formName),
			huh.NewInput().Title("Description").Value(m.formDescription),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(m.formColor),
			huh.NewInput().Title("Initial tasks (comma-separated)").Value(m.formTasks),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m teamModel) showInviteForm() (teamModel, tea.Cmd) {
	*m.formEmail = ""
	m.formType = "invite"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Member Email").Value(m.formEmail),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m teamModel) showNewTaskForm(project *tracker.TeamProject) (teamModel, tea.Cmd) {
	*m.formName = ""
	*m.formAssignee = ""
	*m.formDeadline = ""
	m.formType = "task"

	assigneeOptions := []huh.Option[string]{huh.NewOption("Unassigned", "")}
	for _, member := range project.Members {
		assigneeOptions = append(assigneeOptions, huh.NewOption(member.Name, member.Name))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task Title").Value(m.formName),
			huh.NewSelect[string]().Title("Assignee").Options(assigneeOptions...).Value(m.formAssignee),
			huh.NewInput().Title("Deadline (YYYY-MM-DD, optional)").Value(m.formDeadline),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m teamModel) updateForm(msg tea.Msg) (teamModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		var err error
		switch m.formType {
		case "project":
			_, err = m.tracker.AddProject(tracker.ProjectInput{
				Name:        *m.formName,
				Description: *m.formDescription,
				Color:       *m.formColor,
				Tasks:       strings.Split(*m.formTasks, ","),
			})
		case "invite":
			if project := m.selectedProject(); project != nil {
				_, err = m.tracker.InviteByEmail(project.ID, *m.formEmail)
			}
		case "task":
			if project := m.selectedProject(); project != nil {
				_, err = m.tracker.AddProjectTask(project.ID, *m.formName, *m.formAssignee, *m.formDeadline)
			}
		}
		if err != nil {
			return m, errStatus(err)
		}
	}

	return m, cmd
}

func (m teamModel) view() string {
	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Project")
		switch m.formType {
		case "invite":
			title = titleStyle.Render("Invite Member")
		case "task":
			title = titleStyle.Render("New Project Task")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(m.width - 4).Render(content)
	}

	if m.viewingProject {
		return m.renderProjectView()
	}
	return m.renderProjectList()
}

func (m teamModel) renderProjectList() string {
	w := m.width - 4
	projects := m.tracker.TeamProjects()
	title := titleStyle.Render("Team Projects")

	if len(projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No projects yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i := range projects {
		project := &projects[i]
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(project.Color)).Render("●")
		row := fmt.Sprintf("%s%s %s  %s",
			cursor, dot, style.Render(fmt.Sprintf("%-24s", project.Name)),
			mutedStyle.Render(fmt.Sprintf("%d members, %d tasks", len(project.Members), len(project.Tasks))),
		)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  i: invite  enter: open"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m teamModel) renderProjectView() string {
	w := m.width - 4
	project := m.selectedProject()
	if project == nil {
		return ""
	}

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(project.Color)).Render("●")
	title := titleStyle.Render(fmt.Sprintf("%s %s", dot, project.Name))

	var rows []string
	rows = append(rows, title)
	if project.Description != "" {
		rows = append(rows, mutedStyle.Render(project.Description))
	}

	var names []string
	for _, member := range project.Members {
		names = append(names, member.Name)
	}
	rows = append(rows, secondaryStyle.Render("Members: ")+strings.Join(names, ", "))
	rows = append(rows, "")

	if len(project.Tasks) == 0 {
		rows = append(rows, mutedStyle.Render("No tasks. Press n to add one."))
	}
	for i, task := range project.Tasks {
		cursor := "  "
		style := normalItemStyle
		if i == m.taskCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		assignee := ""
		if task.AssignedTo != "" {
			assignee = mutedStyle.Render("  @" + task.AssignedTo)
		}
		row := fmt.Sprintf("%s%s %s%s", cursor, statusBadge(task.Status), style.Render(task.Title), assignee)
		if task.Deadline != "" {
			row += mutedStyle.Render("  due " + task.Deadline)
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new task  i: invite  space: advance status  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func statusBadge(s tracker.TaskStatus) string {
	switch s {
	case tracker.StatusInProgress:
		return warningStyle.Render("[~]")
	case tracker.StatusCompleted:
		return successStyle.Render("[✓]")
	default:
		return mutedStyle.Render("[ ]")
	}
}
