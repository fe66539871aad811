package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/export"
	"github.com/selimc/focusly/internal/store"
	"github.com/selimc/focusly/internal/tracker"
)

// toastQueue buffers notifications emitted by the core during a synchronous
// operation until the update loop picks them up for the status bar. All
// pushes happen on the Bubble Tea loop, so no locking is needed.
type toastQueue struct {
	items []tracker.Notification
}

func (q *toastQueue) push(n tracker.Notification) {
	q.items = append(q.items, n)
}

func (q *toastQueue) drain() []tracker.Notification {
	out := q.items
	q.items = nil
	return out
}

// App is the root Bubble Tea model.
type App struct {
	tracker *tracker.Tracker
	toasts  *toastQueue
	log     *slog.Logger

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	auth      authModel
	dashboard dashboardModel
	habits    habitsModel
	goals     goalsModel
	team      teamModel
	focus     focusModel
	stats     statsModel
	inbox     inboxModel

	help      help.Model
	status    string
	statusErr bool
}

// NewApp restores the document from s and wires the tracker into the TUI.
func NewApp(s *store.Store, logger *slog.Logger) App {
	toasts := &toastQueue{}
	tr := tracker.New(s.Load(), s, tracker.SinkFunc(toasts.push), logger)
	return newApp(tr, toasts, logger)
}

func newApp(tr *tracker.Tracker, toasts *toastQueue, logger *slog.Logger) App {
	h := help.New()
	h.ShowAll = false

	return App{
		tracker:   tr,
		toasts:    toasts,
		log:       logger,
		auth:      newAuthModel(tr),
		dashboard: newDashboardModel(tr),
		habits:    newHabitsModel(tr),
		goals:     newGoalsModel(tr),
		team:      newTeamModel(tr),
		focus:     newFocusModel(tr),
		stats:     newStatsModel(tr),
		inbox:     newInboxModel(tr),
		help:      h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.auth.setSize(a.width, contentHeight)
		a.dashboard.setSize(a.width, contentHeight)
		a.habits.setSize(a.width, contentHeight)
		a.goals.setSize(a.width, contentHeight)
		a.team.setSize(a.width, contentHeight)
		a.focus.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.inbox.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		// The once-per-second tick drives the focus countdown. The core
		// ignores ticks while stopped.
		a.tracker.TickTimer()
		return a.collectToasts(), tickCmd()

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a.updateActiveView(msg)
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Until someone is signed in, the auth view owns all input.
	if a.tracker.User() == nil {
		var cmd tea.Cmd
		a.auth, cmd = a.auth.update(msg)
		return a.collectToasts(), cmd
	}

	if a.exportPicking {
		return a.updateExportPicker(msg)
	}

	// If a child view is capturing input (e.g. form), delegate first.
	if a.isFormActive() {
		return a.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, keys.Export):
		a.exportPicking = true
		a.exportCursor = 0
		return a, nil
	case key.Matches(msg, keys.Logout):
		a.tracker.Logout()
		a.auth = a.auth.reset()
		a.status = "Logged out"
		a.statusErr = false
		return a, nil
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	case key.Matches(msg, keys.Tab1):
		a.activeView = viewDashboard
		return a, nil
	case key.Matches(msg, keys.Tab2):
		a.activeView = viewHabits
		return a, nil
	case key.Matches(msg, keys.Tab3):
		a.activeView = viewGoals
		return a, nil
	case key.Matches(msg, keys.Tab4):
		a.activeView = viewTeam
		return a, nil
	case key.Matches(msg, keys.Tab5):
		a.activeView = viewFocus
		return a, nil
	case key.Matches(msg, keys.Tab6):
		a.activeView = viewStats
		return a, nil
	case key.Matches(msg, keys.Tab7):
		a.activeView = viewNotifications
		return a, nil
	case key.Matches(msg, keys.Tab):
		a.activeView = (a.activeView + 1) % viewState(len(viewNames))
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewHabits:
		a.habits, cmd = a.habits.update(msg)
	case viewGoals:
		a.goals, cmd = a.goals.update(msg)
	case viewTeam:
		a.team, cmd = a.team.update(msg)
	case viewFocus:
		a.focus, cmd = a.focus.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewNotifications:
		a.inbox, cmd = a.inbox.update(msg)
	}
	return a.collectToasts(), cmd
}

// collectToasts surfaces notifications the core emitted during the last
// operation as status-bar toasts.
func (a App) collectToasts() App {
	for _, n := range a.toasts.drain() {
		a.status = n.Title
		a.statusErr = false
	}
	return a
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.formActive
	case viewHabits:
		return a.habits.formActive
	case viewGoals:
		return a.goals.formActive
	case viewTeam:
		return a.team.formActive
	case viewFocus:
		return a.focus.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.tracker.User() == nil {
		return a.auth.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewHabits:
		content = a.habits.view()
	case viewGoals:
		content = a.goals.view()
	case viewTeam:
		content = a.team.view()
	case viewFocus:
		content = a.focus.view()
	case viewStats:
		content = a.stats.view()
	case viewNotifications:
		content = a.inbox.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		label := name
		if viewState(i) == viewNotifications {
			if unread := a.tracker.UnreadCount(); unread > 0 {
				label = fmt.Sprintf("%s (%d)", name, unread)
			}
		}
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("focusly")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		statusStyle := mutedStyle
		if a.statusErr {
			statusStyle = errorStyle
		}
		status = statusStyle.Render(" " + a.status)
	}

	// Countdown indicator in the footer while the timer runs.
	timerInfo := ""
	if timer := a.tracker.Timer(); timer.Running {
		timerInfo = successStyle.Render(" ● " + formatClock(timer.TimeLeft))
	}

	// Profile summary on the right.
	profile := ""
	if user := a.tracker.User(); user != nil {
		profile = highlightStyle.Render(fmt.Sprintf(" %s · Lv %d · %d EXP", user.Name, user.Level, user.EXP))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status + profile

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	tasks := a.tracker.Tasks()
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("focusly-export-%s.csv", dateStr))
			if err := export.ToCSV(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("focusly-export-%s.json", dateStr))
			if err := export.ToJSON(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
