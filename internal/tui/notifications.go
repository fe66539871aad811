package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

type inboxModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor int
}

func newInboxModel(tr *tracker.Tracker) inboxModel {
	return inboxModel{tracker: tr}
}

func (m *inboxModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m inboxModel) update(msg tea.Msg) (inboxModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	notifications := m.tracker.Notifications()
	switch {
	case key.Matches(msgKey, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if m.cursor < len(notifications)-1 {
			m.cursor++
		}
	case key.Matches(msgKey, keys.Enter), key.Matches(msgKey, keys.Toggle):
		if m.cursor < len(notifications) {
			if err := m.tracker.MarkNotificationRead(notifications[m.cursor].ID); err != nil {
				return m, errStatus(err)
			}
		}
	case key.Matches(msgKey, keys.Delete):
		if m.cursor < len(notifications) {
			if err := m.tracker.DeleteNotification(notifications[m.cursor].ID); err != nil {
				return m, errStatus(err)
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	default:
		if msgKey.String() == "a" {
			m.tracker.MarkAllNotificationsRead()
		}
	}
	return m, nil
}

func (m inboxModel) view() string {
	w := m.width - 4
	notifications := m.tracker.Notifications()

	unread := m.tracker.UnreadCount()
	title := titleStyle.Render("Inbox")
	if unread > 0 {
		title += accentStyle.Render(fmt.Sprintf("  %d unread", unread))
	}

	if len(notifications) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nothing here yet."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, n := range notifications {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		marker := mutedStyle.Render("·")
		titleText := style.Render(n.Title)
		if !n.Read {
			marker = accentStyle.Render("●")
			titleText = style.Bold(true).Render(n.Title)
		}

		when := mutedStyle.Render(n.CreatedAt.Local().Format("Jan 2 15:04"))
		rows = append(rows, fmt.Sprintf("%s%s %s %s %s", cursor, marker, typeBadge(n.Type), titleText, when))
		rows = append(rows, "      "+mutedStyle.Render(n.Message))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: mark read  a: mark all read  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func typeBadge(t tracker.NotificationType) string {
	switch t {
	case tracker.NotifyAchievement:
		return warningStyle.Render("🏆")
	case tracker.NotifyLocation:
		return secondaryStyle.Render("📍")
	case tracker.NotifyDeadline:
		return errorStyle.Render("⏰")
	default:
		return mutedStyle.Render("•")
	}
}
