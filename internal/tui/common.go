package tui

import (
	"fmt"
	"time"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewHabits
	viewGoals
	viewTeam
	viewFocus
	viewStats
	viewNotifications
)

var viewNames = []string{"Dashboard", "Habits", "Goals", "Team", "Focus", "Stats", "Inbox"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a second count as MM:SS for the focus timer.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatHours(secs int) string {
	h := float64(secs) / 3600
	return fmt.Sprintf("%.1fh", h)
}

func today() string {
	return time.Now().Format("2006-01-02")
}
