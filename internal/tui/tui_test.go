package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/selimc/focusly/internal/store"
	"github.com/selimc/focusly/internal/tracker"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) App {
	t.Helper()
	app := NewApp(newTestStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	// Size through the real message path so the child models are sized too.
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(App)
}

func loggedInApp(t *testing.T) App {
	t.Helper()
	app := newTestApp(t)
	if _, err := app.tracker.Signup("Ada", "ada@example.com"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	return app
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// Helper functions
// ============================================================

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{60, "01:00"},
		{1500, "25:00"},
		{330, "05:30"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		got := formatClock(tt.secs)
		if got != tt.want {
			t.Errorf("formatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0.0h"},
		{3600, "1.0h"},
		{5400, "1.5h"},
		{7200, "2.0h"},
	}
	for _, tt := range tests {
		got := formatHours(tt.secs)
		if got != tt.want {
			t.Errorf("formatHours(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestToday(t *testing.T) {
	if _, err := time.Parse("2006-01-02", today()); err != nil {
		t.Fatalf("today() not a calendar date: %v", err)
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 7 {
		t.Fatalf("expected 7 view names, got %d", len(viewNames))
	}
	expected := []string{"Dashboard", "Habits", "Goals", "Team", "Focus", "Stats", "Inbox"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewDashboard != 0 || viewHabits != 1 || viewGoals != 2 || viewTeam != 3 ||
		viewFocus != 4 || viewStats != 5 || viewNotifications != 6 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Toast queue
// ============================================================

func TestToastQueueDrain(t *testing.T) {
	q := &toastQueue{}
	q.push(tracker.Notification{Title: "one"})
	q.push(tracker.Notification{Title: "two"})

	got := q.drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(got))
	}
	if len(q.drain()) != 0 {
		t.Fatal("drain should empty the queue")
	}
}

func TestToastsBecomeStatus(t *testing.T) {
	app := loggedInApp(t)
	app.toasts.push(tracker.Notification{Title: "Task Completed!"})

	app = app.collectToasts()
	if app.status != "Task Completed!" {
		t.Fatalf("status = %q", app.status)
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestWindowSizeReachesChildren(t *testing.T) {
	app := NewApp(newTestStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app = model.(App)

	if app.width != 100 || app.height != 30 {
		t.Fatalf("app not sized: %dx%d", app.width, app.height)
	}
	if app.stats.width != 100 || app.dashboard.width != 100 || app.focus.width != 100 {
		t.Fatal("child models should be sized with the app")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := NewApp(newTestStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if app.View() != "Loading..." {
		t.Fatal("unsized app should render the loading screen")
	}
}

func TestAppShowsAuthWithoutUser(t *testing.T) {
	app := newTestApp(t)

	out := app.View()
	if !strings.Contains(out, "test@focusly.com") {
		t.Fatal("signed-out app should show the auth view with the demo hint")
	}
}

func TestAppViewStates(t *testing.T) {
	app := loggedInApp(t)

	for v := viewDashboard; v <= viewNotifications; v++ {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := loggedInApp(t)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppFooterShowsProfile(t *testing.T) {
	app := loggedInApp(t)

	footer := app.renderFooter()
	if !strings.Contains(footer, "Ada") {
		t.Fatal("footer should show the profile name")
	}
	if !strings.Contains(footer, "Lv 1") {
		t.Fatal("footer should show the level")
	}
}

func TestAppFooterShowsRunningTimer(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.StartTimer()

	footer := app.renderFooter()
	if !strings.Contains(footer, "25:00") {
		t.Fatal("footer should show the countdown while running")
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := loggedInApp(t)

	model, _ := app.updateKeys(keyRune('5'))
	app = model.(App)
	if app.activeView != viewFocus {
		t.Fatalf("5 should select the focus view, got %d", app.activeView)
	}

	model, _ = app.updateKeys(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.activeView != viewStats {
		t.Fatalf("tab should advance to the next view, got %d", app.activeView)
	}
}

func TestAppTabWraps(t *testing.T) {
	app := loggedInApp(t)
	app.activeView = viewNotifications

	model, _ := app.updateKeys(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.activeView != viewDashboard {
		t.Fatal("tab should wrap back to the dashboard")
	}
}

func TestAppLogout(t *testing.T) {
	app := loggedInApp(t)

	model, _ := app.updateKeys(keyRune('L'))
	app = model.(App)
	if app.tracker.User() != nil {
		t.Fatal("L should log out")
	}
	if !strings.Contains(app.View(), "test@focusly.com") {
		t.Fatal("logged-out app should fall back to the auth view")
	}
}

func TestAppTickDrivesTimer(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.StartTimer()

	model, _ := app.Update(tickMsg(time.Now()))
	app = model.(App)
	if got := app.tracker.Timer().TimeLeft; got != tracker.PomodoroDuration-1 {
		t.Fatalf("tick should advance the countdown, timeLeft = %d", got)
	}
}

func TestAppTickIgnoredWhileStopped(t *testing.T) {
	app := loggedInApp(t)

	model, _ := app.Update(tickMsg(time.Now()))
	app = model.(App)
	if got := app.tracker.Timer().TimeLeft; got != tracker.PomodoroDuration {
		t.Fatalf("stopped timer should ignore ticks, timeLeft = %d", got)
	}
}

func TestAppExportPicker(t *testing.T) {
	app := loggedInApp(t)

	model, _ := app.updateKeys(keyRune('e'))
	app = model.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}

	model, _ = app.updateExportPicker(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

// ============================================================
// Auth model
// ============================================================

func TestAuthSubmitResetsForm(t *testing.T) {
	app := newTestApp(t)

	a := app.auth
	*a.formEmail = "ada@example.com"
	*a.formPassword = "pw"
	a.form.State = huh.StateCompleted

	a, _ = a.update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.tracker.User() == nil {
		t.Fatal("completed form should sign the user in")
	}
	if a.form.State == huh.StateCompleted {
		t.Fatal("form should be rebuilt after a successful submit")
	}
	if *a.formEmail != "" || *a.formPassword != "" {
		t.Fatal("field values should be cleared after a successful submit")
	}
}

func TestLogoutSurvivesStrayKeys(t *testing.T) {
	app := newTestApp(t)
	*app.auth.formEmail = "ada@example.com"
	app.auth.form.State = huh.StateCompleted

	model, _ := app.updateKeys(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if app.tracker.User() == nil {
		t.Fatal("submit should sign the user in")
	}

	model, _ = app.updateKeys(keyRune('L'))
	app = model.(App)
	if app.tracker.User() != nil {
		t.Fatal("L should log out")
	}

	// The auth view owns input again; a stray keypress must not replay the
	// previous submit and restore the old session.
	model, _ = app.updateKeys(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(App)
	if app.tracker.User() != nil {
		t.Fatal("stray keypress after logout signed the user back in")
	}
}

// ============================================================
// Status bar
// ============================================================

func TestErrorStatusFlag(t *testing.T) {
	app := loggedInApp(t)

	model, _ := app.Update(statusMsg{text: "boom", isError: true})
	app = model.(App)
	if !app.statusErr {
		t.Fatal("error status should set the error flag")
	}
	if !strings.Contains(app.renderFooter(), "boom") {
		t.Fatal("footer should show the status text")
	}

	model, _ = app.Update(statusMsg{text: "saved", isError: false})
	app = model.(App)
	if app.statusErr {
		t.Fatal("info status should clear the error flag")
	}
}

func TestToastClearsErrorFlag(t *testing.T) {
	app := loggedInApp(t)
	app.statusErr = true
	app.toasts.push(tracker.Notification{Title: "Task Completed!"})

	app = app.collectToasts()
	if app.statusErr {
		t.Fatal("toasts are not errors; the flag should clear")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardRendersTasks(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddTask(tracker.TaskInput{Title: "Write report"})
	app.tracker.AddTask(tracker.TaskInput{Title: "Buy milk"})

	out := app.dashboard.view()
	if !strings.Contains(out, "Write report") || !strings.Contains(out, "Buy milk") {
		t.Fatal("dashboard should list tasks")
	}
}

func TestDashboardCursorMoves(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddTask(tracker.TaskInput{Title: "a"})
	app.tracker.AddTask(tracker.TaskInput{Title: "b"})

	d := app.dashboard
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyDown})
	if d.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", d.cursor)
	}
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyDown})
	if d.cursor != 1 {
		t.Fatal("cursor should stop at the last task")
	}
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyUp})
	if d.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", d.cursor)
	}
}

func TestDashboardToggleAndDelete(t *testing.T) {
	app := loggedInApp(t)
	task, _ := app.tracker.AddTask(tracker.TaskInput{Title: "a"})
	id := task.ID

	d := app.dashboard
	d, _ = d.update(keyRune(' '))
	if !app.tracker.Tasks()[0].Completed {
		t.Fatal("space should toggle the task")
	}

	d, _ = d.update(keyRune('d'))
	if len(app.tracker.Tasks()) != 0 {
		t.Fatalf("d should delete task %s", id)
	}
}

func TestDashboardProfilePanel(t *testing.T) {
	app := loggedInApp(t)

	out := app.dashboard.renderProfile(100)
	if !strings.Contains(out, "Ada") || !strings.Contains(out, "Level 1") {
		t.Fatal("profile panel should show name and level")
	}
}

// ============================================================
// Habits model
// ============================================================

func TestHabitsCheckInToday(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddHabit(tracker.HabitInput{Name: "Reading"})

	h := app.habits
	h, _ = h.update(keyRune(' '))
	if !app.tracker.Habits()[0].CheckedIn(today()) {
		t.Fatal("space should check in today")
	}

	out := h.view()
	if !strings.Contains(out, "Reading") {
		t.Fatal("habits view should list the habit")
	}
}

// ============================================================
// Goals model
// ============================================================

func TestGoalsMilestoneToggle(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddGoal(tracker.GoalInput{
		Title:      "Learn Go",
		Milestones: []string{"tour", "book"},
	})

	g := app.goals
	g, _ = g.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !g.viewingGoal {
		t.Fatal("enter should open the milestone view")
	}

	g, _ = g.update(keyRune(' '))
	if !app.tracker.Goals()[0].Milestones[0].Completed {
		t.Fatal("space should toggle the selected milestone")
	}

	g, _ = g.update(tea.KeyMsg{Type: tea.KeyEsc})
	if g.viewingGoal {
		t.Fatal("esc should return to the goal list")
	}
}

// ============================================================
// Team model
// ============================================================

func TestTeamProjectView(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddProject(tracker.ProjectInput{
		Name:  "Launch",
		Tasks: []string{"Design"},
	})

	m := app.team
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.viewingProject {
		t.Fatal("enter should open the project")
	}

	m, _ = m.update(keyRune(' '))
	if app.tracker.TeamProjects()[0].Tasks[0].Status != tracker.StatusInProgress {
		t.Fatal("space should advance the task status")
	}

	out := m.view()
	if !strings.Contains(out, "Launch") || !strings.Contains(out, "Design") {
		t.Fatal("project view should show name and tasks")
	}
	if !strings.Contains(out, "Ada") {
		t.Fatal("project view should list the creator as member")
	}
}

// ============================================================
// Focus model
// ============================================================

func TestFocusStartStopReset(t *testing.T) {
	app := loggedInApp(t)

	f := app.focus
	f, _ = f.update(keyRune('s'))
	if !app.tracker.Timer().Running {
		t.Fatal("s should start the timer")
	}

	f, _ = f.update(keyRune('s'))
	if app.tracker.Timer().Running {
		t.Fatal("s should stop a running timer")
	}

	f, _ = f.update(keyRune('b'))
	if app.tracker.Timer().Mode != tracker.ModeShortBreak {
		t.Fatal("b should switch to the short break")
	}

	f, _ = f.update(keyRune('r'))
	if app.tracker.Timer().TimeLeft != tracker.ShortBreakDuration {
		t.Fatal("r should reload the canonical duration")
	}
}

func TestFocusViewShowsClock(t *testing.T) {
	app := loggedInApp(t)

	out := app.focus.view()
	if !strings.Contains(out, "25:00") {
		t.Fatal("focus view should show the initial countdown")
	}
	if !strings.Contains(out, "POMODORO") {
		t.Fatal("focus view should show the mode")
	}
}

// ============================================================
// Stats model
// ============================================================

func TestStatsView(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddHabit(tracker.HabitInput{Name: "Reading"})
	app.tracker.ToggleHabitDay(app.tracker.Habits()[0].ID, today())

	out := app.stats.view()
	if !strings.Contains(out, "focus sessions") {
		t.Fatal("stats view should show the session tile")
	}
	if !strings.Contains(out, "tasks done") {
		t.Fatal("stats view should show the task tile")
	}
}

// ============================================================
// Inbox model
// ============================================================

func TestInboxMarkReadAndDelete(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddTask(tracker.TaskInput{Title: "a", Location: "Office"})
	if app.tracker.UnreadCount() != 1 {
		t.Fatal("location task should drop a notification")
	}

	m := app.inbox
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.tracker.UnreadCount() != 0 {
		t.Fatal("enter should mark the notification read")
	}

	m, _ = m.update(keyRune('d'))
	if len(app.tracker.Notifications()) != 0 {
		t.Fatal("d should delete the notification")
	}
}

func TestInboxMarkAllRead(t *testing.T) {
	app := loggedInApp(t)
	app.tracker.AddTask(tracker.TaskInput{Title: "a", Location: "x"})
	app.tracker.AddTask(tracker.TaskInput{Title: "b", Location: "y"})

	m := app.inbox
	m, _ = m.update(keyRune('a'))
	if app.tracker.UnreadCount() != 0 {
		t.Fatal("a should mark everything read")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}
