package tracker

import "time"

// Priority of a personal task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Frequency of a habit.
type Frequency string

const (
	FrequencyDaily  Frequency = "Daily"
	FrequencyWeekly Frequency = "Weekly"
)

// Status of a team project task. Cycled to-do -> in-progress -> completed -> to-do.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "to-do"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// NotificationType classifies entries in the notification log.
type NotificationType string

const (
	NotifyReminder    NotificationType = "reminder"
	NotifyLocation    NotificationType = "location"
	NotifyDeadline    NotificationType = "deadline"
	NotifyAchievement NotificationType = "achievement"
)

type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	EXP    int    `json:"exp"`
	Level  int    `json:"level"`
	Streak int    `json:"streak"`
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Date        string    `json:"date"` // scheduled date-time, as entered
	Completed   bool      `json:"completed"`
	HasLocation bool      `json:"hasLocation,omitempty"`
	Location    string    `json:"location,omitempty"`
	HasVoice    bool      `json:"hasVoice,omitempty"`
	HasImage    bool      `json:"hasImage,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	Frequency      Frequency `json:"frequency"`
	Streak         int       `json:"streak"`
	BestStreak     int       `json:"bestStreak"`
	CompletedDates []string  `json:"completedDates"` // YYYY-MM-DD, unique
	CreatedAt      time.Time `json:"createdAt"`
}

type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Goal struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Category     string      `json:"category"`
	Deadline     string      `json:"deadline"`
	Milestones   []Milestone `json:"milestones"`
	BonusAwarded bool        `json:"bonusAwarded"` // completion bonus granted once
	CreatedAt    time.Time   `json:"createdAt"`
}

// Progress reports completed/total milestones for the goal.
func (g *Goal) Progress() (completed, total int) {
	for _, m := range g.Milestones {
		if m.Completed {
			completed++
		}
	}
	return completed, len(g.Milestones)
}

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"` // unique within a project
}

type ProjectTask struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	AssignedTo string     `json:"assignedTo,omitempty"` // member name, by value
	Deadline   string     `json:"deadline"`
	Status     TaskStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type TeamProject struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color"`
	Members     []Member      `json:"members"`
	Tasks       []ProjectTask `json:"tasks"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	TaskID    string           `json:"taskId,omitempty"`
	Location  string           `json:"location,omitempty"`
	HasVoice  bool             `json:"hasVoice,omitempty"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TimerMode selects the focus timer's canonical duration.
type TimerMode string

const (
	ModePomodoro   TimerMode = "pomodoro"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
	ModeCustom     TimerMode = "custom"
)

// TimerState holds the focus timer fields. Only CompletedPomodoros and
// TotalFocusTime are durable; the rest resets to defaults on process start.
type TimerState struct {
	Mode               TimerMode
	TimeLeft           int // seconds, >= 0
	SessionDuration    int // seconds the current session started from
	Running            bool
	CompletedPomodoros int
	TotalFocusTime     int // accumulated seconds
}

// Document is the single application aggregate. It is exclusively owned by
// one Tracker and mutated synchronously; nothing holds live references across
// collections (cross-references are by string id or name).
type Document struct {
	User          *UserProfile
	Tasks         []Task
	Habits        []Habit
	Goals         []Goal
	TeamProjects  []TeamProject
	Notifications []Notification
	Timer         TimerState
}

// NewDocument returns an empty document with the timer at its defaults.
func NewDocument() *Document {
	return &Document{
		Timer: TimerState{
			Mode:            ModePomodoro,
			TimeLeft:        PomodoroDuration,
			SessionDuration: PomodoroDuration,
		},
	}
}
