package store

import (
	"encoding/json"
	"fmt"

	"github.com/selimc/focusly/internal/tracker"
)

// persistedState is the durable subset of the document, in the storage
// layout. The timer contributes only its two durable counters; mode, time
// left and the running flag are session state and always restart at their
// defaults.
type persistedState struct {
	User          *tracker.UserProfile   `json:"user"`
	Tasks         []tracker.Task         `json:"tasks"`
	Habits        []tracker.Habit        `json:"habits"`
	Goals         []tracker.Goal         `json:"goals"`
	TeamProjects  []tracker.TeamProject  `json:"teamProjects"`
	Notifications []tracker.Notification `json:"notifications"`
	FocusTimer    persistedTimer         `json:"focusTimer"`
}

type persistedTimer struct {
	CompletedPomodoros int `json:"completedPomodoros"`
	TotalFocusTime     int `json:"totalFocusTime"`
}

// Load restores the document. It fails soft: a missing or malformed blob is
// logged and treated as absence of data, yielding a fresh empty document.
func (s *Store) Load() *tracker.Document {
	blob, err := s.readBlob()
	if err != nil {
		s.log.Error("load state", "error", err)
		return tracker.NewDocument()
	}
	if blob == "" {
		return tracker.NewDocument()
	}

	var state persistedState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		s.log.Error("parse state, starting empty", "error", err)
		return tracker.NewDocument()
	}

	doc := tracker.NewDocument()
	doc.User = state.User
	doc.Tasks = state.Tasks
	doc.Habits = state.Habits
	doc.Goals = state.Goals
	doc.TeamProjects = state.TeamProjects
	doc.Notifications = state.Notifications
	doc.Timer.CompletedPomodoros = state.FocusTimer.CompletedPomodoros
	doc.Timer.TotalFocusTime = state.FocusTimer.TotalFocusTime
	return doc
}

// Save serializes the durable subset of doc and writes it under the fixed
// key. The write is synchronous and best-effort; the caller decides whether
// a failure is worth surfacing.
func (s *Store) Save(doc *tracker.Document) error {
	state := persistedState{
		User:          doc.User,
		Tasks:         doc.Tasks,
		Habits:        doc.Habits,
		Goals:         doc.Goals,
		TeamProjects:  doc.TeamProjects,
		Notifications: doc.Notifications,
		FocusTimer: persistedTimer{
			CompletedPomodoros: doc.Timer.CompletedPomodoros,
			TotalFocusTime:     doc.Timer.TotalFocusTime,
		},
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.writeBlob(string(data))
}
