package tracker

import (
	"fmt"
	"strings"
)

// TaskInput carries the already-validated primitive values the rendering
// layer collected for a new task.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Date        string
	Location    string
	HasVoice    bool
	ImageURL    string
}

// AddTask appends a task. A task with a location also drops a location
// reminder into the notification log.
func (t *Tracker) AddTask(in TaskInput) (*Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title", "must not be empty")
	}
	switch in.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	case "":
		in.Priority = PriorityMedium
	default:
		return nil, invalid("priority", "must be low, medium or high")
	}

	task := Task{
		ID:          t.newID(),
		Title:       title,
		Description: in.Description,
		Priority:    in.Priority,
		Date:        in.Date,
		HasLocation: in.Location != "",
		Location:    in.Location,
		HasVoice:    in.HasVoice,
		HasImage:    in.ImageURL != "",
		ImageURL:    in.ImageURL,
		CreatedAt:   t.now(),
	}
	t.doc.Tasks = append(t.doc.Tasks, task)

	if task.HasLocation {
		t.notify(Notification{
			Type:     NotifyLocation,
			Title:    "Location Reminder",
			Message:  fmt.Sprintf("Task: %s - %s", task.Title, task.Location),
			TaskID:   task.ID,
			Location: task.Location,
		})
	}

	t.persist()
	return &t.doc.Tasks[len(t.doc.Tasks)-1], nil
}

// ToggleTask flips the completed flag. Completing grants EXP and logs an
// achievement; uncompleting grants nothing back.
func (t *Tracker) ToggleTask(id string) (*Task, error) {
	task := t.findTask(id)
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Completed = !task.Completed
	if task.Completed {
		t.grantEXP(ExpTaskCompleted)
		t.notify(Notification{
			Type:    NotifyAchievement,
			Title:   "Task Completed!",
			Message: "You completed: " + task.Title,
			TaskID:  task.ID,
		})
	}

	t.persist()
	return task, nil
}

// DeleteTask removes the task. Notifications referencing it keep their id;
// references are by value and nothing cascades.
func (t *Tracker) DeleteTask(id string) error {
	for i := range t.doc.Tasks {
		if t.doc.Tasks[i].ID == id {
			t.doc.Tasks = append(t.doc.Tasks[:i], t.doc.Tasks[i+1:]...)
			t.persist()
			return nil
		}
	}
	return ErrTaskNotFound
}

func (t *Tracker) findTask(id string) *Task {
	for i := range t.doc.Tasks {
		if t.doc.Tasks[i].ID == id {
			return &t.doc.Tasks[i]
		}
	}
	return nil
}
