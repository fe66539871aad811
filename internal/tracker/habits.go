package tracker

import (
	"slices"
	"strings"
	"time"
)

// dateLayout is the calendar-date form used for habit check-ins.
const dateLayout = "2006-01-02"

type HabitInput struct {
	Name      string
	Icon      string
	Color     string
	Frequency Frequency
}

func (t *Tracker) AddHabit(in HabitInput) (*Habit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}
	switch in.Frequency {
	case FrequencyDaily, FrequencyWeekly:
	case "":
		in.Frequency = FrequencyDaily
	default:
		return nil, invalid("frequency", "must be Daily or Weekly")
	}

	habit := Habit{
		ID:             t.newID(),
		Name:           name,
		Icon:           in.Icon,
		Color:          in.Color,
		Frequency:      in.Frequency,
		CompletedDates: []string{},
		CreatedAt:      t.now(),
	}
	t.doc.Habits = append(t.doc.Habits, habit)
	t.persist()
	return &t.doc.Habits[len(t.doc.Habits)-1], nil
}

// ToggleHabitDay checks the habit in for date (YYYY-MM-DD) or removes an
// existing check-in. Checking in grants EXP and bumps the streak; removing
// decrements the streak (never below zero) without refunding EXP. The streak
// never exceeds the best streak after either direction settles.
func (t *Tracker) ToggleHabitDay(id, date string) (*Habit, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, invalid("date", "must be YYYY-MM-DD")
	}
	habit := t.findHabit(id)
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	if i := slices.Index(habit.CompletedDates, date); i >= 0 {
		habit.CompletedDates = append(habit.CompletedDates[:i], habit.CompletedDates[i+1:]...)
		if habit.Streak > 0 {
			habit.Streak--
		}
	} else {
		habit.CompletedDates = append(habit.CompletedDates, date)
		habit.Streak++
		if habit.Streak > habit.BestStreak {
			habit.BestStreak = habit.Streak
		}
		t.grantEXP(ExpHabitCheckIn)
	}

	t.persist()
	return habit, nil
}

// CheckedIn reports whether the habit has a check-in for date.
func (h *Habit) CheckedIn(date string) bool {
	return slices.Contains(h.CompletedDates, date)
}

func (t *Tracker) DeleteHabit(id string) error {
	for i := range t.doc.Habits {
		if t.doc.Habits[i].ID == id {
			t.doc.Habits = append(t.doc.Habits[:i], t.doc.Habits[i+1:]...)
			t.persist()
			return nil
		}
	}
	return ErrHabitNotFound
}

func (t *Tracker) findHabit(id string) *Habit {
	for i := range t.doc.Habits {
		if t.doc.Habits[i].ID == id {
			return &t.doc.Habits[i]
		}
	}
	return nil
}
