package tracker

import "strings"

type GoalInput struct {
	Title       string
	Description string
	Category    string
	Deadline    string
	Milestones  []string // titles; empties are dropped
}

func (t *Tracker) AddGoal(in GoalInput) (*Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title", "must not be empty")
	}

	var milestones []Milestone
	for _, mt := range in.Milestones {
		mt = strings.TrimSpace(mt)
		if mt == "" {
			continue
		}
		milestones = append(milestones, Milestone{ID: t.newID(), Title: mt})
	}

	goal := Goal{
		ID:          t.newID(),
		Title:       title,
		Description: in.Description,
		Category:    in.Category,
		Deadline:    in.Deadline,
		Milestones:  milestones,
		CreatedAt:   t.now(),
	}
	t.doc.Goals = append(t.doc.Goals, goal)
	t.persist()
	return &t.doc.Goals[len(t.doc.Goals)-1], nil
}

// ToggleMilestone flips one milestone. Completing it grants EXP; completing
// the last open milestone additionally grants the goal bonus, exactly once
// per goal no matter how often the all-complete condition is re-evaluated.
func (t *Tracker) ToggleMilestone(goalID, milestoneID string) (*Goal, error) {
	goal := t.findGoal(goalID)
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	var milestone *Milestone
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == milestoneID {
			milestone = &goal.Milestones[i]
			break
		}
	}
	if milestone == nil {
		return nil, ErrMilestoneNotFound
	}

	milestone.Completed = !milestone.Completed
	if milestone.Completed {
		t.grantEXP(ExpMilestoneCompleted)

		if done, total := goal.Progress(); total > 0 && done == total && !goal.BonusAwarded {
			goal.BonusAwarded = true
			t.grantEXP(ExpGoalBonus)
			t.notify(Notification{
				Type:    NotifyAchievement,
				Title:   "Goal Achieved!",
				Message: "Congratulations! You completed: " + goal.Title,
			})
		}
	}

	t.persist()
	return goal, nil
}

func (t *Tracker) DeleteGoal(id string) error {
	for i := range t.doc.Goals {
		if t.doc.Goals[i].ID == id {
			t.doc.Goals = append(t.doc.Goals[:i], t.doc.Goals[i+1:]...)
			t.persist()
			return nil
		}
	}
	return ErrGoalNotFound
}

func (t *Tracker) findGoal(id string) *Goal {
	for i := range t.doc.Goals {
		if t.doc.Goals[i].ID == id {
			return &t.doc.Goals[i]
		}
	}
	return nil
}
