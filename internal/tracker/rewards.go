package tracker

// EXP grants per reward event. Undo actions (unchecking a habit day,
// uncompleting a task) do not refund EXP.
const (
	ExpTaskCompleted      = 10
	ExpHabitCheckIn       = 5
	ExpMilestoneCompleted = 15
	ExpGoalBonus          = 50 // all milestones of a goal, once per goal
	ExpPomodoroCompleted  = 25
	ExpProjectTaskDone    = 20
)

// ExpPerLevel is the EXP span of one level. The demo profile (1250 EXP,
// level 5) anchors the curve.
const ExpPerLevel = 250

func levelForEXP(exp int) int {
	level := exp / ExpPerLevel
	if level < 1 {
		return 1
	}
	return level
}

// grantEXP adds exp to the logged-in user and recomputes the level. A grant
// with no user is silently skipped; rewardable operations are only reachable
// from authenticated views.
func (t *Tracker) grantEXP(exp int) {
	if t.doc.User == nil {
		return
	}
	t.doc.User.EXP += exp
	t.doc.User.Level = levelForEXP(t.doc.User.EXP)
}
