package tracker

// Canonical focus timer durations, in seconds.
const (
	PomodoroDuration   = 25 * 60
	ShortBreakDuration = 5 * 60
	LongBreakDuration  = 15 * 60

	MinCustomMinutes = 1
	MaxCustomMinutes = 120
)

func canonicalDuration(mode TimerMode) (int, bool) {
	switch mode {
	case ModePomodoro:
		return PomodoroDuration, true
	case ModeShortBreak:
		return ShortBreakDuration, true
	case ModeLongBreak:
		return LongBreakDuration, true
	}
	return 0, false
}

// SetTimerMode switches to one of the canonical modes. A running countdown is
// stopped first; there is no silent background countdown across a mode
// switch. Custom mode is only reachable through SetCustomTime.
func (t *Tracker) SetTimerMode(mode TimerMode) error {
	duration, ok := canonicalDuration(mode)
	if !ok {
		return invalid("mode", "must be pomodoro, shortBreak or longBreak")
	}

	t.doc.Timer.Running = false
	t.doc.Timer.Mode = mode
	t.doc.Timer.TimeLeft = duration
	t.doc.Timer.SessionDuration = duration
	return nil
}

// SetCustomTime switches to custom mode with the given session length.
// Minutes outside [1,120] are rejected and the timer is left untouched.
func (t *Tracker) SetCustomTime(minutes int) error {
	if minutes < MinCustomMinutes || minutes > MaxCustomMinutes {
		return invalid("minutes", "must be between 1 and 120")
	}

	t.doc.Timer.Running = false
	t.doc.Timer.Mode = ModeCustom
	t.doc.Timer.TimeLeft = minutes * 60
	t.doc.Timer.SessionDuration = minutes * 60
	return nil
}

// StartTimer begins the countdown. Starting a running timer is a no-op: the
// tick source is singular and externally driven, so a second start can never
// register a second countdown.
func (t *Tracker) StartTimer() {
	t.doc.Timer.Running = true
}

// StopTimer halts the countdown, preserving the remaining time.
func (t *Tracker) StopTimer() {
	t.doc.Timer.Running = false
}

// ResetTimer stops and reloads the canonical duration for the current mode.
// Custom mode has no canonical duration and falls back to pomodoro.
func (t *Tracker) ResetTimer() {
	mode := t.doc.Timer.Mode
	if mode == ModeCustom {
		mode = ModePomodoro
	}
	t.SetTimerMode(mode)
}

// TickTimer advances the countdown by one elapsed second. The scheduler (the
// rendering layer's once-per-second tick) calls this unconditionally; a
// stopped timer ignores the tick. Reaching zero completes the session.
func (t *Tracker) TickTimer() {
	timer := &t.doc.Timer
	if !timer.Running {
		return
	}

	timer.TimeLeft--
	timer.TotalFocusTime++

	if timer.TimeLeft <= 0 {
		t.timerComplete()
	}
}

// timerComplete fires the completion side effects: stop, count the session,
// grant the reward, log the achievement, and for pomodoro mode auto-advance
// into the short break. Other modes simply stop at zero.
func (t *Tracker) timerComplete() {
	timer := &t.doc.Timer
	timer.Running = false
	timer.TimeLeft = 0
	timer.CompletedPomodoros++
	t.grantEXP(ExpPomodoroCompleted)

	t.notify(Notification{
		Type:    NotifyAchievement,
		Title:   "Focus Session Complete!",
		Message: "Great job! Take a break and recharge.",
	})

	if timer.Mode == ModePomodoro {
		t.SetTimerMode(ModeShortBreak)
	}

	t.persist()
}

// TimerProgress returns the completed fraction of the current session in
// [0,1], against the duration the session actually started from.
func (t *Tracker) TimerProgress() float64 {
	timer := &t.doc.Timer
	if timer.SessionDuration <= 0 {
		return 0
	}
	return 1 - float64(timer.TimeLeft)/float64(timer.SessionDuration)
}

// Timer returns the current timer state.
func (t *Tracker) Timer() TimerState { return t.doc.Timer }
