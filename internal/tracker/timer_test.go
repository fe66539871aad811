package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerDefaults(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	timer := tr.Timer()
	assert.Equal(t, ModePomodoro, timer.Mode)
	assert.Equal(t, PomodoroDuration, timer.TimeLeft)
	assert.Equal(t, PomodoroDuration, timer.SessionDuration)
	assert.False(t, timer.Running)
}

func TestSetTimerMode(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	require.NoError(t, tr.SetTimerMode(ModeShortBreak))
	assert.Equal(t, ShortBreakDuration, tr.Timer().TimeLeft)

	require.NoError(t, tr.SetTimerMode(ModeLongBreak))
	assert.Equal(t, LongBreakDuration, tr.Timer().TimeLeft)

	require.NoError(t, tr.SetTimerMode(ModePomodoro))
	assert.Equal(t, PomodoroDuration, tr.Timer().TimeLeft)
}

func TestSetTimerModeStopsRunningCountdown(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.StartTimer()
	tr.TickTimer()
	require.True(t, tr.Timer().Running)

	require.NoError(t, tr.SetTimerMode(ModeShortBreak))
	timer := tr.Timer()
	assert.False(t, timer.Running, "no silent background countdown across a mode switch")
	assert.Equal(t, ShortBreakDuration, timer.TimeLeft)
}

func TestSetTimerModeRejectsCustom(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	err := tr.SetTimerMode(ModeCustom)
	assert.True(t, IsValidation(err))
	assert.Equal(t, ModePomodoro, tr.Timer().Mode)
}

func TestSetCustomTimeValidRange(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	for _, m := range []int{1, 2, 45, 119, 120} {
		require.NoError(t, tr.SetCustomTime(m), "minutes=%d", m)
		timer := tr.Timer()
		assert.Equal(t, ModeCustom, timer.Mode)
		assert.Equal(t, m*60, timer.TimeLeft)
		assert.Equal(t, m*60, timer.SessionDuration)
	}
}

func TestSetCustomTimeOutOfRange(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	tr.StartTimer()
	tr.TickTimer()
	before := tr.Timer()

	for _, m := range []int{0, -5, 121, 1000} {
		err := tr.SetCustomTime(m)
		assert.True(t, IsValidation(err), "minutes=%d", m)
		assert.Equal(t, before, tr.Timer(), "state must be left untouched")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.StartTimer()
	tr.StartTimer()

	// One external tick source drives the countdown; a double start must not
	// double-decrement.
	tr.TickTimer()
	assert.Equal(t, PomodoroDuration-1, tr.Timer().TimeLeft)
	assert.Equal(t, 1, tr.Timer().TotalFocusTime)
}

func TestTickIgnoredWhileStopped(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.TickTimer()
	assert.Equal(t, PomodoroDuration, tr.Timer().TimeLeft)
	assert.Zero(t, tr.Timer().TotalFocusTime)
}

func TestStopPreservesTimeLeft(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.StartTimer()
	for i := 0; i < 10; i++ {
		tr.TickTimer()
	}
	tr.StopTimer()

	timer := tr.Timer()
	assert.False(t, timer.Running)
	assert.Equal(t, PomodoroDuration-10, timer.TimeLeft)

	// Resume continues from where it stopped.
	tr.StartTimer()
	tr.TickTimer()
	assert.Equal(t, PomodoroDuration-11, tr.Timer().TimeLeft)
}

func TestFullPomodoroRun(t *testing.T) {
	tr, p, sink := newTestTracker(t)
	_, err := tr.Signup("Ada", "ada@example.com")
	require.NoError(t, err)
	savesBefore := p.saves

	tr.StartTimer()
	for i := 0; i < PomodoroDuration; i++ {
		tr.TickTimer()
	}

	timer := tr.Timer()
	assert.Equal(t, 1, timer.CompletedPomodoros)
	assert.Equal(t, PomodoroDuration, timer.TotalFocusTime)
	assert.Equal(t, ExpPomodoroCompleted, tr.User().EXP)

	// Pomodoro auto-advances into the short break, stopped.
	assert.Equal(t, ModeShortBreak, timer.Mode)
	assert.Equal(t, ShortBreakDuration, timer.TimeLeft)
	assert.False(t, timer.Running)

	require.Len(t, sink.emitted, 1)
	assert.Equal(t, NotifyAchievement, sink.emitted[0].Type)
	assert.Equal(t, savesBefore+1, p.saves, "completion flushes state once")

	// Further ticks are ignored until restarted.
	tr.TickTimer()
	assert.Equal(t, ShortBreakDuration, tr.Timer().TimeLeft)
}

func TestBreakCompletionDoesNotAutoAdvance(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	require.NoError(t, tr.SetTimerMode(ModeShortBreak))

	tr.StartTimer()
	for i := 0; i < ShortBreakDuration; i++ {
		tr.TickTimer()
	}

	timer := tr.Timer()
	assert.Equal(t, ModeShortBreak, timer.Mode)
	assert.Zero(t, timer.TimeLeft)
	assert.False(t, timer.Running)
}

func TestCustomSessionCompletion(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	require.NoError(t, tr.SetCustomTime(1))

	tr.StartTimer()
	for i := 0; i < 60; i++ {
		tr.TickTimer()
	}

	timer := tr.Timer()
	assert.Equal(t, 1, timer.CompletedPomodoros)
	assert.Equal(t, ModeCustom, timer.Mode, "custom mode does not auto-advance")
	assert.False(t, timer.Running)
}

func TestResetRestoresCanonicalDuration(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.StartTimer()
	for i := 0; i < 100; i++ {
		tr.TickTimer()
	}
	tr.ResetTimer()

	timer := tr.Timer()
	assert.Equal(t, ModePomodoro, timer.Mode)
	assert.Equal(t, PomodoroDuration, timer.TimeLeft)
	assert.False(t, timer.Running)
}

func TestResetCustomFallsBackToPomodoro(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	require.NoError(t, tr.SetCustomTime(45))

	tr.StartTimer()
	tr.TickTimer()
	tr.ResetTimer()

	timer := tr.Timer()
	assert.Equal(t, ModePomodoro, timer.Mode)
	assert.Equal(t, PomodoroDuration, timer.TimeLeft)
}

func TestTimerProgressUsesSessionDuration(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	require.NoError(t, tr.SetCustomTime(2)) // 120s session

	assert.InDelta(t, 0.0, tr.TimerProgress(), 1e-9)

	tr.StartTimer()
	for i := 0; i < 30; i++ {
		tr.TickTimer()
	}
	// 30 of 120 seconds elapsed — against the duration this session started
	// from, not a reconstruction from the countdown value.
	assert.InDelta(t, 0.25, tr.TimerProgress(), 1e-9)

	for i := 0; i < 90; i++ {
		tr.TickTimer()
	}
	assert.InDelta(t, 1.0, tr.TimerProgress(), 1e-9)
}

func TestTotalFocusTimeAccruesAcrossModes(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.StartTimer()
	for i := 0; i < 5; i++ {
		tr.TickTimer()
	}
	require.NoError(t, tr.SetTimerMode(ModeShortBreak))
	tr.StartTimer()
	for i := 0; i < 5; i++ {
		tr.TickTimer()
	}

	assert.Equal(t, 10, tr.Timer().TotalFocusTime)
}
