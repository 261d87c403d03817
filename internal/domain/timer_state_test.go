package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimerState(t *testing.T) {
	state := NewTimerState(25 * time.Minute)

	assert.Equal(t, 25.0, state.InitialMinutes())
	assert.Equal(t, 25.0, state.RemainingMinutes())
	assert.False(t, state.Running)
	assert.Equal(t, 0, state.ExtensionsUsed)
	assert.Nil(t, state.LastObservedAt)
	assert.Equal(t, PhaseConfiguring, state.Phase())
}

func TestMinutesToDuration(t *testing.T) {
	assert.Equal(t, 25*time.Minute, MinutesToDuration(25))
	assert.Equal(t, 90*time.Second, MinutesToDuration(1.5))
	assert.Equal(t, time.Second, MinutesToDuration(1.0/60))
}

func TestTimerState_Phase(t *testing.T) {
	tests := []struct {
		name     string
		state    TimerState
		expected Phase
	}{
		{"fresh", TimerState{Initial: 25 * time.Minute, Remaining: 25 * time.Minute}, PhaseConfiguring},
		{"running", TimerState{Initial: 25 * time.Minute, Remaining: 10 * time.Minute, Running: true}, PhaseRunning},
		{"paused", TimerState{Initial: 25 * time.Minute, Remaining: 10 * time.Minute}, PhasePaused},
		{"complete", TimerState{Initial: 25 * time.Minute}, PhaseComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Phase())
		})
	}
}

func TestTimerState_Progress(t *testing.T) {
	state := TimerState{Initial: 20 * time.Minute, Remaining: 5 * time.Minute}
	assert.Equal(t, 0.25, state.Progress())

	assert.Equal(t, 0.0, TimerState{}.Progress())
}

func TestTimerState_IsTimeUp(t *testing.T) {
	assert.True(t, TimerState{Initial: time.Minute}.IsTimeUp())
	assert.False(t, TimerState{Initial: time.Minute, Remaining: time.Second}.IsTimeUp())
	assert.False(t, TimerState{Initial: time.Minute, Running: true}.IsTimeUp())
}

func TestTimerState_CloneAndObserve(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	original := NewTimerState(time.Minute).Observed(at)

	clone := original.Clone()
	later := at.Add(time.Hour)
	*clone.LastObservedAt = later

	assert.Equal(t, at, *original.LastObservedAt, "clone must not share the observation stamp")
	assert.Nil(t, original.Unobserved().LastObservedAt)
	assert.NotNil(t, original.LastObservedAt)
}
