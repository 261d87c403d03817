package domain

import (
	"math"
	"time"
)

// Phase is the lifecycle position of a countdown, derived from a TimerState.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseRunning     Phase = "running"
	PhasePaused      Phase = "paused"
	PhaseComplete    Phase = "complete"
)

// DefaultTimerMinutes is the countdown length used when nothing has been configured.
const DefaultTimerMinutes = 25

// TimerState is an immutable snapshot of the countdown.
// Remaining is the source of truth; minutes and progress are projections of it.
type TimerState struct {
	Initial        time.Duration
	Remaining      time.Duration
	Running        bool
	ExtensionsUsed int
	// LastObservedAt is stamped by the host when a running state is persisted.
	LastObservedAt *time.Time
}

// NewTimerState creates a stopped countdown of the given length.
func NewTimerState(initial time.Duration) TimerState {
	return TimerState{
		Initial:   initial,
		Remaining: initial,
	}
}

// MinutesToDuration converts real-valued minutes to a duration rounded to the nanosecond.
func MinutesToDuration(minutes float64) time.Duration {
	return time.Duration(math.Round(minutes * float64(time.Minute)))
}

// InitialMinutes returns the configured length in minutes.
func (s TimerState) InitialMinutes() float64 {
	return s.Initial.Minutes()
}

// RemainingMinutes returns the time left in minutes.
func (s TimerState) RemainingMinutes() float64 {
	return s.Remaining.Minutes()
}

// Progress returns remaining/initial. It is read-only and never fed back into state.
func (s TimerState) Progress() float64 {
	if s.Initial <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.Initial)
}

// IsTimeUp reports the terminal condition reached by counting down to zero.
func (s TimerState) IsTimeUp() bool {
	return !s.Running && s.Remaining == 0
}

// Phase derives the lifecycle phase from the snapshot fields.
func (s TimerState) Phase() Phase {
	switch {
	case s.Running:
		return PhaseRunning
	case s.Remaining == 0:
		return PhaseComplete
	case s.Remaining == s.Initial:
		return PhaseConfiguring
	default:
		return PhasePaused
	}
}

// Clone returns a copy that shares no pointers with s.
func (s TimerState) Clone() TimerState {
	if s.LastObservedAt != nil {
		observed := *s.LastObservedAt
		s.LastObservedAt = &observed
	}
	return s
}

// Observed returns a copy stamped with the given wall-clock time.
func (s TimerState) Observed(at time.Time) TimerState {
	s.LastObservedAt = &at
	return s
}

// Unobserved returns a copy without an observation stamp.
func (s TimerState) Unobserved() TimerState {
	s.LastObservedAt = nil
	return s
}
