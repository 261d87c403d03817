package timer

import (
	"time"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/validation"
)

// TickInterval is the wall-clock time represented by one Tick.
const TickInterval = time.Second

// Options bounds what the engine accepts.
type Options struct {
	MinMinutes         float64
	MaxMinutes         float64
	ExtensionWarnAfter int
	// DriftFloor is the smallest remaining time drift correction may leave on a
	// running countdown. It must be shorter than TickInterval so the next Tick
	// crosses zero and reports time up.
	DriftFloor time.Duration
}

// DefaultOptions returns the stock bounds: 1 to 9999 minutes, a warning from the
// fourth extension on, and a 1ms drift floor.
func DefaultOptions() Options {
	return Options{
		MinMinutes:         1,
		MaxMinutes:         9999,
		ExtensionWarnAfter: 3,
		DriftFloor:         time.Millisecond,
	}
}

// Engine owns one countdown. It performs no I/O and never blocks; the host
// supplies ticks and wall-clock readings.
type Engine struct {
	state     domain.TimerState
	opts      Options
	validator *validation.TimerValidator
	lifecycle *Lifecycle
}

// NewEngine creates an engine positioned at state. It panics if the lifecycle
// machine cannot be built, which only happens when its definition is broken.
func NewEngine(state domain.TimerState, opts Options) *Engine {
	if opts.DriftFloor <= 0 || opts.DriftFloor >= TickInterval {
		opts.DriftFloor = DefaultOptions().DriftFloor
	}
	lifecycle, err := NewLifecycle(state.Phase())
	if err != nil {
		panic(err)
	}
	return &Engine{
		state:     state.Clone(),
		opts:      opts,
		validator: validation.NewTimerValidator(opts.MinMinutes, opts.MaxMinutes),
		lifecycle: lifecycle,
	}
}

// State returns the current snapshot.
func (e *Engine) State() domain.TimerState {
	return e.state.Clone()
}

// Restore replaces the current snapshot, e.g. after stamping it for persistence,
// and moves the lifecycle to the phase it describes.
func (e *Engine) Restore(state domain.TimerState) {
	e.state = state.Clone()
	if err := e.lifecycle.Sync(e.state.Phase()); err != nil {
		panic(err)
	}
}

// Phase reports the lifecycle phase.
func (e *Engine) Phase() domain.Phase {
	return e.lifecycle.Current()
}

// Configure sets a new countdown length. Only allowed before the countdown has
// started, i.e. while stopped with remaining equal to initial.
func (e *Engine) Configure(minutes float64) (domain.TimerState, domain.Signal) {
	if !e.accepts(EventConfigure) {
		return e.State(), domain.SignalInvalidState
	}
	if err := e.validator.ValidateMinutes(minutes); err != nil {
		return e.State(), domain.SignalInvalidConfig
	}

	length := domain.MinutesToDuration(minutes)
	e.state.Initial = length
	e.state.Remaining = length
	return e.State(), domain.SignalOK
}

// Start resumes or begins the countdown. At zero remaining the caller must extend first.
func (e *Engine) Start() (domain.TimerState, domain.Signal) {
	if e.state.Running {
		return e.State(), domain.SignalOK
	}
	if !e.accepts(EventStart) {
		return e.State(), domain.SignalInvalidState
	}

	e.state.Running = true
	return e.State(), domain.SignalOK
}

// Pause stops the countdown. Idempotent.
func (e *Engine) Pause() (domain.TimerState, domain.Signal) {
	if !e.state.Running {
		return e.State(), domain.SignalOK
	}
	if !e.accepts(EventPause) {
		return e.State(), domain.SignalInvalidState
	}
	e.state.Running = false
	// Paused before the first tick the countdown is indistinguishable from a
	// configured one, so it goes back to configuring.
	if e.state.Phase() == domain.PhaseConfiguring {
		e.Restore(e.state)
	}
	return e.State(), domain.SignalOK
}

// Tick advances a running countdown by one second. timeUp is true only on the
// tick that reaches zero.
func (e *Engine) Tick() (state domain.TimerState, timeUp bool) {
	if !e.state.Running {
		return e.State(), false
	}

	remaining := e.state.Remaining - TickInterval
	if remaining > 0 {
		e.state.Remaining = remaining
		return e.State(), false
	}
	if !e.accepts(EventComplete) {
		return e.State(), false
	}
	e.state.Remaining = 0
	e.state.Running = false
	return e.State(), true
}

// Reset restores the configured length, stops the countdown and clears the
// extension counter.
func (e *Engine) Reset() (domain.TimerState, domain.Signal) {
	if !e.accepts(EventReset) {
		return e.State(), domain.SignalInvalidState
	}

	e.state = domain.TimerState{
		Initial:   e.state.Initial,
		Remaining: e.state.Initial,
	}
	return e.State(), domain.SignalOK
}

// Extend restarts a finished countdown as a fresh running period of bonusMinutes.
// Past the warning threshold it still extends but reports SignalExcessiveExtension.
func (e *Engine) Extend(bonusMinutes float64) (domain.TimerState, domain.Signal) {
	if err := e.validator.ValidateMinutes(bonusMinutes); err != nil {
		return e.State(), domain.SignalInvalidConfig
	}
	if !e.accepts(EventExtend) {
		return e.State(), domain.SignalInvalidState
	}

	signal := domain.SignalOK
	if e.state.ExtensionsUsed >= e.opts.ExtensionWarnAfter {
		signal = domain.SignalExcessiveExtension
	}

	length := domain.MinutesToDuration(bonusMinutes)
	e.state.Initial = length
	e.state.Remaining = length
	e.state.Running = true
	e.state.ExtensionsUsed++
	return e.State(), signal
}

// CorrectForBackgroundDrift subtracts the wall-clock time elapsed since the last
// observation from a running countdown. The result never drops below DriftFloor,
// so reaching zero is always left to the next Tick. The observation stamp moves to now.
func (e *Engine) CorrectForBackgroundDrift(now time.Time) (domain.TimerState, domain.Signal) {
	return e.correctDrift(now, 0)
}

// CorrectForMissedTicks is CorrectForBackgroundDrift for a host whose ticks kept
// arriving: the pending TickInterval since the last observation belongs to the
// next Tick, so only the gap beyond it is subtracted.
func (e *Engine) CorrectForMissedTicks(now time.Time) (domain.TimerState, domain.Signal) {
	return e.correctDrift(now, TickInterval)
}

func (e *Engine) correctDrift(now time.Time, covered time.Duration) (domain.TimerState, domain.Signal) {
	if !e.state.Running || e.state.LastObservedAt == nil {
		return e.State(), domain.SignalOK
	}

	elapsed := now.Sub(*e.state.LastObservedAt) - covered
	if elapsed > 0 {
		remaining := e.state.Remaining - elapsed
		if remaining < e.opts.DriftFloor {
			remaining = min(e.opts.DriftFloor, e.state.Remaining)
		}
		e.state.Remaining = remaining
	}

	e.state = e.state.Observed(now)
	return e.State(), domain.SignalOK
}

// accepts sends event to the lifecycle and reports whether the machine took it.
func (e *Engine) accepts(event string) bool {
	if err := e.lifecycle.Transition(event); err != nil {
		logging.Debugf("timer: %v\n", err)
		return false
	}
	return true
}
