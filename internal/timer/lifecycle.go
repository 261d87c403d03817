package timer

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"productivity-clock/internal/domain"
)

// Lifecycle events understood by the timer state machine.
const (
	EventConfigure = "configure"
	EventStart     = "start"
	EventPause     = "pause"
	EventComplete  = "complete"
	EventExtend    = "extend"
	EventReset     = "reset"
)

// Machine states. These must remain untyped string constants so they convert
// to statekit.StateID; init checks they match the domain phases.
const (
	stateConfiguring = "configuring"
	stateRunning     = "running"
	statePaused      = "paused"
	stateComplete    = "complete"
)

const (
	lifecycleMachineID = "timer-lifecycle"
	actionAccept       = "accept"
)

func init() {
	stateMap := map[string]domain.Phase{
		stateConfiguring: domain.PhaseConfiguring,
		stateRunning:     domain.PhaseRunning,
		statePaused:      domain.PhasePaused,
		stateComplete:    domain.PhaseComplete,
	}
	for state, phase := range stateMap {
		if state != string(phase) {
			panic(fmt.Sprintf("lifecycle state %q does not match phase %q", state, phase))
		}
	}
}

// lifecycleContext counts accepted transitions so self-transitions are
// distinguishable from rejected events.
type lifecycleContext struct {
	accepted uint64
}

// Lifecycle wraps one statekit interpreter for the life of an engine.
type Lifecycle struct {
	interpreter *statekit.Interpreter[lifecycleContext]
}

// NewLifecycle builds the countdown machine starting at the given phase:
//
//	configuring -configure-> configuring -start-> running
//	running -pause-> paused -start-> running
//	running -complete-> complete -extend-> running
//	any -reset-> configuring
func NewLifecycle(initial domain.Phase) (*Lifecycle, error) {
	builder := statekit.NewMachine[lifecycleContext](lifecycleMachineID).
		WithInitial(stateConfiguring).
		WithContext(lifecycleContext{}).
		WithAction(actionAccept, func(ctx *lifecycleContext, _ statekit.Event) {
			ctx.accepted++
		})

	builder.State(stateConfiguring).
		On(EventConfigure).Target(stateConfiguring).Do(actionAccept).
		On(EventStart).Target(stateRunning).Do(actionAccept).
		On(EventReset).Target(stateConfiguring).Do(actionAccept).
		Done()

	builder.State(stateRunning).
		On(EventPause).Target(statePaused).Do(actionAccept).
		On(EventComplete).Target(stateComplete).Do(actionAccept).
		On(EventReset).Target(stateConfiguring).Do(actionAccept).
		Done()

	builder.State(statePaused).
		On(EventStart).Target(stateRunning).Do(actionAccept).
		On(EventReset).Target(stateConfiguring).Do(actionAccept).
		Done()

	builder.State(stateComplete).
		On(EventExtend).Target(stateRunning).Do(actionAccept).
		On(EventReset).Target(stateConfiguring).Do(actionAccept).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build timer lifecycle: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	lifecycle := &Lifecycle{interpreter: interpreter}
	if err := lifecycle.Sync(initial); err != nil {
		return nil, err
	}
	return lifecycle, nil
}

// Current returns the phase the machine is in.
func (l *Lifecycle) Current() domain.Phase {
	return domain.Phase(l.interpreter.State().Value)
}

// Sync moves the machine to phase without running any transition, e.g. after
// a snapshot was restored from storage.
func (l *Lifecycle) Sync(phase domain.Phase) error {
	err := l.interpreter.Restore(statekit.Snapshot[lifecycleContext]{
		MachineID:    lifecycleMachineID,
		CurrentState: statekit.StateID(string(phase)),
		Context:      l.interpreter.State().Context,
	})
	if err != nil {
		return fmt.Errorf("failed to move timer lifecycle to %s: %w", phase, err)
	}
	return nil
}

// Transition sends event and fails when the current phase does not accept it.
func (l *Lifecycle) Transition(event string) error {
	before := l.Current()
	accepted := l.interpreter.State().Context.accepted
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if l.interpreter.State().Context.accepted != accepted {
		return nil
	}
	return fmt.Errorf("the action '%s' is not allowed while the timer is %s", event, before)
}
