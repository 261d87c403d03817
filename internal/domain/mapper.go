package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimerSnapshot is the persisted JSON shape of a TimerState.
// Field names are stable; durations are stored as real-valued minutes.
type TimerSnapshot struct {
	InitialMinutes   float64    `json:"initialMinutes"`
	RemainingMinutes float64    `json:"remainingMinutes"`
	Running          bool       `json:"running"`
	ExtensionsUsed   int        `json:"extensionsUsed"`
	LastObservedAt   *time.Time `json:"lastObservedAt,omitempty"`
}

// TimerMapper handles conversion between TimerState and its persisted snapshot.
type TimerMapper struct{}

// NewTimerMapper creates a new TimerMapper instance.
func NewTimerMapper() *TimerMapper {
	return &TimerMapper{}
}

// ToSnapshot converts a TimerState to its persisted form.
func (m *TimerMapper) ToSnapshot(state TimerState) TimerSnapshot {
	state = state.Clone()
	return TimerSnapshot{
		InitialMinutes:   state.InitialMinutes(),
		RemainingMinutes: state.RemainingMinutes(),
		Running:          state.Running,
		ExtensionsUsed:   state.ExtensionsUsed,
		LastObservedAt:   state.LastObservedAt,
	}
}

// FromSnapshot converts a persisted snapshot back to a TimerState.
// Out-of-range values written by older versions are repaired rather than rejected,
// except for a non-positive initial length which has no meaningful repair.
func (m *TimerMapper) FromSnapshot(snap TimerSnapshot) (TimerState, error) {
	if math.IsNaN(snap.InitialMinutes) || snap.InitialMinutes <= 0 {
		return TimerState{}, fmt.Errorf("timer snapshot has invalid initialMinutes %v", snap.InitialMinutes)
	}
	if math.IsNaN(snap.RemainingMinutes) {
		return TimerState{}, fmt.Errorf("timer snapshot has invalid remainingMinutes")
	}

	state := TimerState{
		Initial:        MinutesToDuration(snap.InitialMinutes),
		Remaining:      MinutesToDuration(snap.RemainingMinutes),
		Running:        snap.Running,
		ExtensionsUsed: snap.ExtensionsUsed,
	}
	if state.Remaining < 0 {
		state.Remaining = 0
	}
	if state.Remaining == 0 {
		state.Running = false
	}
	if state.ExtensionsUsed < 0 {
		state.ExtensionsUsed = 0
	}
	if snap.LastObservedAt != nil {
		observed := *snap.LastObservedAt
		state.LastObservedAt = &observed
	}
	return state, nil
}

// TaskMapper handles conversion between task lists and their persisted form.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToSnapshot converts a TaskList to the slice written to storage.
func (m *TaskMapper) ToSnapshot(list TaskList) []Task {
	return list.Clone()
}

// FromSnapshot rebuilds a TaskList, dropping entries without an id or text
// and later duplicates of an id so that ids stay pairwise distinct.
func (m *TaskMapper) FromSnapshot(tasks []Task) TaskList {
	seen := make(map[string]bool, len(tasks))
	list := make(TaskList, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == "" || strings.TrimSpace(task.Text) == "" || seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		list = append(list, task)
	}
	return list
}

// Mapper provides access to all snapshot mappers.
type Mapper struct {
	Timer *TimerMapper
	Task  *TaskMapper
}

// NewMapper creates a new Mapper instance with all mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Timer: NewTimerMapper(),
		Task:  NewTaskMapper(),
	}
}
