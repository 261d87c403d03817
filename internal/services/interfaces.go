package services

import (
	"context"
	"time"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/persistence"
)

// Clock provides the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// TimerOutcome is the result of a timer intent.
type TimerOutcome struct {
	State  domain.TimerState `json:"-"`
	Signal domain.Signal     `json:"-"`
	// TimeUp is set only by the tick that reaches zero.
	TimeUp bool `json:"time_up"`
}

// TaskOutcome is the result of a task intent.
type TaskOutcome struct {
	Tasks       domain.TaskList `json:"tasks"`
	Signal      domain.Signal   `json:"-"`
	AllComplete bool            `json:"all_complete"`
}

// Session is everything the host restores on start.
type Session struct {
	Timer domain.TimerState
	Tasks domain.TaskList
	Dark  bool
}

// TimerController drives the countdown
type TimerController interface {
	Configure(ctx context.Context, minutes float64) (TimerOutcome, error)
	Start(ctx context.Context) (TimerOutcome, error)
	Pause(ctx context.Context) (TimerOutcome, error)
	Reset(ctx context.Context) (TimerOutcome, error)
	Extend(ctx context.Context) (TimerOutcome, error)
	Tick(ctx context.Context) (TimerOutcome, error)
	Resume(ctx context.Context, now time.Time) (TimerOutcome, error)
	Sync(ctx context.Context) (TimerOutcome, error)
}

// TaskController edits the task list
type TaskController interface {
	AddTask(ctx context.Context, text string) (TaskOutcome, error)
	ToggleTask(ctx context.Context, id string) (TaskOutcome, error)
	EditTask(ctx context.Context, id, text string) (TaskOutcome, error)
	DeleteTask(ctx context.Context, id string) (TaskOutcome, error)
	MoveTask(ctx context.Context, from, to int) (TaskOutcome, error)
	ClearTasks(ctx context.Context) (TaskOutcome, error)
}

// Host is the full surface bound by the CLI and the interactive view.
type Host interface {
	TimerController
	TaskController
	Load(ctx context.Context) error
	Snapshot() Session
	ToggleTheme(ctx context.Context) (bool, error)
	SavedState(ctx context.Context) ([]persistence.Entry, error)
	ForgetSavedState(ctx context.Context) (Session, error)
	SendTestNotification(ctx context.Context) error
	Wait()
}
