package services

import (
	"context"
	"sync"
	"time"

	"productivity-clock/internal/config"
	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/notify"
	"productivity-clock/internal/persistence"
	"productivity-clock/internal/tasks"
	"productivity-clock/internal/timer"
)

// Option configures a ClockService.
type Option func(*ClockService)

// WithDarkDetector sets how the "auto" theme picks light or dark.
func WithDarkDetector(detect func() bool) Option {
	return func(s *ClockService) {
		s.detectDark = detect
	}
}

// WithTaskIDs replaces the task id generator.
func WithTaskIDs(gen tasks.IDGenerator) Option {
	return func(s *ClockService) {
		s.taskOpts = append(s.taskOpts, tasks.WithIDGenerator(gen))
	}
}

// ClockService owns one timer engine and one task list, persists every change
// and dispatches the time-up notification.
type ClockService struct {
	mu sync.Mutex

	store  *persistence.Store
	sink   notify.Sink
	clock  Clock
	cfg    *config.Config
	engine *timer.Engine
	tasks  *tasks.Store
	list   domain.TaskList
	dark   bool

	detectDark func() bool
	taskOpts   []tasks.Option
	inflight   sync.WaitGroup
}

// NewClockService creates a service positioned at the configured defaults. Call Load
// to restore the persisted session.
func NewClockService(gateway persistence.Gateway, sink notify.Sink, clock Clock, cfg *config.Config, opts ...Option) *ClockService {
	if sink == nil {
		sink = notify.NopSink{}
	}
	if clock == nil {
		clock = SystemClock
	}

	s := &ClockService{
		store:      persistence.NewStore(gateway),
		sink:       sink,
		clock:      clock,
		cfg:        cfg,
		detectDark: func() bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.taskOpts = append([]tasks.Option{tasks.WithMaxTextLength(cfg.Tasks.TextMaxLength)}, s.taskOpts...)
	s.tasks = tasks.NewStore(s.taskOpts...)
	s.engine = timer.NewEngine(s.defaultTimer(), s.engineOptions())
	s.list = domain.TaskList{}
	s.dark = s.defaultDark()
	return s
}

func (s *ClockService) engineOptions() timer.Options {
	return timer.Options{
		MinMinutes:         s.cfg.Timer.MinMinutes,
		MaxMinutes:         s.cfg.Timer.MaxMinutes,
		ExtensionWarnAfter: s.cfg.Timer.ExtensionWarnAfter,
		DriftFloor:         s.cfg.Timer.DriftFloor,
	}
}

func (s *ClockService) defaultTimer() domain.TimerState {
	return domain.NewTimerState(domain.MinutesToDuration(s.cfg.Timer.DefaultMinutes))
}

func (s *ClockService) defaultDark() bool {
	switch s.cfg.Display.Theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return s.detectDark()
	}
}

// Load restores the timer, tasks and theme. Missing or unreadable snapshots fall
// back to defaults. A countdown that was running is corrected for the time spent
// while nothing was ticking it.
func (s *ClockService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, found, err := s.store.LoadTimer(ctx)
	switch {
	case err != nil:
		logging.Debugf("load timer: %v, using defaults\n", err)
		state = s.defaultTimer()
	case !found:
		state = s.defaultTimer()
	}
	s.engine.Restore(state)

	list, found, err := s.store.LoadTasks(ctx)
	switch {
	case err != nil:
		logging.Debugf("load tasks: %v, starting empty\n", err)
		list = domain.TaskList{}
	case !found:
		list = domain.TaskList{}
	}
	s.list = list

	dark, found, err := s.store.LoadTheme(ctx)
	switch {
	case err != nil:
		logging.Debugf("load theme: %v, using default\n", err)
		s.dark = s.defaultDark()
	case !found:
		s.dark = s.defaultDark()
	default:
		s.dark = dark
	}

	_, err = s.resume(ctx, s.engine.CorrectForBackgroundDrift, s.clock.Now())
	return err
}

// Snapshot returns the current session.
func (s *ClockService) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session()
}

func (s *ClockService) session() Session {
	return Session{
		Timer: s.engine.State(),
		Tasks: s.list.Clone(),
		Dark:  s.dark,
	}
}

// SavedState describes what is currently in storage.
func (s *ClockService) SavedState(ctx context.Context) ([]persistence.Entry, error) {
	return s.store.Entries(ctx)
}

// ForgetSavedState deletes the stored timer, tasks and theme and puts the
// session back on its defaults. On failure the in-memory session is unchanged.
func (s *ClockService) ForgetSavedState(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		logging.Debugf("clear saved state: %v\n", err)
		return s.session(), err
	}

	s.engine.Restore(s.defaultTimer())
	s.list = domain.TaskList{}
	s.dark = s.defaultDark()
	return s.session(), nil
}

// Configure sets a new countdown length before the countdown has started.
func (s *ClockService) Configure(ctx context.Context, minutes float64) (TimerOutcome, error) {
	return s.timerIntent(ctx, "configure", func() (domain.TimerState, domain.Signal) {
		return s.engine.Configure(minutes)
	})
}

// Start begins or resumes the countdown.
func (s *ClockService) Start(ctx context.Context) (TimerOutcome, error) {
	return s.timerIntent(ctx, "start", s.engine.Start)
}

// Pause stops the countdown.
func (s *ClockService) Pause(ctx context.Context) (TimerOutcome, error) {
	return s.timerIntent(ctx, "pause", s.engine.Pause)
}

// Reset returns to the configured length.
func (s *ClockService) Reset(ctx context.Context) (TimerOutcome, error) {
	return s.timerIntent(ctx, "reset", s.engine.Reset)
}

// Extend grants a fresh period of the configured extension length after time is up.
func (s *ClockService) Extend(ctx context.Context) (TimerOutcome, error) {
	return s.timerIntent(ctx, "extend", func() (domain.TimerState, domain.Signal) {
		return s.engine.Extend(s.cfg.Timer.ExtensionMinutes)
	})
}

// Tick advances a running countdown by one second and notifies when it reaches zero.
func (s *ClockService) Tick(ctx context.Context) (TimerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tick(ctx)
}

func (s *ClockService) tick(ctx context.Context) (TimerOutcome, error) {
	before := s.engine.State()
	state, timeUp := s.engine.Tick()
	outcome := TimerOutcome{State: state, Signal: domain.SignalOK, TimeUp: timeUp}
	if !before.Running {
		return outcome, nil
	}

	if timeUp {
		s.dispatchTimeUp()
	}

	var err error
	outcome.State, err = s.stampAndSave(ctx, s.clock.Now())
	return outcome, err
}

// Resume corrects a ticking countdown for wall-clock time that passed without
// ticks, e.g. while the terminal lost focus. Time up to the next pending tick is
// left for that tick.
func (s *ClockService) Resume(ctx context.Context, now time.Time) (TimerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resume(ctx, s.engine.CorrectForMissedTicks, now)
}

func (s *ClockService) resume(ctx context.Context, correct func(time.Time) (domain.TimerState, domain.Signal), now time.Time) (TimerOutcome, error) {
	before := s.engine.State()
	state, signal := correct(now)
	if !before.Running || before.LastObservedAt == nil {
		return TimerOutcome{State: state, Signal: signal}, nil
	}

	err := s.saveTimer(ctx, state)
	return TimerOutcome{State: state, Signal: signal}, err
}

// Sync applies drift correction and, when the countdown ran out in the background,
// delivers the tick that completes it.
func (s *ClockService) Sync(ctx context.Context) (TimerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.resume(ctx, s.engine.CorrectForBackgroundDrift, s.clock.Now())
	if err != nil {
		return outcome, err
	}
	if outcome.State.Running && outcome.State.Remaining <= s.cfg.Timer.DriftFloor {
		return s.tick(ctx)
	}
	return outcome, nil
}

// timerIntent runs op and persists the result when the signal says state was applied.
func (s *ClockService) timerIntent(ctx context.Context, operation string, op func() (domain.TimerState, domain.Signal)) (TimerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, signal := op()
	if !signal.Applied() {
		return TimerOutcome{State: state, Signal: signal}, signal.Err(operation)
	}

	state, err := s.stampAndSave(ctx, s.clock.Now())
	if err != nil {
		return TimerOutcome{State: state, Signal: signal}, err
	}
	return TimerOutcome{State: state, Signal: signal}, signal.Err(operation)
}

// stampAndSave records the observation time on a running countdown, clears it on a
// stopped one and saves. The in-memory state is kept even when saving fails.
func (s *ClockService) stampAndSave(ctx context.Context, now time.Time) (domain.TimerState, error) {
	state := s.engine.State()
	if state.Running {
		state = state.Observed(now)
	} else {
		state = state.Unobserved()
	}
	s.engine.Restore(state)
	return state, s.saveTimer(ctx, state)
}

func (s *ClockService) saveTimer(ctx context.Context, state domain.TimerState) error {
	if err := s.store.SaveTimer(ctx, state); err != nil {
		logging.Debugf("save timer: %v\n", err)
		return err
	}
	return nil
}

func (s *ClockService) dispatchTimeUp() {
	n := notify.Notification{
		Title:    notify.TimeUpTitle,
		Body:     s.cfg.Notification.Message,
		Priority: s.cfg.Notification.Priority,
		Tags:     s.cfg.Notification.Tags,
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Notification.Timeout)
		defer cancel()
		if err := s.sink.Notify(ctx, n); err != nil {
			logging.Debugf("time-up notification failed: %v\n", err)
		}
	}()
}

// Wait blocks until dispatched notifications have finished.
func (s *ClockService) Wait() {
	s.inflight.Wait()
}

// AddTask appends a task.
func (s *ClockService) AddTask(ctx context.Context, text string) (TaskOutcome, error) {
	return s.taskIntent(ctx, "add task", func(list domain.TaskList) (domain.TaskList, tasks.Result) {
		return s.tasks.Add(list, text)
	})
}

// ToggleTask flips a task's completed flag.
func (s *ClockService) ToggleTask(ctx context.Context, id string) (TaskOutcome, error) {
	return s.taskIntent(ctx, "toggle task", func(list domain.TaskList) (domain.TaskList, tasks.Result) {
		return s.tasks.Toggle(list, id)
	})
}

// EditTask replaces a task's text.
func (s *ClockService) EditTask(ctx context.Context, id, text string) (TaskOutcome, error) {
	return s.taskIntent(ctx, "edit task", func(list domain.TaskList) (domain.TaskList, tasks.Result) {
		return s.tasks.Edit(list, id, text)
	})
}

// DeleteTask removes a task.
func (s *ClockService) DeleteTask(ctx context.Context, id string) (TaskOutcome, error) {
	return s.taskIntent(ctx, "delete task", func(list domain.TaskList) (domain.TaskList, tasks.Result) {
		return s.tasks.Delete(list, id)
	})
}

// MoveTask moves the task at from to position to (zero-based).
func (s *ClockService) MoveTask(ctx context.Context, from, to int) (TaskOutcome, error) {
	return s.taskIntent(ctx, "move task", func(list domain.TaskList) (domain.TaskList, tasks.Result) {
		return s.tasks.Reorder(list, from, to)
	})
}

// ClearTasks removes every task.
func (s *ClockService) ClearTasks(ctx context.Context) (TaskOutcome, error) {
	return s.taskIntent(ctx, "clear tasks", s.tasks.Clear)
}

func (s *ClockService) taskIntent(ctx context.Context, operation string, op func(domain.TaskList) (domain.TaskList, tasks.Result)) (TaskOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, result := op(s.list)
	outcome := TaskOutcome{Tasks: list.Clone(), Signal: result.Signal, AllComplete: result.AllComplete}
	if !result.Signal.Applied() {
		return TaskOutcome{Tasks: s.list.Clone(), Signal: result.Signal}, taskSignalErr(result.Signal, operation)
	}

	s.list = list
	if result.AllComplete {
		logging.Debugf("all %d tasks complete\n", len(list))
	}
	if err := s.store.SaveTasks(ctx, list); err != nil {
		logging.Debugf("save tasks: %v\n", err)
		return outcome, err
	}
	return outcome, nil
}

func taskSignalErr(signal domain.Signal, operation string) error {
	switch signal {
	case domain.SignalRejectedEmpty:
		return errors.NewRejectedEmptyInputError("task text")
	case domain.SignalInvalidArgument:
		return errors.NewInvalidArgumentError("task", operation, "position or text length is out of range")
	default:
		return signal.Err(operation)
	}
}

// ToggleTheme flips between light and dark and saves the preference.
func (s *ClockService) ToggleTheme(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dark = !s.dark
	if err := s.store.SaveTheme(ctx, s.dark); err != nil {
		logging.Debugf("save theme: %v\n", err)
		return s.dark, err
	}
	return s.dark, nil
}

// SendTestNotification pushes the test message through the configured sink.
func (s *ClockService) SendTestNotification(ctx context.Context) error {
	return notify.SendTest(ctx, s.sink, s.cfg.Notification.Priority, s.cfg.Notification.Tags)
}
