package tasks

import (
	"github.com/google/uuid"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/validation"
)

// IDGenerator produces a fresh unique task id.
type IDGenerator func() string

// Result is returned alongside every new task list.
type Result struct {
	Signal domain.Signal
	// AllComplete is set on the toggle that completes the last open task.
	AllComplete bool
}

func ok() Result { return Result{Signal: domain.SignalOK} }

// Store applies edits to a task list. Every operation takes a list and returns a
// new one; the input is never modified.
type Store struct {
	newID     IDGenerator
	validator *validation.TaskValidator
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default uuid generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithMaxTextLength bounds task text in runes. Zero disables the limit.
func WithMaxTextLength(n int) Option {
	return func(s *Store) {
		s.validator = validation.NewTaskValidator(n)
	}
}

// NewStore creates a task store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID:     uuid.NewString,
		validator: validation.NewTaskValidator(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends an open task. Blank text is rejected.
func (s *Store) Add(list domain.TaskList, text string) (domain.TaskList, Result) {
	clean, signal := s.cleanText(text)
	if signal != domain.SignalOK {
		return list.Clone(), Result{Signal: signal}
	}

	out := append(list.Clone(), domain.Task{ID: s.newID(), Text: clean})
	return out, ok()
}

// Toggle flips the completed flag of the task with the given id. Unknown ids are ignored.
func (s *Store) Toggle(list domain.TaskList, id string) (domain.TaskList, Result) {
	out := list.Clone()
	i := out.IndexOf(id)
	if i < 0 {
		return out, ok()
	}

	out[i].Completed = !out[i].Completed
	// A toggle changes exactly one task, so the list was not complete before
	// when it is complete now.
	return out, Result{Signal: domain.SignalOK, AllComplete: out.AllCompleted()}
}

// Edit replaces a task's text in place. Blank text is rejected.
func (s *Store) Edit(list domain.TaskList, id, text string) (domain.TaskList, Result) {
	out := list.Clone()
	clean, signal := s.cleanText(text)
	if signal != domain.SignalOK {
		return out, Result{Signal: signal}
	}

	if i := out.IndexOf(id); i >= 0 {
		out[i].Text = clean
	}
	return out, ok()
}

// Delete removes the task with the given id. Unknown ids are ignored.
func (s *Store) Delete(list domain.TaskList, id string) (domain.TaskList, Result) {
	i := list.IndexOf(id)
	if i < 0 {
		return list.Clone(), ok()
	}

	out := make(domain.TaskList, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out, ok()
}

// Reorder moves the task at from to position to, keeping the relative order of the rest.
func (s *Store) Reorder(list domain.TaskList, from, to int) (domain.TaskList, Result) {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list.Clone(), Result{Signal: domain.SignalInvalidArgument}
	}

	moved := list[from]
	rest := make(domain.TaskList, 0, len(list))
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)

	out := make(domain.TaskList, 0, len(list))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out, ok()
}

// Clear empties the list.
func (s *Store) Clear(domain.TaskList) (domain.TaskList, Result) {
	return domain.TaskList{}, ok()
}

func (s *Store) cleanText(text string) (string, domain.Signal) {
	clean, err := s.validator.GetValidText(text)
	if err == nil {
		return clean, domain.SignalOK
	}
	if verr, isValidation := err.(*validation.ValidationError); isValidation && verr.HasType(validation.ErrorTypeRequired) {
		return "", domain.SignalRejectedEmpty
	}
	return "", domain.SignalInvalidArgument
}
