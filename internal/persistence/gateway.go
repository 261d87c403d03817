package persistence

import (
	"context"
	"encoding/json"
	"time"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/repository/sqlite"
)

// Keys under which the host stores its snapshots.
const (
	KeyTasks = "tasks"
	KeyTimer = "timer"
	KeyTheme = "theme"
)

// Keys lists every snapshot the host owns.
var Keys = []string{KeyTimer, KeyTasks, KeyTheme}

// Gateway saves and loads JSON snapshots by key.
type Gateway interface {
	Save(ctx context.Context, key string, v interface{}) error
	// Load decodes the value stored under key into v. found is false when
	// nothing has been stored yet.
	Load(ctx context.Context, key string, v interface{}) (found bool, err error)
	// Delete removes the value stored under key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Entries describes every stored value, ordered by key.
	Entries(ctx context.Context) ([]Entry, error)
}

// Entry describes one stored snapshot without decoding it.
type Entry struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// SnapshotGateway implements Gateway on a snapshot repository.
type SnapshotGateway struct {
	repo sqlite.Repository
}

// NewSnapshotGateway creates a gateway backed by repo.
func NewSnapshotGateway(repo sqlite.Repository) *SnapshotGateway {
	return &SnapshotGateway{repo: repo}
}

// Save encodes v as JSON and stores it under key.
func (g *SnapshotGateway) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewStorageError("encode "+key, err)
	}
	return g.repo.Put(ctx, key, string(data))
}

// Load decodes the snapshot stored under key into v.
func (g *SnapshotGateway) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	snapshot, err := g.repo.Get(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(snapshot.Value), v); err != nil {
		return true, errors.NewStorageError("decode "+key, err).WithContext("key", key)
	}
	return true, nil
}

// Delete removes the snapshot stored under key.
func (g *SnapshotGateway) Delete(ctx context.Context, key string) error {
	err := g.repo.Delete(ctx, key)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil
	}
	return err
}

// Entries lists the stored snapshots.
func (g *SnapshotGateway) Entries(ctx context.Context) ([]Entry, error) {
	snapshots, err := g.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entries = append(entries, Entry{
			Key:       snapshot.Key,
			Size:      len(snapshot.Value),
			UpdatedAt: snapshot.UpdatedAt,
		})
	}
	return entries, nil
}

// Store adds typed accessors for the host's snapshots on top of a Gateway.
type Store struct {
	gateway Gateway
	mapper  *domain.Mapper
}

// NewStore wraps gateway.
func NewStore(gateway Gateway) *Store {
	return &Store{gateway: gateway, mapper: domain.NewMapper()}
}

// SaveTimer persists the timer snapshot.
func (s *Store) SaveTimer(ctx context.Context, state domain.TimerState) error {
	return s.gateway.Save(ctx, KeyTimer, s.mapper.Timer.ToSnapshot(state))
}

// LoadTimer returns the persisted timer, if any.
func (s *Store) LoadTimer(ctx context.Context) (domain.TimerState, bool, error) {
	var snap domain.TimerSnapshot
	found, err := s.gateway.Load(ctx, KeyTimer, &snap)
	if err != nil || !found {
		return domain.TimerState{}, found, err
	}

	state, err := s.mapper.Timer.FromSnapshot(snap)
	if err != nil {
		return domain.TimerState{}, true, errors.NewStorageError("decode "+KeyTimer, err)
	}
	return state, true, nil
}

// SaveTasks persists the task list.
func (s *Store) SaveTasks(ctx context.Context, list domain.TaskList) error {
	return s.gateway.Save(ctx, KeyTasks, s.mapper.Task.ToSnapshot(list))
}

// LoadTasks returns the persisted task list, if any.
func (s *Store) LoadTasks(ctx context.Context) (domain.TaskList, bool, error) {
	var tasks []domain.Task
	found, err := s.gateway.Load(ctx, KeyTasks, &tasks)
	if err != nil || !found {
		return nil, found, err
	}
	return s.mapper.Task.FromSnapshot(tasks), true, nil
}

// SaveTheme persists the theme preference as a bare boolean, true for dark.
func (s *Store) SaveTheme(ctx context.Context, dark bool) error {
	return s.gateway.Save(ctx, KeyTheme, dark)
}

// LoadTheme returns the persisted theme preference, if any.
func (s *Store) LoadTheme(ctx context.Context) (dark bool, found bool, err error) {
	found, err = s.gateway.Load(ctx, KeyTheme, &dark)
	return dark, found, err
}

// Entries describes the stored snapshots.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	return s.gateway.Entries(ctx)
}

// Clear deletes every snapshot the host owns.
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range Keys {
		if err := s.gateway.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
