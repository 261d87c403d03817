package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/repository/sqlite"
)

func newTestStore(t *testing.T) (*Store, *sqlite.SnapshotRepository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewStore(NewSnapshotGateway(repo)), repo
}

func TestSnapshotGateway_MissingKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.LoadTimer(ctx)
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.LoadTasks(ctx)
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.LoadTheme(ctx)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_TimerRoundTrip(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	state := domain.TimerState{
		Initial:        25 * time.Minute,
		Remaining:      12*time.Minute + 30*time.Second,
		Running:        true,
		ExtensionsUsed: 1,
		LastObservedAt: &observed,
	}
	require.NoError(t, store.SaveTimer(ctx, state))

	loaded, found, err := store.LoadTimer(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, state.Initial, loaded.Initial)
	assert.Equal(t, state.Remaining, loaded.Remaining)
	assert.True(t, loaded.Running)
	assert.Equal(t, 1, loaded.ExtensionsUsed)
	require.NotNil(t, loaded.LastObservedAt)
	assert.True(t, observed.Equal(*loaded.LastObservedAt))

	raw, err := repo.Get(ctx, KeyTimer)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"initialMinutes": 25,
		"remainingMinutes": 12.5,
		"running": true,
		"extensionsUsed": 1,
		"lastObservedAt": "2024-05-01T09:30:00Z"
	}`, raw.Value)
}

func TestStore_TimerWithoutObservation(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTimer(ctx, domain.NewTimerState(25*time.Minute)))

	raw, err := repo.Get(ctx, KeyTimer)
	require.NoError(t, err)
	assert.NotContains(t, raw.Value, "lastObservedAt")
}

func TestStore_TasksRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	list := domain.TaskList{
		{ID: "1", Text: "write report"},
		{ID: "2", Text: "review", Completed: true},
	}

	require.NoError(t, store.SaveTasks(ctx, list))
	loaded, found, err := store.LoadTasks(ctx)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, list, loaded)
}

func TestStore_ThemeRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTheme(ctx, true))
	dark, found, err := store.LoadTheme(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, dark)

	require.NoError(t, store.SaveTheme(ctx, false))
	dark, _, err = store.LoadTheme(ctx)
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestStore_ThemeIsABareBoolean(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTheme(ctx, true))

	raw, err := repo.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "true", raw.Value)
}

func TestStore_EntriesAndClear(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTimer(ctx, domain.NewTimerState(25*time.Minute)))
	require.NoError(t, store.SaveTheme(ctx, false))
	require.NoError(t, repo.Put(ctx, "unrelated", "{}"))

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, KeyTheme, entries[0].Key)
	assert.Equal(t, len("false"), entries[0].Size)
	assert.Equal(t, KeyTimer, entries[1].Key)
	assert.False(t, entries[1].UpdatedAt.IsZero())
	assert.Equal(t, "unrelated", entries[2].Key)

	require.NoError(t, store.Clear(ctx), "tasks were never saved")

	entries, err = store.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "unrelated", entries[0].Key)

	_, found, err := store.LoadTimer(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshotGateway_DeleteMissingKey(t *testing.T) {
	_, repo := newTestStore(t)
	gateway := NewSnapshotGateway(repo)

	assert.NoError(t, gateway.Delete(context.Background(), KeyTasks))
}

func TestStore_CorruptSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		load  func(*Store) error
	}{
		{
			name:  "timer is not json",
			key:   KeyTimer,
			value: "not json",
			load: func(s *Store) error {
				_, _, err := s.LoadTimer(context.Background())
				return err
			},
		},
		{
			name:  "timer has no length",
			key:   KeyTimer,
			value: `{"initialMinutes":0,"remainingMinutes":0}`,
			load: func(s *Store) error {
				_, _, err := s.LoadTimer(context.Background())
				return err
			},
		},
		{
			name:  "theme is not a boolean",
			key:   KeyTheme,
			value: `{"dark":true}`,
			load: func(s *Store) error {
				_, _, err := s.LoadTheme(context.Background())
				return err
			},
		},
		{
			name:  "tasks is an object",
			key:   KeyTasks,
			value: `{"id":"1"}`,
			load: func(s *Store) error {
				_, _, err := s.LoadTasks(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newTestStore(t)
			require.NoError(t, repo.Put(context.Background(), tt.key, tt.value))

			err := tt.load(store)

			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
		})
	}
}

func TestSnapshotGateway_EncodeError(t *testing.T) {
	_, repo := newTestStore(t)
	gateway := NewSnapshotGateway(repo)

	err := gateway.Save(context.Background(), "bad", func() {})

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}
