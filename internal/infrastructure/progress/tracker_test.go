package progress

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[key] = data
	return nil
}

var testOrder = []string{"training", "factory", "lab"}

func createTestTracker(t *testing.T, store *memStore) *Tracker {
	t.Helper()
	tr, err := New(store, testOrder)
	require.NoError(t, err)
	return tr
}

func TestNew_FreshSave(t *testing.T) {
	tr := createTestTracker(t, newMemStore())

	p := tr.Progress()
	assert.Equal(t, []string{"training"}, p.UnlockedArenas)
	assert.Empty(t, p.CompletedArenas)
	assert.Zero(t, p.EnemiesDefeated)
	assert.True(t, tr.Unlocked("training"))
	assert.False(t, tr.Unlocked("factory"))
}

func TestTracker_ArenaCleared(t *testing.T) {
	store := newMemStore()
	tr := createTestTracker(t, store)

	tr.EnemyDefeated("training", "dummy")
	tr.ArenaCleared("training", 40*time.Second)

	assert.True(t, tr.Unlocked("factory"))
	assert.False(t, tr.Unlocked("lab"))
	best, ok := tr.BestTime("training")
	require.True(t, ok)
	assert.Equal(t, 40*time.Second, best)
	assert.Equal(t, 1, store.saves)

	var saved Progress
	require.NoError(t, json.Unmarshal(store.items["progress"], &saved))
	assert.Equal(t, 1, saved.EnemiesDefeated)
	assert.Equal(t, []string{"training"}, saved.CompletedArenas)
	assert.Equal(t, 40.0, saved.Playtime)
}

func TestTracker_BestTimeKeepsFastest(t *testing.T) {
	tests := []struct {
		name   string
		second time.Duration
		want   time.Duration
	}{
		{"slower run keeps the record", 50 * time.Second, 30 * time.Second},
		{"faster run replaces it", 20 * time.Second, 20 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := createTestTracker(t, newMemStore())

			tr.ArenaCleared("lab", 30*time.Second)
			tr.ArenaCleared("lab", tt.second)

			best, ok := tr.BestTime("lab")
			require.True(t, ok)
			assert.Equal(t, tt.want, best)
			assert.Equal(t, []string{"lab"}, tr.Progress().CompletedArenas)
		})
	}
}

func TestTracker_PlayerDefeated(t *testing.T) {
	store := newMemStore()
	tr := createTestTracker(t, store)

	tr.PlayerDefeated("training", 12*time.Second)

	assert.Equal(t, 12.0, tr.Progress().Playtime)
	assert.Empty(t, tr.Progress().CompletedArenas)
	assert.Equal(t, 1, store.saves)
	_, ok := tr.BestTime("training")
	assert.False(t, ok)
}

func TestNew_ReloadsSavedProgress(t *testing.T) {
	store := newMemStore()
	first := createTestTracker(t, store)
	first.EnemyDefeated("training", "dummy")
	first.ArenaCleared("training", 10*time.Second)

	second := createTestTracker(t, store)

	assert.Equal(t, first.Progress(), second.Progress())
}

func TestNew_CorruptSaveStartsOver(t *testing.T) {
	store := newMemStore()
	store.items["progress"] = []byte("{not json")

	tr := createTestTracker(t, store)

	assert.Equal(t, []string{"training"}, tr.Progress().UnlockedArenas)
}

func TestNew_LoadError(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk gone")

	_, err := New(store, testOrder)

	assert.ErrorContains(t, err, "disk gone")
}

func TestTracker_SaveError(t *testing.T) {
	store := newMemStore()
	tr := createTestTracker(t, store)
	store.saveErr = errors.New("read-only")

	assert.ErrorContains(t, tr.Save(), "failed to save progress")
	assert.NotPanics(t, func() { tr.ArenaCleared("training", time.Second) })
	assert.True(t, tr.Unlocked("factory"), "state survives a failed save")
}

func TestTracker_ProgressIsACopy(t *testing.T) {
	tr := createTestTracker(t, newMemStore())

	p := tr.Progress()
	p.UnlockedArenas[0] = "lab"
	p.BestTimes["lab"] = 1

	assert.True(t, tr.Unlocked("training"))
	_, ok := tr.BestTime("lab")
	assert.False(t, ok)
}
