// Package progress keeps the player's arena progress and lifetime stats on disk.
package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// ItemStore is the key/value storage a Tracker persists into.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Progress is the saved state. Times are in seconds.
type Progress struct {
	UnlockedArenas  []string           `json:"unlockedArenas"`
	CompletedArenas []string           `json:"completedArenas"`
	BestTimes       map[string]float64 `json:"bestTimes"`
	EnemiesDefeated int                `json:"enemiesDefeated"`
	Playtime        float64            `json:"playtime"`
}

// Tracker records fight outcomes and unlocks arenas in order
type Tracker struct {
	store ItemStore
	order []string
	data  Progress
}

// Open opens the per-user gdata storage for appName
func Open(appName string, order []string) (*Tracker, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save storage: %w", err)
	}
	return New(m, order)
}

// New loads the tracker from store. order lists arena ids in unlock order;
// the first one is always unlocked.
func New(store ItemStore, order []string) (*Tracker, error) {
	t := &Tracker{
		store: store,
		order: order,
		data:  Progress{BestTimes: map[string]float64{}},
	}

	data, err := store.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &t.data); err != nil {
			log.Printf("Warning: Could not parse saved progress, starting over: %v", err)
			t.data = Progress{BestTimes: map[string]float64{}}
		}
	}
	if t.data.BestTimes == nil {
		t.data.BestTimes = map[string]float64{}
	}
	if len(order) > 0 {
		t.unlock(order[0])
	}
	return t, nil
}

// Progress returns a copy of the current state
func (t *Tracker) Progress() Progress {
	p := t.data
	p.UnlockedArenas = slices.Clone(t.data.UnlockedArenas)
	p.CompletedArenas = slices.Clone(t.data.CompletedArenas)
	p.BestTimes = make(map[string]float64, len(t.data.BestTimes))
	for k, v := range t.data.BestTimes {
		p.BestTimes[k] = v
	}
	return p
}

// Unlocked reports whether the arena can be played
func (t *Tracker) Unlocked(arena string) bool {
	return slices.Contains(t.data.UnlockedArenas, arena)
}

// BestTime returns the fastest clear of an arena
func (t *Tracker) BestTime(arena string) (time.Duration, bool) {
	s, ok := t.data.BestTimes[arena]
	if !ok {
		return 0, false
	}
	return time.Duration(s * float64(time.Second)), true
}

// EnemyDefeated counts one defeated enemy. It is saved with the next outcome.
func (t *Tracker) EnemyDefeated(arena, kind string) {
	t.data.EnemiesDefeated++
}

// ArenaCleared records a clear: best time, completion, the next unlock and playtime
func (t *Tracker) ArenaCleared(arena string, elapsed time.Duration) {
	secs := elapsed.Seconds()
	if best, ok := t.data.BestTimes[arena]; !ok || secs < best {
		t.data.BestTimes[arena] = secs
	}
	if !slices.Contains(t.data.CompletedArenas, arena) {
		t.data.CompletedArenas = append(t.data.CompletedArenas, arena)
	}
	if i := slices.Index(t.order, arena); i >= 0 && i+1 < len(t.order) {
		t.unlock(t.order[i+1])
	}
	t.data.Playtime += secs
	t.save()
}

// PlayerDefeated records the playtime of a lost fight
func (t *Tracker) PlayerDefeated(arena string, elapsed time.Duration) {
	t.data.Playtime += elapsed.Seconds()
	t.save()
}

// Save writes the current state to the store
func (t *Tracker) Save() error {
	data, err := json.Marshal(t.data)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}
	if err := t.store.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (t *Tracker) save() {
	if err := t.Save(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (t *Tracker) unlock(arena string) {
	if !slices.Contains(t.data.UnlockedArenas, arena) {
		t.data.UnlockedArenas = append(t.data.UnlockedArenas, arena)
	}
}
