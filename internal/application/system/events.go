package system

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/younwookim/robobrawl/internal/domain/entity"
)

// EnemyDefeated is published when a dead enemy is removed from the arena
type EnemyDefeated struct {
	Arena string
	ID    entity.EntityID
	Kind  entity.Kind
	X, Y  float64
}

// ArenaCleared is published once when the last enemy is removed
type ArenaCleared struct {
	Arena   string
	Elapsed time.Duration
}

// PlayerDefeated is published once when the player dies
type PlayerDefeated struct {
	Arena   string
	Elapsed time.Duration
}

// Outcome events. They are queued during a tick and delivered after it.
var (
	EnemyDefeatedEvent  = events.NewEventType[EnemyDefeated]()
	ArenaClearedEvent   = events.NewEventType[ArenaCleared]()
	PlayerDefeatedEvent = events.NewEventType[PlayerDefeated]()
)

// ProgressRecorder receives fight outcomes
type ProgressRecorder interface {
	EnemyDefeated(arena, kind string)
	ArenaCleared(arena string, elapsed time.Duration)
	PlayerDefeated(arena string, elapsed time.Duration)
}

// SubscribeProgress forwards the outcome events published in w to rec
func SubscribeProgress(w donburi.World, rec ProgressRecorder) {
	EnemyDefeatedEvent.Subscribe(w, func(_ donburi.World, e EnemyDefeated) {
		rec.EnemyDefeated(e.Arena, e.Kind.String())
	})
	ArenaClearedEvent.Subscribe(w, func(_ donburi.World, e ArenaCleared) {
		rec.ArenaCleared(e.Arena, e.Elapsed)
	})
	PlayerDefeatedEvent.Subscribe(w, func(_ donburi.World, e PlayerDefeated) {
		rec.PlayerDefeated(e.Arena, e.Elapsed)
	})
}
