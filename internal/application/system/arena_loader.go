package system

import (
	"fmt"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/domain/platform"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
)

// Arena is a ready-to-fight arena: rules, platforms, the player and the enemies
type Arena struct {
	ID        string
	Name      string
	World     entity.World
	Platforms *platform.Registry
	Player    *entity.Player
	Enemies   []*entity.Enemy
}

// LoadArena converts an arena layout into live entities using the tuning.
// A nil tuning falls back to the built-in defaults.
func LoadArena(t *config.TuningConfig, cfg *config.ArenaConfig) (*Arena, error) {
	world := WorldFrom(t, cfg)

	rects := make([]geom.Rect, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		rects = append(rects, geom.NewRect(p.X, p.Y, p.Width, p.Height))
	}
	platforms := platform.New(world.Width, world.Height, rects...)

	playerParams := entity.DefaultPlayerParams()
	if t != nil {
		playerParams = PlayerParamsFrom(t.Player)
	}
	player := entity.NewPlayer(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, playerParams, world, platforms)
	standIfOnFloor(&player.Combatant)

	enemies := make([]*entity.Enemy, 0, len(cfg.Enemies))
	for i, spawn := range cfg.Enemies {
		kind, ok := entity.ParseKind(spawn.Kind)
		if !ok {
			return nil, fmt.Errorf("failed to load arena %s: unknown enemy kind %q", cfg.ID, spawn.Kind)
		}

		params := EnemyParamsFrom(t, kind)
		y := world.FloorY - params.Body.Height
		if spawn.Y != nil {
			y = *spawn.Y
		}

		e := entity.NewEnemy(entity.EntityID(i+1), kind, spawn.X, y, params, world, platforms)
		e.Enhanced = spawn.Enhanced
		standIfOnFloor(&e.Combatant)
		enemies = append(enemies, e)
	}

	return &Arena{
		ID:        cfg.ID,
		Name:      cfg.Name,
		World:     world,
		Platforms: platforms,
		Player:    player,
		Enemies:   enemies,
	}, nil
}

func standIfOnFloor(c *entity.Combatant) {
	if c.Bottom() >= c.World.FloorY {
		c.Y = c.World.FloorY - c.Height
		c.Grounded = true
	}
}
