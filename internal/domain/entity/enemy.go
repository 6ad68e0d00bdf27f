package entity

import (
	"time"

	"github.com/younwookim/robobrawl/internal/domain/platform"
)

// Kind is the enemy archetype
type Kind int

const (
	KindDummy Kind = iota
	KindCharger
	KindElite
	KindCaster
	KindBoss
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDummy:
		return "dummy"
	case KindCharger:
		return "charger"
	case KindElite:
		return "elite"
	case KindCaster:
		return "caster"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name to a Kind
func ParseKind(s string) (Kind, bool) {
	for k := KindDummy; k <= KindBoss; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindDummy, false
}

// ChargerState is the dash state of a charger
type ChargerState struct {
	Dashing      bool
	DashCooldown Cooldown
	JumpCooldown Cooldown
}

// EliteState is the shield and leap state of an elite
type EliteState struct {
	Shield         Timer
	ShieldCooldown Cooldown
	LeapCooldown   Cooldown
}

// CasterState holds the caster's cooldowns
type CasterState struct {
	AttackCooldown   Cooldown
	TeleportCooldown Cooldown
	JumpCooldown     Cooldown
}

// BossState holds the boss phases and attack cooldowns
type BossState struct {
	Raging bool

	ContactCooldown Cooldown
	RangedCooldown  Cooldown
	SpecialCooldown Cooldown
	BarrageCooldown Cooldown
	JumpCooldown    Cooldown

	LaserCharging bool
	LaserStarted  time.Time
	LaserCycle    Cooldown
}

// Enemy is one AI-controlled combatant. Behavior lives in package ai;
// Enemy holds the state shared by every archetype plus the per-kind state.
type Enemy struct {
	Combatant

	ID     EntityID
	Kind   Kind
	Params EnemyParams

	// Enhanced unlocks the boss rage phase
	Enhanced bool

	// Dir is the facing / patrol direction, -1 or 1
	Dir float64

	// Projectiles are owned by the enemy and iterated by the resolver
	Projectiles []*Projectile

	Charger ChargerState
	Elite   EliteState
	Caster  CasterState
	Boss    BossState
}

// NewEnemy creates an enemy of the given kind at (x, y)
func NewEnemy(id EntityID, kind Kind, x, y float64, params EnemyParams, world World, platforms *platform.Registry) *Enemy {
	e := &Enemy{
		Combatant: NewCombatant(x, y, params.Body, world, platforms),
		ID:        id,
		Kind:      kind,
		Params:    params,
		Dir:       1,
	}
	e.Elite.Shield = NewTimer(params.Elite.ShieldDuration)
	return e
}

// Update runs physics for one tick and applies horizontal drag
func (e *Enemy) Update(now time.Time) {
	if !e.Alive {
		return
	}
	e.Combatant.Update(now)

	if e.Grounded {
		e.VX = 0
	} else {
		e.VX *= e.Params.AirDrag
	}

	e.Elite.Shield.Expire(now)
}

// Shielded reports whether incoming damage is halved
func (e *Enemy) Shielded() bool {
	return e.Kind == KindElite && e.Elite.Shield.Active
}

// MoveSpeed returns the current horizontal speed, raised while the boss rages
func (e *Enemy) MoveSpeed() float64 {
	if e.Kind == KindBoss && e.Boss.Raging {
		return e.Params.Speed * e.Params.Boss.RageSpeedMultiplier
	}
	return e.Params.Speed
}

// TakeDamage applies a hit after the archetype's damage modifiers
func (e *Enemy) TakeDamage(now time.Time, hit Hit) bool {
	switch {
	case e.Shielded():
		hit.Amount = max(1, hit.Amount/2)
	case e.Kind == KindBoss && hit.Amount < e.Params.Boss.FullDamage:
		hit.Amount = max(1, hit.Amount/2)
	}

	if !e.Combatant.TakeDamage(now, hit) {
		return false
	}
	if hit.Knockback {
		e.cancelDash(now)
	}
	return true
}

// Launch forces a knockback and lift regardless of invincibility
func (e *Enemy) Launch(now time.Time, vx, vy float64) {
	if !e.Alive {
		return
	}
	e.Combatant.Launch(now, vx, vy)
	e.cancelDash(now)
}

func (e *Enemy) cancelDash(now time.Time) {
	if e.Kind != KindCharger {
		return
	}
	e.Charger.Dashing = false
	e.Charger.DashCooldown.Trigger(now, e.Params.Charger.KnockbackCooldown)
}

// LiveProjectiles returns the number of live projectiles
func (e *Enemy) LiveProjectiles() int {
	n := 0
	for _, p := range e.Projectiles {
		if p.Alive {
			n++
		}
	}
	return n
}

// ClearProjectiles removes every projectile the enemy owns
func (e *Enemy) ClearProjectiles() {
	for _, p := range e.Projectiles {
		p.Kill()
	}
	e.Projectiles = e.Projectiles[:0]
}

// CompactProjectiles drops dead projectiles, keeping the order of the live ones
func (e *Enemy) CompactProjectiles() {
	live := e.Projectiles[:0]
	for _, p := range e.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(e.Projectiles); i++ {
		e.Projectiles[i] = nil
	}
	e.Projectiles = live
}
