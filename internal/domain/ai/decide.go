// Package ai decides what each enemy does on a tick. Every archetype reads the
// same Target snapshot and reports its cross-entity effects through an Action.
package ai

import (
	"math"
	"time"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
)

// Target is the view of the player that enemies decide against
type Target struct {
	X, Y    float64
	W, H    float64
	Hurtbox geom.Rect
}

// TargetOf snapshots the player for this tick
func TargetOf(p *entity.Player) Target {
	return Target{
		X:       p.X,
		Y:       p.Y,
		W:       p.Width,
		H:       p.Height,
		Hurtbox: p.Hurtbox(),
	}
}

// CenterX returns the horizontal center of the target body
func (t Target) CenterX() float64 { return t.X + t.W/2 }

// CenterY returns the vertical center of the target body
func (t Target) CenterY() float64 { return t.Y + t.H/2 }

// Cause identifies where a strike on the player came from
type Cause int

const (
	CauseContact Cause = iota
	CauseShockwave
)

// String returns the string representation of the cause
func (c Cause) String() string {
	switch c {
	case CauseContact:
		return "contact"
	case CauseShockwave:
		return "shockwave"
	default:
		return "unknown"
	}
}

// Strike asks the resolver to damage the player
type Strike struct {
	Cause   Cause
	Damage  int
	SourceX float64
}

// CueKind is a presentation-only notification
type CueKind int

const (
	CueTeleport CueKind = iota
	CueShield
	CueRage
	CueLaserCharge
	CueShockwave
	CueDash
	CueJump
)

// String returns the string representation of the cue
func (k CueKind) String() string {
	switch k {
	case CueTeleport:
		return "teleport"
	case CueShield:
		return "shield"
	case CueRage:
		return "rage"
	case CueLaserCharge:
		return "laser_charge"
	case CueShockwave:
		return "shockwave"
	case CueDash:
		return "dash"
	case CueJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Cue is a fire-and-forget effect at a world position
type Cue struct {
	Kind CueKind
	X, Y float64
}

// Action collects what an enemy did to the rest of the world this tick.
// Movement is applied to the enemy directly.
type Action struct {
	Strikes []Strike
	Spawned []*entity.Projectile
	Cues    []Cue
}

// Empty reports whether the action carries no effects
func (a Action) Empty() bool {
	return len(a.Strikes) == 0 && len(a.Spawned) == 0 && len(a.Cues) == 0
}

// HasCue reports whether a cue of the given kind was emitted
func (a Action) HasCue(kind CueKind) bool {
	for _, c := range a.Cues {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

func (a *Action) strike(cause Cause, damage int, sourceX float64) {
	a.Strikes = append(a.Strikes, Strike{Cause: cause, Damage: damage, SourceX: sourceX})
}

func (a *Action) spawn(p *entity.Projectile) {
	a.Spawned = append(a.Spawned, p)
}

func (a *Action) cue(kind CueKind, e *entity.Enemy) {
	a.Cues = append(a.Cues, Cue{Kind: kind, X: e.CenterX(), Y: e.CenterY()})
}

// Decide runs the archetype's behavior for one tick. Dead, stunned and
// knocked-back enemies do nothing beyond physics.
func Decide(now time.Time, e *entity.Enemy, t Target) Action {
	var a Action
	if !e.Alive || e.Disabled() {
		return a
	}

	switch e.Kind {
	case entity.KindDummy:
	case entity.KindCharger:
		decideCharger(now, e, t, &a)
	case entity.KindElite:
		decideElite(now, e, t, &a)
	case entity.KindCaster:
		decideCaster(now, e, t, &a)
	case entity.KindBoss:
		decideBoss(now, e, t, &a)
	}
	return a
}

// distance is the horizontal gap between the enemy and the target origins
func distance(e *entity.Enemy, t Target) float64 {
	return math.Abs(e.X - t.X)
}

// heightDiff is positive when the target stands higher than the enemy
func heightDiff(e *entity.Enemy, t Target) float64 {
	return e.Y - t.Y
}

func dirTo(e *entity.Enemy, t Target) float64 {
	if t.X > e.X {
		return 1
	}
	return -1
}

func canJump(e *entity.Enemy, t Target) bool {
	if !e.Grounded || e.Disabled() {
		return false
	}
	if t.Y >= e.Y-e.Params.JumpAbove {
		return false
	}
	return distance(e, t) <= e.Params.JumpReach
}

// jumpTowards jumps (or air-jumps) and adds horizontal drift toward the target
func jumpTowards(e *entity.Enemy, t Target, a *Action) bool {
	if !e.Jump() {
		return false
	}
	e.VX = geom.Clamp(e.VX+2*dirTo(e, t), -5, 5)
	a.cue(CueJump, e)
	return true
}

func spawnOrigin(e *entity.Enemy) (float64, float64) {
	return e.CenterX(), e.CenterY()
}

func maxX(e *entity.Enemy) float64 {
	return e.World.Width - e.Width
}
