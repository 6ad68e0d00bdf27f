package entity

import (
	"math"
	"time"

	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/domain/platform"
)

// dropThroughClearance is how far above the floor a platform must be to drop through it
const dropThroughClearance = 10

// Player is the input-driven combatant with two fists
type Player struct {
	Combatant
	Params PlayerParams

	LeftFist  *Fist
	RightFist *Fist

	FacingRight bool

	Crouching bool
	Slide     Timer
	SlideDir  float64

	Defense         Timer
	DefenseCooldown Cooldown

	// Counter is open after a perfect defense; PerfectBonus raises its damage
	Counter      Timer
	PerfectBonus bool

	Combo   int
	LastHit time.Time

	Dash         Timer
	DashDir      float64
	DashDistance float64

	Skill Cooldown
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y float64, params PlayerParams, world World, platforms *platform.Registry) *Player {
	return &Player{
		Combatant:   NewCombatant(x, y, params.Body, world, platforms),
		Params:      params,
		LeftFist:    NewFist(SideLeft, params.Fist),
		RightFist:   NewFist(SideRight, params.Fist),
		FacingRight: true,
		Slide:       NewTimer(params.SlideDuration),
		Defense:     NewTimer(params.DefenseDuration),
		Counter:     NewTimer(params.CounterWindow),
		Dash:        NewTimer(params.DashDuration),
	}
}

// Fists returns both fists, left first
func (p *Player) Fists() [2]*Fist {
	return [2]*Fist{p.LeftFist, p.RightFist}
}

// IsDefending reports whether incoming damage is currently blocked
func (p *Player) IsDefending() bool {
	return p.Defense.Active
}

// IsSliding reports whether a slide is in progress
func (p *Player) IsSliding() bool {
	return p.Slide.Active
}

// CounterReady reports whether a counter attack can be fired at now
func (p *Player) CounterReady(now time.Time) bool {
	return p.Counter.Within(now, p.Params.CounterWindow)
}

// Hurtbox returns the damageable rectangle. Crouching and sliding halve its height.
func (p *Player) Hurtbox() geom.Rect {
	if p.Crouching || p.Slide.Active {
		h := p.Height / 2
		return geom.NewRect(p.X, p.Y+p.Height-h, p.Width, h)
	}
	return p.Rect()
}

// Update advances the player one tick: status timers, input, abilities, physics, fists
func (p *Player) Update(now time.Time, in Input) {
	if !p.Alive {
		return
	}

	p.UpdateStatus(now)
	p.handleInput(now, in)

	if p.Defense.Expire(now) {
		p.DefenseCooldown.Trigger(now, p.Params.DefenseCooldown)
	}
	p.Counter.Expire(now)
	p.updateSlide(now)
	p.updateDash(now)

	p.Integrate(now)

	cx, cy := p.CenterX(), p.CenterY()
	p.LeftFist.Update(now, cx, cy)
	p.RightFist.Update(now, cx, cy)
}

func (p *Player) handleInput(now time.Time, in Input) {
	dir := in.Direction()
	p.VX = dir * p.Params.Speed
	if dir != 0 {
		p.FacingRight = dir > 0
	}

	if in.JumpPressed {
		p.Jump()
	}

	if in.Down {
		p.dropThrough(now)
	}

	if in.Defend && !p.Defense.Active && p.DefenseCooldown.Ready(now) {
		p.Defense.Start(now)
	}

	if in.Crouch {
		switch {
		case in.Moving() && !p.Slide.Active:
			p.Slide.Start(now)
			p.SlideDir = dir
			p.Crouching = false
		case !in.Moving():
			p.Crouching = true
			p.Slide.Stop()
		}
	} else {
		p.Crouching = false
	}

	p.handleFist(now, p.LeftFist, in.AttackLeft, in)
	p.handleFist(now, p.RightFist, in.AttackRight, in)
}

func (p *Player) handleFist(now time.Time, f *Fist, held bool, in Input) {
	if held {
		f.Press(now)
		return
	}
	if f.State != FistCharging {
		return
	}
	release, ok := f.Release(now, p.CenterX(), p.CenterY(), in.TargetX, in.TargetY, !p.Grounded)
	if ok && release.Heavy {
		p.startDash(now, release.DirX)
	}
}

func (p *Player) dropThrough(now time.Time) {
	if p.Platforms == nil || !p.Platforms.IsOnPlatform(p.Rect()) {
		return
	}
	if p.Bottom() >= p.World.FloorY-dropThroughClearance {
		return
	}
	p.SkipPlatformsUntil = now.Add(p.Params.DropThroughDuration)
	p.Grounded = false
	p.VY = 1
}

func (p *Player) updateSlide(now time.Time) {
	if !p.Slide.Active {
		return
	}
	if p.Slide.Elapsed(now) < p.Params.SlideDuration {
		p.VX = p.SlideDir * p.Params.SlideSpeed
		return
	}
	p.Slide.Stop()
}

func (p *Player) startDash(now time.Time, dirX float64) {
	p.Dash.Start(now)
	p.DashDir = -1
	if dirX > 0 {
		p.DashDir = 1
	}
	p.DashDistance = p.Params.DashDistance
}

// updateDash moves the player along the dash independent of movement input.
// The step shrinks as the dash nears its end.
func (p *Player) updateDash(now time.Time) {
	if !p.Dash.Active {
		return
	}
	elapsed := p.Dash.Elapsed(now)
	if elapsed >= p.Params.DashDuration {
		p.Dash.Stop()
		return
	}
	progress := float64(elapsed) / float64(p.Params.DashDuration)
	remaining := p.DashDistance - progress*p.DashDistance
	if remaining > 0 {
		p.X += p.DashDir * math.Min(p.Params.DashSpeed, remaining/10)
	}
}

// TakeDamage applies an incoming hit with the defense rules.
// While defending no damage is taken; a hit inside the perfect window opens the counter.
// Returns true when health was lost.
func (p *Player) TakeDamage(now time.Time, hit Hit) bool {
	if !p.Alive {
		return false
	}
	if p.Defense.Active {
		if p.Defense.Within(now, p.Params.PerfectWindow) {
			p.Counter.Start(now)
			p.PerfectBonus = true
		}
		return false
	}
	if !p.Combatant.TakeDamage(now, hit) {
		return false
	}
	p.Combo = 0
	return true
}

// TryCounter fires the counter attack at every living enemy within range.
// Returns the number of enemies hit, or false when the counter window is closed.
func (p *Player) TryCounter(now time.Time, enemies []*Enemy) (int, bool) {
	if !p.Alive || !p.CounterReady(now) {
		return 0, false
	}

	damage := p.Params.CounterDamage
	if p.PerfectBonus {
		damage = p.Params.CounterPerfectDamage
	}

	hits := 0
	cx := p.CenterX()
	for _, e := range enemies {
		if !e.Alive || math.Abs(e.X-p.X) > p.Params.CounterRadius {
			continue
		}
		if e.TakeDamage(now, HitFrom(damage, cx, true, true)) {
			hits++
		}
	}

	p.Counter.Stop()
	p.PerfectBonus = false
	return hits, true
}

// ActivateSkill starts the area skill cooldown. Returns false while cooling down.
func (p *Player) ActivateSkill(now time.Time) bool {
	if !p.Alive || !p.Skill.Ready(now) {
		return false
	}
	p.Skill.Trigger(now, p.Params.SkillCooldown)
	return true
}

// RegisterHit counts a landed hit toward the combo
func (p *Player) RegisterHit(now time.Time) {
	p.Combo++
	if p.Combo > p.Params.ComboMax {
		p.Combo = p.Params.ComboMax
	}
	p.LastHit = now
}

// UpdateCombo drops the combo once no hit has landed for longer than the combo window
func (p *Player) UpdateCombo(now time.Time) {
	if p.Combo > 0 && now.Sub(p.LastHit) > p.Params.ComboWindow {
		p.Combo = 0
	}
}

// ComboMultiplier returns the damage scale for the current combo
func (p *Player) ComboMultiplier() float64 {
	switch {
	case p.Combo >= 5:
		return 1.5
	case p.Combo >= 3:
		return 1.25
	default:
		return 1.0
	}
}

// FistDamage returns the damage a fist hit deals with the current combo
func (p *Player) FistDamage(f *Fist) int {
	base := 1
	if f.Charged {
		base = p.Params.ChargeDamage
	}
	damage := int(float64(base) * p.ComboMultiplier())
	if f.AirAttack {
		damage = int(float64(damage) * p.Params.AirAttackMultiplier)
	}
	return damage
}
