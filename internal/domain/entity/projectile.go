package entity

import (
	"math"
	"time"

	"github.com/younwookim/robobrawl/internal/domain/geom"
)

// ProjectileKind identifies the flight model of a projectile
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileMissile
	ProjectileBeam
	ProjectileTracking
)

// String returns the string representation of the kind
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileMissile:
		return "missile"
	case ProjectileBeam:
		return "beam"
	case ProjectileTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// ProjectileParams configures one projectile kind
type ProjectileParams struct {
	Size  float64
	Speed float64

	// Homing is the fraction of the desired velocity blended in per tick
	Homing float64

	// Lifetime of zero means the projectile lives until it leaves the arena
	Lifetime time.Duration

	// Beam only
	Width     float64
	GrowSpeed float64
	MaxLength float64
	Linger    time.Duration
}

// DefaultBulletParams returns the boss bullet tuning
func DefaultBulletParams() ProjectileParams {
	return ProjectileParams{Size: 10, Speed: 5}
}

// DefaultMissileParams returns the barrage missile tuning
func DefaultMissileParams() ProjectileParams {
	return ProjectileParams{Size: 12, Speed: 6, Homing: 0.1}
}

// DefaultBeamParams returns the boss laser tuning
func DefaultBeamParams() ProjectileParams {
	return ProjectileParams{Width: 15, GrowSpeed: 20, MaxLength: 400, Linger: ms(500)}
}

// DefaultTrackingParams returns the caster shot tuning
func DefaultTrackingParams() ProjectileParams {
	return ProjectileParams{Size: 12, Speed: 4, Homing: 0.05, Lifetime: ms(5000)}
}

// Projectile is an enemy-owned hazard. X, Y is the center for bullets and the
// origin for beams.
type Projectile struct {
	Kind   ProjectileKind
	X, Y   float64
	VX, VY float64
	Size   float64
	Speed  float64
	Homing float64
	Alive  bool

	SpawnedAt time.Time
	Lifetime  time.Duration

	// Beam state
	DirX, DirY float64
	Length     float64
	MaxLength  float64
	GrowSpeed  float64
	Width      float64
	Linger     time.Duration
	fullAt     time.Time

	// Applied marks a sustained hazard that already dealt its damage
	Applied bool

	World World
}

func newProjectile(kind ProjectileKind, now time.Time, x, y float64, p ProjectileParams, world World) *Projectile {
	return &Projectile{
		Kind:      kind,
		X:         x,
		Y:         y,
		Size:      p.Size,
		Speed:     p.Speed,
		Homing:    p.Homing,
		Alive:     true,
		SpawnedAt: now,
		Lifetime:  p.Lifetime,
		World:     world,
	}
}

// aimAt sets the velocity toward (tx, ty) at speed, or (fallbackVX, 0) when the target is the origin
func (p *Projectile) aimAt(tx, ty, speed, fallbackVX float64) {
	dx, dy, _, ok := geom.Direction(p.X, p.Y, tx, ty)
	if !ok {
		p.VX, p.VY = fallbackVX, 0
		return
	}
	p.VX = dx * speed
	p.VY = dy * speed
}

// NewBullet creates a straight shot from (x, y) toward (tx, ty)
func NewBullet(now time.Time, x, y, tx, ty float64, params ProjectileParams, world World) *Projectile {
	p := newProjectile(ProjectileBullet, now, x, y, params, world)
	p.aimAt(tx, ty, params.Speed, 0)
	return p
}

// NewMissile creates a weakly homing shot. It leaves at bullet speed and
// blends toward its own speed while steering.
func NewMissile(now time.Time, x, y, tx, ty, launchSpeed float64, params ProjectileParams, world World) *Projectile {
	p := newProjectile(ProjectileMissile, now, x, y, params, world)
	p.aimAt(tx, ty, launchSpeed, 0)
	return p
}

// NewTracking creates a caster shot that steers toward its target until its lifetime runs out
func NewTracking(now time.Time, x, y, tx, ty float64, params ProjectileParams, world World) *Projectile {
	p := newProjectile(ProjectileTracking, now, x, y, params, world)
	p.aimAt(tx, ty, params.Speed, params.Speed)
	return p
}

// NewBeam creates a beam anchored at (x, y) that grows toward (tx, ty)
func NewBeam(now time.Time, x, y, tx, ty float64, params ProjectileParams, world World) *Projectile {
	p := newProjectile(ProjectileBeam, now, x, y, params, world)
	p.DirX, p.DirY = 1, 0
	if dx, dy, _, ok := geom.Direction(x, y, tx, ty); ok {
		p.DirX, p.DirY = dx, dy
	}
	p.Width = params.Width
	p.GrowSpeed = params.GrowSpeed
	p.MaxLength = params.MaxLength
	p.Linger = params.Linger
	return p
}

// Kill removes the projectile at the end of the tick
func (p *Projectile) Kill() {
	p.Alive = false
}

// SingleUse reports whether the projectile dies on its first hit
func (p *Projectile) SingleUse() bool {
	return p.Kind != ProjectileBeam
}

// Update advances the projectile one tick. target is the body it steers toward.
func (p *Projectile) Update(now time.Time, target geom.Rect) {
	if !p.Alive {
		return
	}

	switch p.Kind {
	case ProjectileBeam:
		p.updateBeam(now)
		return
	case ProjectileTracking:
		if p.Lifetime > 0 && now.Sub(p.SpawnedAt) > p.Lifetime {
			p.Kill()
			return
		}
		if p.World.OutOfBounds(p.X, p.Y) {
			p.Kill()
			return
		}
		p.steer(target, true)
	case ProjectileMissile:
		p.steer(target, false)
	}

	p.X += p.VX
	p.Y += p.VY

	if p.Kind != ProjectileTracking && p.World.OutOfBounds(p.X, p.Y) {
		p.Kill()
	}
}

// steer blends the velocity toward the target center by the homing strength
func (p *Projectile) steer(target geom.Rect, capSpeed bool) {
	if target.Empty() || p.Homing <= 0 {
		return
	}
	dx, dy, _, ok := geom.Direction(p.X, p.Y, target.CenterX(), target.CenterY())
	if !ok {
		return
	}
	p.VX += (dx*p.Speed - p.VX) * p.Homing
	p.VY += (dy*p.Speed - p.VY) * p.Homing

	if !capSpeed {
		return
	}
	if speed := math.Hypot(p.VX, p.VY); speed > p.Speed {
		p.VX = p.VX / speed * p.Speed
		p.VY = p.VY / speed * p.Speed
	}
}

func (p *Projectile) updateBeam(now time.Time) {
	p.Length = math.Min(p.Length+p.GrowSpeed, p.MaxLength)
	if p.Length < p.MaxLength {
		return
	}
	if p.fullAt.IsZero() {
		p.fullAt = now
		return
	}
	if now.Sub(p.fullAt) > p.Linger {
		p.Kill()
	}
}

// EndPoint returns the far end of a beam, or the center for other kinds
func (p *Projectile) EndPoint() (float64, float64) {
	if p.Kind != ProjectileBeam {
		return p.X, p.Y
	}
	return p.X + p.DirX*p.Length, p.Y + p.DirY*p.Length
}

// Rect returns the collision rectangle
func (p *Projectile) Rect() geom.Rect {
	if p.Kind == ProjectileBeam {
		ex, ey := p.EndPoint()
		return geom.SegmentBounds(p.X, p.Y, ex, ey, p.Width)
	}
	return geom.CenteredRect(p.X, p.Y, p.Size)
}
