package entity

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/robobrawl/internal/domain/geom"
)

// FistState is the phase of a fist's charge/strike cycle
type FistState int

const (
	FistIdle FistState = iota
	FistCharging
	FistOutbound
	FistReturning
)

// String returns the string representation of the state
func (s FistState) String() string {
	switch s {
	case FistIdle:
		return "idle"
	case FistCharging:
		return "charging"
	case FistOutbound:
		return "outbound"
	case FistReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// FistRelease describes a released fist, returned to the owner so it can arm a dash
type FistRelease struct {
	Heavy bool
	DirX  float64
	DirY  float64
}

// Fist is one of the player's two chargeable weapons.
// X, Y is the fist center.
type Fist struct {
	Side  Side
	State FistState

	X, Y float64
	Size float64

	Charged   bool
	AirAttack bool

	TargetX, TargetY float64
	ChargeStarted    time.Time

	params FistParams
	growth *gween.Tween
}

// NewFist creates an idle fist on the given side
func NewFist(side Side, params FistParams) *Fist {
	return &Fist{
		Side:   side,
		Size:   params.Size,
		params: params,
		growth: gween.New(float32(params.Size), float32(params.ChargedSize),
			float32(params.ChargeTime.Seconds()), ease.Linear),
	}
}

// Busy reports whether the fist is charging or attacking
func (f *Fist) Busy() bool {
	return f.State != FistIdle
}

// Attacking reports whether the fist is out of the player's hand
func (f *Fist) Attacking() bool {
	return f.State == FistOutbound || f.State == FistReturning
}

// Striking reports whether the fist can still hit something
func (f *Fist) Striking() bool {
	return f.State == FistOutbound
}

// Press starts charging. Returns false while already charging or attacking.
func (f *Fist) Press(now time.Time) bool {
	if f.Busy() {
		return false
	}
	f.State = FistCharging
	f.ChargeStarted = now
	f.growth.Reset()
	return true
}

// ChargeDuration returns how long the fist has been charging
func (f *Fist) ChargeDuration(now time.Time) time.Duration {
	if f.State != FistCharging {
		return 0
	}
	return now.Sub(f.ChargeStarted)
}

// FullyCharged reports whether a release now would be a heavy strike
func (f *Fist) FullyCharged(now time.Time) bool {
	return f.State == FistCharging && f.ChargeDuration(now) >= f.params.ChargeTime
}

// Release fires the fist from (cx, cy) toward the pointer (tx, ty).
// Releasing without charging does nothing. A pointer exactly on the center
// has no direction; the fist drops back to idle without striking.
func (f *Fist) Release(now time.Time, cx, cy, tx, ty float64, airborne bool) (FistRelease, bool) {
	if f.State != FistCharging {
		return FistRelease{}, false
	}

	dx, dy, dist, ok := geom.Direction(cx, cy, tx, ty)
	if !ok {
		f.reset()
		return FistRelease{}, false
	}

	heavy := now.Sub(f.ChargeStarted) >= f.params.ChargeTime
	reach := f.params.MaxDistance
	f.Size = f.params.Size
	if heavy {
		reach = f.params.ChargedMaxDistance
		f.Size = f.params.ChargedSize
	}
	reach = math.Min(dist, reach)

	f.Charged = heavy
	f.AirAttack = airborne
	f.TargetX = cx + dx*reach
	f.TargetY = cy + dy*reach
	f.State = FistOutbound

	return FistRelease{Heavy: heavy, DirX: dx, DirY: dy}, true
}

// ForceReturn sends an outbound fist home, e.g. after it hit something
func (f *Fist) ForceReturn() {
	if f.State == FistOutbound {
		f.State = FistReturning
	}
}

// Update advances the fist one tick relative to the owner's center
func (f *Fist) Update(now time.Time, cx, cy float64) {
	switch f.State {
	case FistIdle:
		f.follow(cx, cy)
	case FistCharging:
		f.follow(cx, cy)
		size, _ := f.growth.Set(float32(now.Sub(f.ChargeStarted).Seconds()))
		f.Size = float64(size)
	case FistOutbound:
		speed := f.params.Speed
		if f.Charged {
			speed = f.params.ChargedSpeed
		}
		if !f.stepToward(f.TargetX, f.TargetY, speed) {
			f.State = FistReturning
		}
	case FistReturning:
		if !f.stepToward(cx, cy, f.params.ReturnSpeed) {
			f.reset()
		}
	}
}

// stepToward moves at most speed toward (x, y). Returns false once within one step.
func (f *Fist) stepToward(x, y, speed float64) bool {
	dx, dy, dist, ok := geom.Direction(f.X, f.Y, x, y)
	if !ok || dist <= speed {
		return false
	}
	f.X += dx * speed
	f.Y += dy * speed
	return true
}

func (f *Fist) follow(cx, cy float64) {
	offset := f.params.SideOffset
	if f.Side == SideLeft {
		offset = -offset
	}
	f.X = cx + offset
	f.Y = cy
}

func (f *Fist) reset() {
	f.State = FistIdle
	f.Charged = false
	f.AirAttack = false
	f.Size = f.params.Size
}

// Rect returns the fist hitbox
func (f *Fist) Rect() geom.Rect {
	return geom.CenteredRect(f.X, f.Y, f.Size)
}
