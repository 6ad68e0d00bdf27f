package ai

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
)

func decideBoss(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Boss
	st := &e.Boss

	if e.Enhanced && !st.Raging && e.HealthRatio() <= p.RageThreshold {
		st.Raging = true
		a.cue(CueRage, e)
	}

	d := distance(e, t)

	if st.Raging {
		if d > p.BarrageDistance && st.BarrageCooldown.Ready(now) {
			barrage(now, e, t, a)
			st.BarrageCooldown.Trigger(now, p.BarrageCooldown)
		}
		laser(now, e, t, d, a)
	}

	if st.JumpCooldown.Ready(now) {
		bossJump(now, e, t, a)
	}

	if d > p.PursueDistance {
		e.Dir = dirTo(e, t)
		if e.Grounded {
			e.X += e.Dir * e.MoveSpeed()
		} else {
			e.VX = geom.Clamp(e.VX+e.Dir, -p.AirControl, p.AirControl)
		}
		e.ClampX()
	}

	if st.ContactCooldown.Ready(now) {
		if d < p.ContactRange {
			if e.Rect().Intersects(t.Hurtbox) {
				a.strike(CauseContact, e.Params.ContactDamage, e.CenterX())
				st.ContactCooldown.Trigger(now, p.ContactCooldown)
			}
		} else if d > p.RangedDistance && st.RangedCooldown.Ready(now) {
			x, y := spawnOrigin(e)
			a.spawn(entity.NewBullet(now, x, y, t.CenterX(), t.CenterY(), p.Bullet, e.World))
			st.RangedCooldown.Trigger(now, p.RangedCooldown)
		}
	}

	if e.HealthRatio() <= p.SpecialThreshold && st.SpecialCooldown.Ready(now) {
		a.cue(CueShockwave, e)
		if geom.Distance(e.CenterX(), e.CenterY(), t.CenterX(), t.CenterY()) < p.SpecialRange {
			a.strike(CauseShockwave, p.SpecialDamage, e.CenterX())
		}
		st.SpecialCooldown.Trigger(now, p.SpecialCooldown)
	}
}

// barrage fans missiles around the target, spread evenly about straight ahead
func barrage(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Boss
	x, y := spawnOrigin(e)
	mid := float64(p.BarrageCount-1) / 2

	for i := 0; i < p.BarrageCount; i++ {
		rad := (float64(i) - mid) * p.BarrageSpread * math.Pi / 180
		tx := t.CenterX() + math.Sin(rad)*100
		ty := t.CenterY() + math.Cos(rad)*50
		a.spawn(entity.NewMissile(now, x, y, tx, ty, p.Bullet.Speed, p.Missile, e.World))
	}
}

// laser charges while the target is in range and fires a beam once the charge completes
func laser(now time.Time, e *entity.Enemy, t Target, d float64, a *Action) {
	p := e.Params.Boss
	st := &e.Boss

	if !st.LaserCharging {
		if d < p.LaserRange && st.LaserCycle.Ready(now) {
			st.LaserCharging = true
			st.LaserStarted = now
			a.cue(CueLaserCharge, e)
		}
		return
	}

	if now.Sub(st.LaserStarted) <= p.LaserCharge {
		return
	}
	x, y := spawnOrigin(e)
	a.spawn(entity.NewBeam(now, x, y, t.CenterX(), t.CenterY(), p.Beam, e.World))
	st.LaserCharging = false
	st.LaserCycle.Trigger(now, p.LaserCycle)
}

// LaserProgress returns how far the boss beam has charged, from 0 to 1.
// It is 0 for anything that is not charging.
func LaserProgress(now time.Time, e *entity.Enemy) float64 {
	if e.Kind != entity.KindBoss || !e.Boss.LaserCharging {
		return 0
	}
	charge := e.Params.Boss.LaserCharge.Seconds()
	if charge <= 0 {
		return 1
	}
	tw := gween.New(0, 1, float32(charge), ease.InQuad)
	v, _ := tw.Set(float32(now.Sub(e.Boss.LaserStarted).Seconds()))
	return float64(v)
}

// bossCanJump is looser than the shared check so the boss follows across gaps
func bossCanJump(e *entity.Enemy, t Target) bool {
	if !e.Grounded || e.Disabled() {
		return false
	}
	d := distance(e, t)
	hd := heightDiff(e, t)
	if hd > 20 && d < 250 {
		return true
	}
	return math.Abs(hd) < 30 && d > 80 && d < 200
}

func bossJump(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Boss
	st := &e.Boss
	d := distance(e, t)
	hd := heightDiff(e, t)

	switch {
	case hd > 30:
		if d < 200 && bossCanJump(e, t) {
			leap(e, t, a)
			st.JumpCooldown.Trigger(now, p.JumpCooldown)
		} else if d < 350 && e.Grounded {
			plat, ok := e.Platforms.NearestAbove(e.CenterX(), e.Y, p.PathSearchRange)
			if ok {
				jumpTo(e, plat.CenterX(), a)
				st.JumpCooldown.Trigger(now, p.PathJumpCooldown)
			}
		}
	case d > 100 && d < 250 && math.Abs(hd) < 50:
		if bossCanJump(e, t) {
			leap(e, t, a)
			st.JumpCooldown.Trigger(now, p.HopJumpCooldown)
		}
	}
}

// leap is a grounded jump with a fixed push toward the target
func leap(e *entity.Enemy, t Target, a *Action) {
	force := 2.0
	if distance(e, t) > 100 {
		force = 3
	}
	e.Jump()
	e.Dir = dirTo(e, t)
	e.VX = e.Dir * force
	a.cue(CueJump, e)
}

// jumpTo jumps toward x with a push scaled by the distance
func jumpTo(e *entity.Enemy, x float64, a *Action) {
	e.Dir = 1
	if x <= e.X {
		e.Dir = -1
	}
	e.Jump()
	e.VX = e.Dir * math.Min(math.Abs(x-e.X)/50, 3)
	a.cue(CueJump, e)
}
