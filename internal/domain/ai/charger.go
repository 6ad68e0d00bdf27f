package ai

import (
	"time"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
)

func decideCharger(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Charger
	st := &e.Charger
	d := distance(e, t)

	switch {
	case heightDiff(e, t) > p.JumpHeight && d < p.JumpRange && st.JumpCooldown.Ready(now) && canJump(e, t):
		if jumpTowards(e, t, a) {
			st.JumpCooldown.Trigger(now, p.JumpCooldown)
		}
	case d < p.TriggerRange && st.DashCooldown.Ready(now) && !st.Dashing:
		st.Dashing = true
		e.Dir = dirTo(e, t)
		a.cue(CueDash, e)
	}

	if st.Dashing {
		dash(now, e, t, a)
		return
	}

	if e.Grounded {
		patrol(e, e.Params.Speed)
		return
	}
	if e.X <= 0 {
		e.Dir = 1
	} else if e.X >= maxX(e) {
		e.Dir = -1
	}
}

// dash moves the charger along its facing. Hitting a wall or the player ends it.
func dash(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Charger
	st := &e.Charger

	next := e.X + e.Dir*p.ChargeSpeed
	if next <= 0 || next >= maxX(e) {
		st.Dashing = false
		st.DashCooldown.Trigger(now, p.Cooldown)
		e.Dir = -e.Dir
		e.X = geom.Clamp(next, 0, maxX(e))
		return
	}
	e.X = next

	if e.Rect().Intersects(t.Hurtbox) {
		a.strike(CauseContact, e.Params.ContactDamage, e.CenterX())
		st.Dashing = false
		st.DashCooldown.Trigger(now, p.Cooldown)
	}
}

// patrol walks along Dir and turns around at the arena edges
func patrol(e *entity.Enemy, speed float64) {
	next := e.X + e.Dir*speed
	switch {
	case next <= 0:
		e.X = 0
		e.Dir = 1
	case next >= maxX(e):
		e.X = maxX(e)
		e.Dir = -1
	default:
		e.X = next
	}
}
