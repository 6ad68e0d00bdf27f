package ai

import (
	"math"
	"time"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
)

func decideCaster(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Caster
	st := &e.Caster
	d := distance(e, t)

	switch {
	case d < p.TeleportTrigger && st.TeleportCooldown.Ready(now) && e.Platforms.Len() > 0:
		// A failed search still spends the cooldown
		st.TeleportCooldown.Trigger(now, p.TeleportCooldown)
		teleport(e, t, a)
		return
	case d <= p.AttackRange && st.AttackCooldown.Ready(now):
		x, y := spawnOrigin(e)
		a.spawn(entity.NewTracking(now, x, y, t.CenterX(), t.CenterY(), p.Shot, e.World))
		st.AttackCooldown.Trigger(now, p.AttackCooldown)
	default:
		keepDistance(e, t, d)
	}

	if st.JumpCooldown.Ready(now) && math.Abs(heightDiff(e, t)) > p.JumpHeight && d < p.JumpRange {
		if casterJump(e, t, a) {
			st.JumpCooldown.Trigger(now, p.JumpCooldown)
		}
	}
}

// teleport moves the caster on top of the platform farthest from the target
// among those within range
func teleport(e *entity.Enemy, t Target, a *Action) bool {
	p := e.Params.Caster
	self := e.CenterX()
	target := t.CenterX()

	var (
		best     geom.Rect
		found    bool
		farthest float64
	)
	for _, plat := range e.Platforms.Platforms() {
		cx := plat.CenterX()
		if math.Abs(cx-self) > p.TeleportRange || cx < 0 || cx > maxX(e) {
			continue
		}
		if d := math.Abs(cx - target); !found || d > farthest {
			best, found, farthest = plat, true, d
		}
	}
	if !found {
		return false
	}

	e.X = best.X + (best.W-e.Width)/2
	e.Y = best.Y - e.Height
	e.VY = 0
	e.Grounded = true
	e.DoubleJumpAvailable = true
	a.cue(CueTeleport, e)
	return true
}

// keepDistance retreats when the target is too close and closes in at half
// speed when it is beyond attack range
func keepDistance(e *entity.Enemy, t Target, d float64) {
	p := e.Params.Caster
	switch {
	case d < p.RetreatDistance:
		e.Dir = -dirTo(e, t)
		next := e.X + e.Dir*e.MoveSpeed()
		if next > 0 && next < maxX(e) {
			e.X = next
		}
	case d > p.AttackRange+p.ApproachMargin:
		e.Dir = dirTo(e, t)
		e.X += e.Dir * e.MoveSpeed() * 0.5
		e.ClampX()
	}
}

// casterJump climbs toward a higher target or hops off a ledge toward a lower one
func casterJump(e *entity.Enemy, t Target, a *Action) bool {
	if !e.Grounded || e.Disabled() {
		return false
	}
	p := e.Params.Caster
	hd := heightDiff(e, t)
	d := distance(e, t)

	switch {
	case hd > 50 && d < 250:
		return jumpTowards(e, t, a)
	case hd < -30 && d < 200:
		e.Dir = dirTo(e, t)
		e.VX = e.Dir * p.HopSpeed
		e.VY = -p.HopLift
		e.Grounded = false
		a.cue(CueJump, e)
		return true
	}
	return false
}
