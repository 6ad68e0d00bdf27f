package ai

import (
	"time"

	"github.com/younwookim/robobrawl/internal/domain/entity"
)

func decideElite(now time.Time, e *entity.Enemy, t Target, a *Action) {
	p := e.Params.Elite
	st := &e.Elite
	d := distance(e, t)

	// Shield runs independently of movement
	if st.ShieldCooldown.Ready(now) && d < p.ShieldRange {
		st.Shield.Start(now)
		st.ShieldCooldown.Trigger(now, p.ShieldCooldown)
		a.cue(CueShield, e)
	}

	if d < p.LeapRange && st.LeapCooldown.Ready(now) && canJump(e, t) {
		if jumpTowards(e, t, a) {
			st.LeapCooldown.Trigger(now, p.LeapCooldown)
		}
	}

	if d > p.PursueDistance {
		e.Dir = dirTo(e, t)
		e.X += e.Dir * e.MoveSpeed()
		e.ClampX()
	}
}
