package system

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/younwookim/robobrawl/internal/application/state"
	"github.com/younwookim/robobrawl/internal/domain/ai"
	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
)

// Resolver runs one arena. Each Tick advances the player, the enemies and
// their projectiles, then applies the combat rules between them.
type Resolver struct {
	arena   *Arena
	player  *entity.Player
	enemies []*entity.Enemy

	clock   Clock
	effects EffectsSink
	world   donburi.World

	hitstopFrames  int
	shakeIntensity float64

	state    state.GameState
	started  time.Time
	elapsed  time.Duration
	defeated int
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithEffects sends presentation feedback to sink
func WithEffects(sink EffectsSink) ResolverOption {
	return func(r *Resolver) {
		if sink != nil {
			r.effects = sink
		}
	}
}

// WithEventWorld publishes outcome events into w instead of a private world
func WithEventWorld(w donburi.World) ResolverOption {
	return func(r *Resolver) {
		if w != nil {
			r.world = w
		}
	}
}

// WithFeedback sets the hitstop length and shake strength requested on heavy hits
func WithFeedback(cfg config.FeedbackConfig) ResolverOption {
	return func(r *Resolver) {
		r.hitstopFrames = cfg.Hitstop.Frames
		r.shakeIntensity = cfg.ScreenShake.Intensity
	}
}

// NewResolver creates a resolver for arena. The arena's entities are owned by the resolver from now on.
func NewResolver(arena *Arena, clock Clock, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		arena:   arena,
		player:  arena.Player,
		enemies: append([]*entity.Enemy(nil), arena.Enemies...),
		clock:   clock,
		effects: NopEffects{},
		state:   state.StatePlaying,
		started: clock.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.world == nil {
		r.world = donburi.NewWorld()
	}
	return r
}

// Events returns the world outcome events are published to
func (r *Resolver) Events() donburi.World {
	return r.world
}

// Arena returns the arena being fought
func (r *Resolver) Arena() *Arena {
	return r.arena
}

// Player returns the player
func (r *Resolver) Player() *entity.Player {
	return r.player
}

// Enemies returns the enemies still in the arena
func (r *Resolver) Enemies() []*entity.Enemy {
	return r.enemies
}

// State returns the arena state
func (r *Resolver) State() state.GameState {
	return r.state
}

// Finished reports whether the arena reached an end condition
func (r *Resolver) Finished() bool {
	return r.state.Finished()
}

// Defeated returns the number of enemies removed so far
func (r *Resolver) Defeated() int {
	return r.defeated
}

// Elapsed returns the fight time, frozen once the arena is finished
func (r *Resolver) Elapsed() time.Duration {
	if r.Finished() {
		return r.elapsed
	}
	return r.clock.Now().Sub(r.started)
}

// Pause stops ticking until Resume
func (r *Resolver) Pause() {
	if r.state == state.StatePlaying {
		r.state = state.StatePaused
	}
}

// Resume continues a paused fight
func (r *Resolver) Resume() {
	if r.state == state.StatePaused {
		r.state = state.StatePlaying
	}
}

// Tick advances the arena by one frame. It is a no-op once the arena is
// finished or while paused.
func (r *Resolver) Tick(in entity.Input) {
	if r.state != state.StatePlaying {
		return
	}
	now := r.clock.Now()

	r.updatePlayer(now, in)
	r.updateEnemies(now)
	r.updateProjectiles(now)
	r.resolveFists(now)
	r.resolveSlide(now)
	r.resolveProjectileHits(now)
	r.player.UpdateCombo(now)
	r.removeDead()
	r.checkEnd(now)

	events.ProcessAllEvents(r.world)
}

func (r *Resolver) updatePlayer(now time.Time, in entity.Input) {
	p := r.player
	p.Update(now, in)

	if in.Counter {
		if hits, ok := p.TryCounter(now, r.enemies); ok && hits > 0 {
			r.effects.ScreenShake(r.shakeIntensity)
		}
	}
	if in.Skill && p.ActivateSkill(now) {
		r.areaClear(now)
	}
}

// areaClear removes every enemy projectile and launches the enemies near the player
func (r *Resolver) areaClear(now time.Time) {
	p := r.player
	px, py := p.CenterX(), p.CenterY()

	for _, e := range r.enemies {
		e.ClearProjectiles()
		if !e.Alive {
			continue
		}
		if geom.Distance(px, py, e.CenterX(), e.CenterY()) > p.Params.SkillRadius {
			continue
		}
		dir := 1.0
		if e.CenterX() < px {
			dir = -1
		}
		e.Launch(now, dir*p.Params.SkillKnockback, -p.Params.SkillLift)
	}
	r.effects.ScreenShake(r.shakeIntensity)
}

func (r *Resolver) updateEnemies(now time.Time) {
	target := ai.TargetOf(r.player)

	for _, e := range r.enemies {
		if !e.Alive {
			continue
		}
		e.Update(now)

		a := ai.Decide(now, e, target)
		e.Projectiles = append(e.Projectiles, a.Spawned...)
		for _, s := range a.Strikes {
			r.hurtPlayer(now, entity.Hit{Amount: s.Damage, SourceX: s.SourceX, HasSource: true})
		}
		for _, c := range a.Cues {
			r.effects.Cue(c)
		}
	}
}

func (r *Resolver) updateProjectiles(now time.Time) {
	hurtbox := r.player.Hurtbox()
	for _, e := range r.enemies {
		for _, p := range e.Projectiles {
			p.Update(now, hurtbox)
		}
		e.CompactProjectiles()
	}
}

// resolveFists checks every striking fist against every living enemy.
// A fist hits at most one enemy and then heads home. Effects fire only
// when the hit lands on a vulnerable enemy.
func (r *Resolver) resolveFists(now time.Time) {
	p := r.player
	for _, e := range r.enemies {
		if !e.Alive {
			continue
		}
		for _, f := range p.Fists() {
			if !e.Alive {
				break
			}
			if !f.Striking() || !f.Rect().Intersects(e.Rect()) {
				continue
			}

			p.RegisterHit(now)
			damage := p.FistDamage(f)
			applied := e.TakeDamage(now, entity.HitFrom(damage, f.X, f.Charged, f.Charged))
			f.ForceReturn()
			if !applied {
				continue
			}

			r.effects.HitEffect(e.CenterX(), e.CenterY(), f.Charged)
			r.effects.Sound(SoundHit)

			if f.Charged {
				r.effects.Hitstop(r.hitstopFrames)
				r.effects.ScreenShake(r.shakeIntensity)
			}
		}
	}
}

func (r *Resolver) resolveSlide(now time.Time) {
	p := r.player
	if !p.Alive || !p.IsSliding() {
		return
	}

	body := p.Hurtbox()
	for _, e := range r.enemies {
		if !e.Alive || !body.Intersects(e.Rect()) {
			continue
		}
		applied := e.TakeDamage(now, entity.HitFrom(p.Params.SlideDamage, p.CenterX(), true, false))
		e.Launch(now, p.SlideDir*p.Params.SlideKnockback, -p.Params.SlideLift)
		if applied {
			r.effects.HitEffect(e.CenterX(), e.CenterY(), false)
		}
	}
}

// resolveProjectileHits applies enemy projectiles to the player. Defense
// nullifies the damage, but the projectile is spent either way.
func (r *Resolver) resolveProjectileHits(now time.Time) {
	hurtbox := r.player.Hurtbox()
	for _, e := range r.enemies {
		for _, p := range e.Projectiles {
			if !p.Alive || p.Applied || !p.Rect().Intersects(hurtbox) {
				continue
			}

			r.hurtPlayer(now, entity.Hit{Amount: 1})

			if p.SingleUse() {
				p.Kill()
			} else {
				p.Applied = true
			}
		}
		e.CompactProjectiles()
	}
}

func (r *Resolver) hurtPlayer(now time.Time, hit entity.Hit) {
	defending := r.player.IsDefending()
	switch {
	case r.player.TakeDamage(now, hit):
		r.effects.ScreenShake(r.shakeIntensity / 2)
		r.effects.Sound(SoundHit)
	case defending:
		r.effects.Sound(SoundDefend)
	}
}

func (r *Resolver) removeDead() {
	live := r.enemies[:0]
	for _, e := range r.enemies {
		if e.Alive {
			live = append(live, e)
			continue
		}
		r.defeated++
		r.effects.Sound(SoundDeath)
		EnemyDefeatedEvent.Publish(r.world, EnemyDefeated{
			Arena: r.arena.ID,
			ID:    e.ID,
			Kind:  e.Kind,
			X:     e.CenterX(),
			Y:     e.CenterY(),
		})
	}
	for i := len(live); i < len(r.enemies); i++ {
		r.enemies[i] = nil
	}
	r.enemies = live
}

func (r *Resolver) checkEnd(now time.Time) {
	switch {
	case !r.player.Alive:
		r.finish(now, state.StateGameOver)
		PlayerDefeatedEvent.Publish(r.world, PlayerDefeated{Arena: r.arena.ID, Elapsed: r.elapsed})
	case len(r.enemies) == 0:
		r.finish(now, state.StateStageClear)
		ArenaClearedEvent.Publish(r.world, ArenaCleared{Arena: r.arena.ID, Elapsed: r.elapsed})
	}
}

func (r *Resolver) finish(now time.Time, s state.GameState) {
	r.state = s
	r.elapsed = now.Sub(r.started)
}
