package system

import (
	"time"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
)

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// WorldFrom builds the arena rules from the tuning and the arena layout
func WorldFrom(t *config.TuningConfig, a *config.ArenaConfig) entity.World {
	w := entity.DefaultWorld()
	if a.Size.Width > 0 {
		w.Width = a.Size.Width
	}
	if a.Size.Height > 0 {
		w.Height = a.Size.Height
	}
	if a.FloorY > 0 {
		w.FloorY = a.FloorY
	}
	if t == nil {
		return w
	}
	if t.World.Gravity > 0 {
		w.Gravity = t.World.Gravity
	}
	if t.World.KnockbackDamping > 0 {
		w.KnockbackDamping = t.World.KnockbackDamping
	}
	if t.World.FloorSupport > 0 {
		w.FloorSupport = t.World.FloorSupport
	}
	return w
}

// BodyParamsFrom converts a body section
func BodyParamsFrom(c config.BodyConfig) entity.BodyParams {
	return entity.BodyParams{
		Width:              c.Width,
		Height:             c.Height,
		MaxHealth:          c.MaxHealth,
		JumpSpeed:          c.JumpSpeed,
		DoubleJumpSpeed:    c.DoubleJumpSpeed,
		InvincibleDuration: seconds(c.Invincible),
		StunDuration:       seconds(c.Stun),
		KnockbackDuration:  seconds(c.Knockback),
		KnockbackForce:     c.KnockbackForce,
		KnockbackScale:     c.KnockbackScale,
	}
}

// PlayerParamsFrom converts the player section
func PlayerParamsFrom(c config.PlayerConfig) entity.PlayerParams {
	return entity.PlayerParams{
		Body: BodyParamsFrom(c.Body),
		Fist: entity.FistParams{
			Size:               c.Fist.Size,
			ChargedSize:        c.Fist.ChargedSize,
			MaxDistance:        c.Fist.MaxDistance,
			ChargedMaxDistance: c.Fist.ChargedMaxDistance,
			Speed:              c.Fist.Speed,
			ChargedSpeed:       c.Fist.ChargedSpeed,
			ReturnSpeed:        c.Fist.ReturnSpeed,
			ChargeTime:         seconds(c.Fist.ChargeTime),
			SideOffset:         c.Fist.SideOffset,
		},
		Speed:                c.Speed,
		DefenseDuration:      seconds(c.Defense.Duration),
		DefenseCooldown:      seconds(c.Defense.Cooldown),
		PerfectWindow:        seconds(c.Defense.PerfectWindow),
		CounterWindow:        seconds(c.Defense.CounterWindow),
		CounterRadius:        c.Defense.CounterRadius,
		CounterDamage:        c.Defense.CounterDamage,
		CounterPerfectDamage: c.Defense.CounterPerfectDamage,
		ComboWindow:          seconds(c.Combo.Window),
		ComboMax:             c.Combo.Max,
		SlideDuration:        seconds(c.Slide.Duration),
		SlideSpeed:           c.Slide.Speed,
		SlideDamage:          c.Slide.Damage,
		SlideKnockback:       c.Slide.Knockback,
		SlideLift:            c.Slide.Lift,
		DashDuration:         seconds(c.Dash.Duration),
		DashDistance:         c.Dash.Distance,
		DashSpeed:            c.Dash.Speed,
		DropThroughDuration:  seconds(c.DropThrough),
		SkillCooldown:        seconds(c.Skill.Cooldown),
		SkillRadius:          c.Skill.Radius,
		SkillKnockback:       c.Skill.Knockback,
		SkillLift:            c.Skill.Lift,
		ChargeDamage:         c.ChargeDamage,
		AirAttackMultiplier:  c.AirAttackMultiplier,
	}
}

// ProjectileParamsFrom converts one projectile section
func ProjectileParamsFrom(c config.ProjectileConfig) entity.ProjectileParams {
	return entity.ProjectileParams{
		Size:      c.Size,
		Speed:     c.Speed,
		Homing:    c.Homing,
		Lifetime:  seconds(c.Lifetime),
		Width:     c.Width,
		GrowSpeed: c.GrowSpeed,
		MaxLength: c.MaxLength,
		Linger:    seconds(c.Linger),
	}
}

// EnemyParamsFrom returns the tuning for kind. Missing sections keep the built-in defaults.
func EnemyParamsFrom(t *config.TuningConfig, kind entity.Kind) entity.EnemyParams {
	p := entity.DefaultEnemyParams(kind)
	if t == nil {
		return p
	}

	c, ok := t.Enemies[kind.String()]
	if !ok {
		return p
	}

	p.Body = BodyParamsFrom(c.Body)
	p.Speed = c.Speed
	p.AirDrag = c.AirDrag
	p.JumpAbove = c.JumpAbove
	p.JumpReach = c.JumpReach
	p.ContactDamage = c.ContactDamage

	projectile := func(name string, fallback entity.ProjectileParams) entity.ProjectileParams {
		if pc, ok := t.Projectiles[name]; ok {
			return ProjectileParamsFrom(pc)
		}
		return fallback
	}

	if ch := c.Charger; ch != nil {
		p.Charger = entity.ChargerParams{
			ChargeSpeed:       ch.ChargeSpeed,
			TriggerRange:      ch.TriggerRange,
			Cooldown:          seconds(ch.Cooldown),
			KnockbackCooldown: seconds(ch.KnockbackCooldown),
			JumpHeight:        ch.JumpHeight,
			JumpRange:         ch.JumpRange,
			JumpCooldown:      seconds(ch.JumpCooldown),
		}
	}

	if el := c.Elite; el != nil {
		p.Elite = entity.EliteParams{
			ShieldRange:    el.ShieldRange,
			ShieldDuration: seconds(el.ShieldDuration),
			ShieldCooldown: seconds(el.ShieldCooldown),
			LeapRange:      el.LeapRange,
			LeapCooldown:   seconds(el.LeapCooldown),
			PursueDistance: el.PursueDistance,
		}
	}

	if ca := c.Caster; ca != nil {
		p.Caster = entity.CasterParams{
			AttackRange:      ca.AttackRange,
			AttackCooldown:   seconds(ca.AttackCooldown),
			Shot:             projectile("tracking", p.Caster.Shot),
			TeleportTrigger:  ca.TeleportTrigger,
			TeleportRange:    ca.TeleportRange,
			TeleportCooldown: seconds(ca.TeleportCooldown),
			RetreatDistance:  ca.RetreatDistance,
			ApproachMargin:   ca.ApproachMargin,
			JumpHeight:       ca.JumpHeight,
			JumpRange:        ca.JumpRange,
			JumpCooldown:     seconds(ca.JumpCooldown),
			HopSpeed:         ca.HopSpeed,
			HopLift:          ca.HopLift,
		}
	}

	if b := c.Boss; b != nil {
		p.Boss = entity.BossParams{
			FullDamage:          b.FullDamage,
			PursueDistance:      b.PursueDistance,
			AirControl:          b.AirControl,
			ContactRange:        b.ContactRange,
			ContactCooldown:     seconds(b.ContactCooldown),
			RangedDistance:      b.RangedDistance,
			RangedCooldown:      seconds(b.RangedCooldown),
			Bullet:              projectile("bullet", p.Boss.Bullet),
			SpecialThreshold:    b.SpecialThreshold,
			SpecialCooldown:     seconds(b.SpecialCooldown),
			SpecialRange:        b.SpecialRange,
			SpecialDamage:       b.SpecialDamage,
			RageThreshold:       b.RageThreshold,
			RageSpeedMultiplier: b.RageSpeedMultiplier,
			BarrageDistance:     b.BarrageDistance,
			BarrageCount:        b.BarrageCount,
			BarrageSpread:       b.BarrageSpread,
			BarrageCooldown:     seconds(b.BarrageCooldown),
			Missile:             projectile("missile", p.Boss.Missile),
			LaserRange:          b.LaserRange,
			LaserCharge:         seconds(b.LaserCharge),
			LaserCycle:          seconds(b.LaserCycle),
			Beam:                projectile("beam", p.Boss.Beam),
			JumpCooldown:        seconds(b.JumpCooldown),
			PathJumpCooldown:    seconds(b.PathJumpCooldown),
			HopJumpCooldown:     seconds(b.HopJumpCooldown),
			PathSearchRange:     b.PathSearchRange,
		}
	}

	return p
}
