package entity

import "time"

// BodyParams configures the shared combat body of the player and every enemy
type BodyParams struct {
	Width, Height float64
	MaxHealth     int

	JumpSpeed       float64
	DoubleJumpSpeed float64

	InvincibleDuration time.Duration
	StunDuration       time.Duration
	KnockbackDuration  time.Duration

	// KnockbackForce is the impulse magnitude of a knockback hit;
	// KnockbackScale multiplies it (the boss takes half).
	KnockbackForce float64
	KnockbackScale float64
}

// FistParams configures the fist charge/strike cycle
type FistParams struct {
	Size        float64
	ChargedSize float64

	MaxDistance        float64
	ChargedMaxDistance float64

	Speed        float64
	ChargedSpeed float64
	ReturnSpeed  float64

	ChargeTime time.Duration

	// SideOffset is the horizontal rest offset from the player center
	SideOffset float64
}

// PlayerParams configures the player controller
type PlayerParams struct {
	Body BodyParams
	Fist FistParams

	Speed float64

	DefenseDuration time.Duration
	DefenseCooldown time.Duration
	PerfectWindow   time.Duration

	CounterWindow        time.Duration
	CounterRadius        float64
	CounterDamage        int
	CounterPerfectDamage int

	ComboWindow time.Duration
	ComboMax    int

	SlideDuration  time.Duration
	SlideSpeed     float64
	SlideDamage    int
	SlideKnockback float64
	SlideLift      float64

	DashDuration time.Duration
	DashDistance float64
	DashSpeed    float64

	DropThroughDuration time.Duration

	SkillCooldown  time.Duration
	SkillRadius    float64
	SkillKnockback float64
	SkillLift      float64

	ChargeDamage        int
	AirAttackMultiplier float64
}

// DefaultBodyParams returns the player-sized body defaults
func DefaultBodyParams() BodyParams {
	return BodyParams{
		Width:              50,
		Height:             60,
		MaxHealth:          3,
		JumpSpeed:          15,
		DoubleJumpSpeed:    12,
		InvincibleDuration: ms(500),
		StunDuration:       ms(100),
		KnockbackDuration:  ms(300),
		KnockbackForce:     30,
		KnockbackScale:     1,
	}
}

// DefaultFistParams returns the default fist tuning
func DefaultFistParams() FistParams {
	return FistParams{
		Size:               20,
		ChargedSize:        35,
		MaxDistance:        80,
		ChargedMaxDistance: 150,
		Speed:              10,
		ChargedSpeed:       7,
		ReturnSpeed:        8,
		ChargeTime:         ms(1000),
		SideOffset:         20,
	}
}

// DefaultPlayerParams returns the default player tuning
func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		Body:                 DefaultBodyParams(),
		Fist:                 DefaultFistParams(),
		Speed:                5,
		DefenseDuration:      ms(1000),
		DefenseCooldown:      ms(3000),
		PerfectWindow:        ms(100),
		CounterWindow:        ms(300),
		CounterRadius:        120,
		CounterDamage:        2,
		CounterPerfectDamage: 3,
		ComboWindow:          ms(2000),
		ComboMax:             10,
		SlideDuration:        ms(300),
		SlideSpeed:           8,
		SlideDamage:          1,
		SlideKnockback:       15,
		SlideLift:            8,
		DashDuration:         ms(300),
		DashDistance:         100,
		DashSpeed:            8,
		DropThroughDuration:  ms(200),
		SkillCooldown:        ms(10000),
		SkillRadius:          250,
		SkillKnockback:       20,
		SkillLift:            10,
		ChargeDamage:         2,
		AirAttackMultiplier:  1.5,
	}
}

// EnemyParams configures one enemy archetype. Only the section matching
// the enemy's kind is read.
type EnemyParams struct {
	Body    BodyParams
	Speed   float64
	AirDrag float64 // horizontal velocity kept per airborne tick

	// Shared jump eligibility: the target must be at least JumpAbove higher
	// and within JumpReach horizontally.
	JumpAbove float64
	JumpReach float64

	ContactDamage int

	Charger ChargerParams
	Elite   EliteParams
	Caster  CasterParams
	Boss    BossParams
}

// ChargerParams configures the dash-and-patrol grunt
type ChargerParams struct {
	ChargeSpeed       float64
	TriggerRange      float64
	Cooldown          time.Duration
	KnockbackCooldown time.Duration

	JumpHeight   float64
	JumpRange    float64
	JumpCooldown time.Duration
}

// EliteParams configures the shielded elite
type EliteParams struct {
	ShieldRange    float64
	ShieldDuration time.Duration
	ShieldCooldown time.Duration

	LeapRange    float64
	LeapCooldown time.Duration

	PursueDistance float64
}

// CasterParams configures the kiting, teleporting caster
type CasterParams struct {
	AttackRange    float64
	AttackCooldown time.Duration
	Shot           ProjectileParams

	TeleportTrigger  float64
	TeleportRange    float64
	TeleportCooldown time.Duration

	RetreatDistance float64
	ApproachMargin  float64

	JumpHeight   float64
	JumpRange    float64
	JumpCooldown time.Duration
	HopSpeed     float64
	HopLift      float64
}

// BossParams configures the multi-phase boss
type BossParams struct {
	// FullDamage is the smallest hit that is not halved
	FullDamage int

	PursueDistance float64
	AirControl     float64

	ContactRange    float64
	ContactCooldown time.Duration

	RangedDistance float64
	RangedCooldown time.Duration
	Bullet         ProjectileParams

	SpecialThreshold float64
	SpecialCooldown  time.Duration
	SpecialRange     float64
	SpecialDamage    int

	RageThreshold       float64
	RageSpeedMultiplier float64

	BarrageDistance float64
	BarrageCount    int
	BarrageSpread   float64 // degrees between shots
	BarrageCooldown time.Duration
	Missile         ProjectileParams

	LaserRange  float64
	LaserCharge time.Duration
	LaserCycle  time.Duration
	Beam        ProjectileParams

	JumpCooldown     time.Duration
	PathJumpCooldown time.Duration
	HopJumpCooldown  time.Duration
	PathSearchRange  float64
}

func enemyBody(w, h float64, health int, jump, doubleJump float64) BodyParams {
	b := DefaultBodyParams()
	b.Width, b.Height = w, h
	b.MaxHealth = health
	b.JumpSpeed, b.DoubleJumpSpeed = jump, doubleJump
	return b
}

// DefaultEnemyParams returns the default tuning for a kind
func DefaultEnemyParams(kind Kind) EnemyParams {
	p := EnemyParams{
		AirDrag:       0.95,
		JumpAbove:     50,
		JumpReach:     150,
		ContactDamage: 1,
	}

	switch kind {
	case KindDummy:
		p.Body = enemyBody(40, 70, 5, 0, 0)
	case KindCharger:
		p.Body = enemyBody(45, 50, 3, 14, 10)
		p.Speed = 3
		p.Charger = ChargerParams{
			ChargeSpeed:       8,
			TriggerRange:      200,
			Cooldown:          ms(2000),
			KnockbackCooldown: ms(1500),
			JumpHeight:        50,
			JumpRange:         100,
			JumpCooldown:      ms(3000),
		}
	case KindElite:
		p.Body = enemyBody(50, 70, 6, 14, 10)
		p.Speed = 2
		p.Elite = EliteParams{
			ShieldRange:    150,
			ShieldDuration: ms(2000),
			ShieldCooldown: ms(8000),
			LeapRange:      200,
			LeapCooldown:   ms(4000),
			PursueDistance: 80,
		}
	case KindCaster:
		p.Body = enemyBody(40, 60, 4, 13, 9)
		p.Speed = 2.5
		p.Caster = CasterParams{
			AttackRange:      300,
			AttackCooldown:   ms(2000),
			Shot:             DefaultTrackingParams(),
			TeleportTrigger:  80,
			TeleportRange:    400,
			TeleportCooldown: ms(5000),
			RetreatDistance:  150,
			ApproachMargin:   50,
			JumpHeight:       60,
			JumpRange:        300,
			JumpCooldown:     ms(2000),
			HopSpeed:         3,
			HopLift:          8,
		}
	case KindBoss:
		p.Body = enemyBody(80, 100, 10, 16, 12)
		p.Body.KnockbackScale = 0.5
		p.Speed = 2
		p.AirDrag = 0.9
		p.Boss = BossParams{
			FullDamage:          2,
			PursueDistance:      50,
			AirControl:          4,
			ContactRange:        100,
			ContactCooldown:     ms(1500),
			RangedDistance:      200,
			RangedCooldown:      ms(2000),
			Bullet:              DefaultBulletParams(),
			SpecialThreshold:    0.5,
			SpecialCooldown:     ms(5000),
			SpecialRange:        200,
			SpecialDamage:       1,
			RageThreshold:       0.3,
			RageSpeedMultiplier: 1.5,
			BarrageDistance:     250,
			BarrageCount:        5,
			BarrageSpread:       15,
			BarrageCooldown:     ms(6000),
			Missile:             DefaultMissileParams(),
			LaserRange:          300,
			LaserCharge:         ms(2000),
			LaserCycle:          ms(8000),
			Beam:                DefaultBeamParams(),
			JumpCooldown:        ms(3000),
			PathJumpCooldown:    ms(2500),
			HopJumpCooldown:     ms(3500),
			PathSearchRange:     150,
		}
	}
	return p
}
