package config

// TuningConfig is the root config for tuning.json.
// Durations are in seconds, distances in pixels, speeds in pixels per tick.
type TuningConfig struct {
	Display     DisplayConfig               `json:"display"`
	World       WorldConfig                 `json:"world"`
	Player      PlayerConfig                `json:"player"`
	Enemies     map[string]EnemyConfig      `json:"enemies"`
	Projectiles map[string]ProjectileConfig `json:"projectiles"`
	Feedback    FeedbackConfig              `json:"feedback"`

	// Arenas lists arena ids in unlock order
	Arenas []string `json:"arenas"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	Gravity          float64 `json:"gravity"`
	KnockbackDamping float64 `json:"knockbackDamping"`
	FloorSupport     float64 `json:"floorSupport"`
}

// BodyConfig is the shared combat body of the player and the enemies
type BodyConfig struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	MaxHealth       int     `json:"maxHealth"`
	JumpSpeed       float64 `json:"jumpSpeed"`
	DoubleJumpSpeed float64 `json:"doubleJumpSpeed"`
	Invincible      float64 `json:"invincible"`
	Stun            float64 `json:"stun"`
	Knockback       float64 `json:"knockback"`
	KnockbackForce  float64 `json:"knockbackForce"`
	KnockbackScale  float64 `json:"knockbackScale"`
}

type PlayerConfig struct {
	Body    BodyConfig    `json:"body"`
	Fist    FistConfig    `json:"fist"`
	Speed   float64       `json:"speed"`
	Defense DefenseConfig `json:"defense"`
	Combo   ComboConfig   `json:"combo"`
	Slide   SlideConfig   `json:"slide"`
	Dash    DashConfig    `json:"dash"`
	Skill   SkillConfig   `json:"skill"`

	DropThrough         float64 `json:"dropThrough"`
	ChargeDamage        int     `json:"chargeDamage"`
	AirAttackMultiplier float64 `json:"airAttackMultiplier"`
}

type FistConfig struct {
	Size               float64 `json:"size"`
	ChargedSize        float64 `json:"chargedSize"`
	MaxDistance        float64 `json:"maxDistance"`
	ChargedMaxDistance float64 `json:"chargedMaxDistance"`
	Speed              float64 `json:"speed"`
	ChargedSpeed       float64 `json:"chargedSpeed"`
	ReturnSpeed        float64 `json:"returnSpeed"`
	ChargeTime         float64 `json:"chargeTime"`
	SideOffset         float64 `json:"sideOffset"`
}

type DefenseConfig struct {
	Duration             float64 `json:"duration"`
	Cooldown             float64 `json:"cooldown"`
	PerfectWindow        float64 `json:"perfectWindow"`
	CounterWindow        float64 `json:"counterWindow"`
	CounterRadius        float64 `json:"counterRadius"`
	CounterDamage        int     `json:"counterDamage"`
	CounterPerfectDamage int     `json:"counterPerfectDamage"`
}

type ComboConfig struct {
	Window float64 `json:"window"`
	Max    int     `json:"max"`
}

type SlideConfig struct {
	Duration  float64 `json:"duration"`
	Speed     float64 `json:"speed"`
	Damage    int     `json:"damage"`
	Knockback float64 `json:"knockback"`
	Lift      float64 `json:"lift"`
}

type DashConfig struct {
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
}

type SkillConfig struct {
	Cooldown  float64 `json:"cooldown"`
	Radius    float64 `json:"radius"`
	Knockback float64 `json:"knockback"`
	Lift      float64 `json:"lift"`
}

// EnemyConfig tunes one archetype. Only the block matching the archetype is read.
type EnemyConfig struct {
	Body          BodyConfig `json:"body"`
	Speed         float64    `json:"speed"`
	AirDrag       float64    `json:"airDrag"`
	JumpAbove     float64    `json:"jumpAbove"`
	JumpReach     float64    `json:"jumpReach"`
	ContactDamage int        `json:"contactDamage"`

	Charger *ChargerConfig `json:"charger,omitempty"`
	Elite   *EliteConfig   `json:"elite,omitempty"`
	Caster  *CasterConfig  `json:"caster,omitempty"`
	Boss    *BossConfig    `json:"boss,omitempty"`
}

type ChargerConfig struct {
	ChargeSpeed       float64 `json:"chargeSpeed"`
	TriggerRange      float64 `json:"triggerRange"`
	Cooldown          float64 `json:"cooldown"`
	KnockbackCooldown float64 `json:"knockbackCooldown"`
	JumpHeight        float64 `json:"jumpHeight"`
	JumpRange         float64 `json:"jumpRange"`
	JumpCooldown      float64 `json:"jumpCooldown"`
}

type EliteConfig struct {
	ShieldRange    float64 `json:"shieldRange"`
	ShieldDuration float64 `json:"shieldDuration"`
	ShieldCooldown float64 `json:"shieldCooldown"`
	LeapRange      float64 `json:"leapRange"`
	LeapCooldown   float64 `json:"leapCooldown"`
	PursueDistance float64 `json:"pursueDistance"`
}

type CasterConfig struct {
	AttackRange      float64 `json:"attackRange"`
	AttackCooldown   float64 `json:"attackCooldown"`
	TeleportTrigger  float64 `json:"teleportTrigger"`
	TeleportRange    float64 `json:"teleportRange"`
	TeleportCooldown float64 `json:"teleportCooldown"`
	RetreatDistance  float64 `json:"retreatDistance"`
	ApproachMargin   float64 `json:"approachMargin"`
	JumpHeight       float64 `json:"jumpHeight"`
	JumpRange        float64 `json:"jumpRange"`
	JumpCooldown     float64 `json:"jumpCooldown"`
	HopSpeed         float64 `json:"hopSpeed"`
	HopLift          float64 `json:"hopLift"`
}

type BossConfig struct {
	FullDamage          int     `json:"fullDamage"`
	PursueDistance      float64 `json:"pursueDistance"`
	AirControl          float64 `json:"airControl"`
	ContactRange        float64 `json:"contactRange"`
	ContactCooldown     float64 `json:"contactCooldown"`
	RangedDistance      float64 `json:"rangedDistance"`
	RangedCooldown      float64 `json:"rangedCooldown"`
	SpecialThreshold    float64 `json:"specialThreshold"`
	SpecialCooldown     float64 `json:"specialCooldown"`
	SpecialRange        float64 `json:"specialRange"`
	SpecialDamage       int     `json:"specialDamage"`
	RageThreshold       float64 `json:"rageThreshold"`
	RageSpeedMultiplier float64 `json:"rageSpeedMultiplier"`
	BarrageDistance     float64 `json:"barrageDistance"`
	BarrageCount        int     `json:"barrageCount"`
	BarrageSpread       float64 `json:"barrageSpread"`
	BarrageCooldown     float64 `json:"barrageCooldown"`
	LaserRange          float64 `json:"laserRange"`
	LaserCharge         float64 `json:"laserCharge"`
	LaserCycle          float64 `json:"laserCycle"`
	JumpCooldown        float64 `json:"jumpCooldown"`
	PathJumpCooldown    float64 `json:"pathJumpCooldown"`
	HopJumpCooldown     float64 `json:"hopJumpCooldown"`
	PathSearchRange     float64 `json:"pathSearchRange"`
}

// ProjectileConfig tunes one projectile kind. Beam-only fields are ignored elsewhere.
type ProjectileConfig struct {
	Size     float64 `json:"size"`
	Speed    float64 `json:"speed"`
	Homing   float64 `json:"homing"`
	Lifetime float64 `json:"lifetime"`

	Width     float64 `json:"width,omitempty"`
	GrowSpeed float64 `json:"growSpeed,omitempty"`
	MaxLength float64 `json:"maxLength,omitempty"`
	Linger    float64 `json:"linger,omitempty"`
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig     `json:"hitstop"`
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type HitstopConfig struct {
	Enabled bool `json:"enabled"`
	Frames  int  `json:"frames"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}
