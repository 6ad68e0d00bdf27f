package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/domain/platform"
)

// createTestPlayer returns a player standing on the floor at x = 100
func createTestPlayer() *Player {
	p := NewPlayer(100, 608, DefaultPlayerParams(), DefaultWorld(), nil)
	p.Grounded = true
	return p
}

func TestNewPlayer(t *testing.T) {
	p := createTestPlayer()

	assert.Equal(t, 3, p.Health)
	assert.True(t, p.FacingRight)
	assert.Equal(t, SideLeft, p.LeftFist.Side)
	assert.Equal(t, SideRight, p.RightFist.Side)
	assert.Equal(t, [2]*Fist{p.LeftFist, p.RightFist}, p.Fists())
	assert.False(t, p.IsDefending())
	assert.Equal(t, 1.0, p.ComboMultiplier())
}

func TestPlayer_Move(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{Right: true})
	assert.Equal(t, 105.0, p.X)
	assert.True(t, p.FacingRight)

	p.Update(at(16), Input{Left: true})
	assert.Equal(t, 100.0, p.X)
	assert.False(t, p.FacingRight)

	p.Update(at(32), Input{})
	assert.Equal(t, 100.0, p.X)
	assert.True(t, p.Grounded)
}

func TestPlayer_Jump(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{JumpPressed: true})
	assert.InDelta(t, -14.2, p.VY, 1e-9)
	assert.False(t, p.Grounded)

	p.Update(at(16), Input{JumpPressed: true})
	assert.InDelta(t, -11.2, p.VY, 1e-9)
	assert.False(t, p.DoubleJumpAvailable)

	p.Update(at(32), Input{JumpPressed: true})
	assert.InDelta(t, -10.4, p.VY, 1e-9, "third jump is ignored")
}

func TestPlayer_Defense(t *testing.T) {
	t.Run("perfect defense opens the counter", func(t *testing.T) {
		p := createTestPlayer()
		p.Update(at(0), Input{Defend: true})
		require.True(t, p.IsDefending())

		damaged := p.TakeDamage(at(50), Hit{Amount: 1})

		assert.False(t, damaged)
		assert.Equal(t, 3, p.Health)
		assert.True(t, p.CounterReady(at(50)))
		assert.True(t, p.PerfectBonus)
	})

	t.Run("late defense blocks without a counter", func(t *testing.T) {
		p := createTestPlayer()
		p.Update(at(0), Input{Defend: true})

		damaged := p.TakeDamage(at(150), Hit{Amount: 1})

		assert.False(t, damaged)
		assert.Equal(t, 3, p.Health)
		assert.False(t, p.CounterReady(at(150)))
	})

	t.Run("defense ends and cools down", func(t *testing.T) {
		p := createTestPlayer()
		p.Update(at(0), Input{Defend: true})

		p.Update(at(1001), Input{})
		assert.False(t, p.IsDefending())

		p.Update(at(2000), Input{Defend: true})
		assert.False(t, p.IsDefending(), "still cooling down")

		p.Update(at(4002), Input{Defend: true})
		assert.True(t, p.IsDefending())
	})

	t.Run("counter window closes", func(t *testing.T) {
		p := createTestPlayer()
		p.Update(at(0), Input{Defend: true})
		p.TakeDamage(at(10), Hit{Amount: 1})

		p.Update(at(311), Input{})

		assert.False(t, p.CounterReady(at(311)))
	})
}

func TestPlayer_TakeDamage_ResetsCombo(t *testing.T) {
	p := createTestPlayer()
	p.RegisterHit(at(0))
	p.RegisterHit(at(10))
	p.RegisterHit(at(20))
	require.Equal(t, 1.25, p.ComboMultiplier())

	assert.True(t, p.TakeDamage(at(30), Hit{Amount: 1}))

	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 0, p.Combo)
}

func TestPlayer_Combo(t *testing.T) {
	p := createTestPlayer()

	for i := 0; i < 5; i++ {
		p.RegisterHit(at(i * 100))
	}
	assert.Equal(t, 5, p.Combo)
	assert.Equal(t, 1.5, p.ComboMultiplier())

	p.UpdateCombo(at(2400))
	assert.Equal(t, 5, p.Combo, "inside the window")

	p.UpdateCombo(at(2401))
	assert.Equal(t, 0, p.Combo)

	for i := 0; i < 12; i++ {
		p.RegisterHit(at(3000))
	}
	assert.Equal(t, 10, p.Combo, "capped")
}

func TestPlayer_FistDamage(t *testing.T) {
	tests := []struct {
		name    string
		combo   int
		charged bool
		air     bool
		want    int
	}{
		{"light", 0, false, false, 1},
		{"heavy", 0, true, false, 2},
		{"light at combo 5", 5, false, false, 1},
		{"heavy at combo 3", 3, true, false, 2},
		{"heavy at combo 5", 5, true, false, 3},
		{"heavy in the air", 0, true, true, 3},
		{"heavy in the air at combo 5", 5, true, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer()
			p.Combo = tt.combo
			f := p.RightFist
			f.Charged = tt.charged
			f.AirAttack = tt.air

			assert.Equal(t, tt.want, p.FistDamage(f))
		})
	}
}

func TestPlayer_Slide(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{Right: true, Crouch: true})
	require.True(t, p.IsSliding())
	assert.Equal(t, 108.0, p.X)
	assert.Equal(t, geom.NewRect(108, 638, 50, 30), p.Hurtbox())

	p.Update(at(100), Input{Right: true})
	assert.True(t, p.IsSliding(), "slide runs its course without the modifier")
	assert.Equal(t, 116.0, p.X)

	p.Update(at(301), Input{Right: true})
	assert.False(t, p.IsSliding())
	assert.Equal(t, 121.0, p.X)
	assert.Equal(t, p.Rect(), p.Hurtbox())
}

func TestPlayer_Crouch(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{Crouch: true})

	assert.True(t, p.Crouching)
	assert.False(t, p.IsSliding())
	assert.Equal(t, geom.NewRect(100, 638, 50, 30), p.Hurtbox())
}

func TestPlayer_HeavyReleaseDashes(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{AttackRight: true, TargetX: 400, TargetY: 638})
	require.Equal(t, FistCharging, p.RightFist.State)

	p.Update(at(1000), Input{TargetX: 400, TargetY: 638})

	assert.Equal(t, FistOutbound, p.RightFist.State)
	assert.True(t, p.RightFist.Charged)
	assert.True(t, p.Dash.Active)
	assert.Equal(t, 1.0, p.DashDir)
	assert.Equal(t, 108.0, p.X)

	p.Update(at(1301), Input{})
	assert.False(t, p.Dash.Active)
}

func TestPlayer_LightReleaseDoesNotDash(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{AttackLeft: true})
	p.Update(at(200), Input{TargetX: 0, TargetY: 638})

	assert.Equal(t, FistOutbound, p.LeftFist.State)
	assert.False(t, p.LeftFist.Charged)
	assert.False(t, p.Dash.Active)
}

func TestPlayer_AirAttackIsRecorded(t *testing.T) {
	p := createTestPlayer()
	p.Update(at(0), Input{JumpPressed: true, AttackLeft: true})

	p.Update(at(100), Input{TargetX: 400, TargetY: 400})

	assert.True(t, p.LeftFist.AirAttack)
}

func TestPlayer_DropThrough(t *testing.T) {
	reg := platform.New(1024, 768, geom.NewRect(300, 548, 150, 20))
	p := NewPlayer(320, 488, DefaultPlayerParams(), DefaultWorld(), reg)
	p.Grounded = true

	p.Update(at(0), Input{})
	require.True(t, p.Grounded)
	require.Equal(t, 488.0, p.Y)

	p.Update(at(16), Input{Down: true})

	assert.False(t, p.Grounded)
	assert.Greater(t, p.Y, 488.0)
	assert.Equal(t, at(216), p.SkipPlatformsUntil)
}

func TestPlayer_DropThroughIgnoredOnFloor(t *testing.T) {
	p := createTestPlayer()

	p.Update(at(0), Input{Down: true})

	assert.True(t, p.Grounded)
	assert.True(t, p.SkipPlatformsUntil.IsZero())
}

func TestPlayer_TryCounter(t *testing.T) {
	world := DefaultWorld()
	near := NewEnemy(1, KindDummy, 200, 598, DefaultEnemyParams(KindDummy), world, nil)
	far := NewEnemy(2, KindDummy, 300, 598, DefaultEnemyParams(KindDummy), world, nil)
	enemies := []*Enemy{near, far}

	t.Run("closed window does nothing", func(t *testing.T) {
		p := createTestPlayer()

		_, ok := p.TryCounter(at(0), enemies)

		assert.False(t, ok)
		assert.Equal(t, 5, near.Health)
	})

	t.Run("perfect counter hits enemies in range", func(t *testing.T) {
		p := createTestPlayer()
		p.Update(at(0), Input{Defend: true})
		p.TakeDamage(at(20), Hit{Amount: 1})

		hits, ok := p.TryCounter(at(100), enemies)

		require.True(t, ok)
		assert.Equal(t, 1, hits)
		assert.Equal(t, 2, near.Health)
		assert.True(t, near.IsStunned())
		assert.True(t, near.IsKnockedBack())
		assert.Equal(t, 5, far.Health)

		_, ok = p.TryCounter(at(110), enemies)
		assert.False(t, ok, "counter consumes the window")
	})
}

func TestPlayer_ActivateSkill(t *testing.T) {
	p := createTestPlayer()

	assert.True(t, p.ActivateSkill(at(0)))
	assert.False(t, p.ActivateSkill(at(5000)))
	assert.False(t, p.ActivateSkill(at(10000)))
	assert.True(t, p.ActivateSkill(at(10001)))
}
