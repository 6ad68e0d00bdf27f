package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/domain/platform"
)

func TestCaster_FiresTrackingShot(t *testing.T) {
	e := createTestEnemy(entity.KindCaster, 500, nil)

	a := Decide(at(0), e, floorTarget(300))

	require.Len(t, a.Spawned, 1)
	shot := a.Spawned[0]
	assert.Equal(t, entity.ProjectileTracking, shot.Kind)
	assert.Equal(t, 520.0, shot.X)
	assert.Equal(t, 638.0, shot.Y)
	assert.Less(t, shot.VX, 0.0)
	assert.False(t, e.Caster.AttackCooldown.Ready(at(2000)))
	assert.True(t, e.Caster.AttackCooldown.Ready(at(2001)))
	assert.Equal(t, 500.0, e.X, "attacking replaces movement")
}

func TestCaster_KeepsDistance(t *testing.T) {
	tests := []struct {
		name    string
		targetX float64
		wantX   float64
	}{
		{"retreats from a close player", 400, 502.5},
		{"approaches at half speed", 0, 498.75},
		{"holds inside the band", 700, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEnemy(entity.KindCaster, 500, nil)
			e.Caster.AttackCooldown.Trigger(at(0), e.Params.Caster.AttackCooldown)

			a := Decide(at(10), e, floorTarget(tt.targetX))

			assert.Empty(t, a.Spawned)
			assert.Equal(t, tt.wantX, e.X)
		})
	}
}

func TestCaster_RetreatStopsAtWall(t *testing.T) {
	e := createTestEnemy(entity.KindCaster, 1, nil)
	e.Caster.AttackCooldown.Trigger(at(0), e.Params.Caster.AttackCooldown)

	Decide(at(10), e, floorTarget(100))

	assert.Equal(t, 1.0, e.X)
}

func TestCaster_Teleport(t *testing.T) {
	reg := platform.New(1024, 768,
		geom.NewRect(100, 400, 150, 20),
		geom.NewRect(750, 400, 150, 20),
		geom.NewRect(950, 300, 60, 20),
	)
	e := createTestEnemy(entity.KindCaster, 500, reg)

	a := Decide(at(0), e, floorTarget(450))

	require.True(t, a.HasCue(CueTeleport))
	assert.Equal(t, 805.0, e.X, "farthest platform from the player within range")
	assert.Equal(t, 340.0, e.Y)
	assert.True(t, e.Grounded)
	assert.Empty(t, a.Spawned, "teleport replaces the attack")
	assert.False(t, e.Caster.TeleportCooldown.Ready(at(5000)))
}

func TestCaster_TeleportWithoutCandidate(t *testing.T) {
	reg := platform.New(1024, 768, geom.NewRect(950, 300, 60, 20))
	e := createTestEnemy(entity.KindCaster, 500, reg)

	a := Decide(at(0), e, floorTarget(450))

	assert.False(t, a.HasCue(CueTeleport))
	assert.Equal(t, 500.0, e.X)
	assert.False(t, e.Caster.TeleportCooldown.Ready(at(5000)), "a failed search still cools down")
}

func TestCaster_NoPlatformsAttacksInstead(t *testing.T) {
	e := createTestEnemy(entity.KindCaster, 500, nil)

	a := Decide(at(0), e, floorTarget(450))

	assert.False(t, a.HasCue(CueTeleport))
	assert.Len(t, a.Spawned, 1)
}

func TestCaster_Jump(t *testing.T) {
	t.Run("hops down toward a lower player", func(t *testing.T) {
		e := createTestEnemy(entity.KindCaster, 500, nil)
		e.Y = 340

		a := Decide(at(0), e, floorTarget(400))

		assert.True(t, a.HasCue(CueJump))
		assert.Equal(t, -3.0, e.VX)
		assert.Equal(t, -8.0, e.VY)
		assert.False(t, e.Grounded)
		assert.False(t, e.Caster.JumpCooldown.Ready(at(2000)))
	})

	t.Run("climbs toward a higher player", func(t *testing.T) {
		e := createTestEnemy(entity.KindCaster, 500, nil)

		a := Decide(at(0), e, targetAt(450, 400))

		assert.True(t, a.HasCue(CueJump))
		assert.Equal(t, -13.0, e.VY)
		assert.Equal(t, -2.0, e.VX)
	})

	t.Run("stays put on level ground", func(t *testing.T) {
		e := createTestEnemy(entity.KindCaster, 500, nil)

		a := Decide(at(0), e, floorTarget(300))

		assert.False(t, a.HasCue(CueJump))
		assert.True(t, e.Grounded)
	})
}
