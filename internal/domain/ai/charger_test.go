package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/robobrawl/internal/domain/entity"
)

func TestCharger_StartsDash(t *testing.T) {
	e := createTestEnemy(entity.KindCharger, 500, nil)

	a := Decide(at(0), e, floorTarget(350))

	assert.True(t, a.HasCue(CueDash))
	assert.True(t, e.Charger.Dashing)
	assert.Equal(t, -1.0, e.Dir)
	assert.Equal(t, 492.0, e.X)
	assert.Empty(t, a.Strikes)
}

func TestCharger_DashHitsPlayer(t *testing.T) {
	e := createTestEnemy(entity.KindCharger, 420, nil)

	a := Decide(at(0), e, floorTarget(380))

	require.Len(t, a.Strikes, 1)
	assert.Equal(t, Strike{Cause: CauseContact, Damage: 1, SourceX: 434.5}, a.Strikes[0])
	assert.False(t, e.Charger.Dashing)
	assert.False(t, e.Charger.DashCooldown.Ready(at(2000)))
	assert.True(t, e.Charger.DashCooldown.Ready(at(2001)))
}

func TestCharger_DashStopsAtWall(t *testing.T) {
	e := createTestEnemy(entity.KindCharger, 5, nil)

	Decide(at(0), e, floorTarget(0))

	assert.False(t, e.Charger.Dashing)
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, 1.0, e.Dir, "facing reverses")
	assert.False(t, e.Charger.DashCooldown.Ready(at(1000)))
}

func TestCharger_Patrol(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		dir     float64
		targetX float64
		wantX   float64
		wantDir float64
	}{
		{"walks forward", 300, 1, 900, 303, 1},
		{"walks left", 300, -1, 900, 297, -1},
		{"turns at the right edge", 978, 1, 0, 979, -1},
		{"turns at the left edge", 2, -1, 900, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEnemy(entity.KindCharger, tt.x, nil)
			e.Dir = tt.dir

			Decide(at(0), e, floorTarget(tt.targetX))

			assert.False(t, e.Charger.Dashing)
			assert.Equal(t, tt.wantX, e.X)
			assert.Equal(t, tt.wantDir, e.Dir)
		})
	}
}

func TestCharger_JumpsAtHigherPlayer(t *testing.T) {
	e := createTestEnemy(entity.KindCharger, 500, nil)

	a := Decide(at(0), e, targetAt(520, 500))

	assert.True(t, a.HasCue(CueJump))
	assert.False(t, e.Grounded)
	assert.Equal(t, -14.0, e.VY)
	assert.Equal(t, 2.0, e.VX)
	assert.False(t, e.Charger.Dashing, "jumping takes priority over the dash")
	assert.False(t, e.Charger.JumpCooldown.Ready(at(3000)))
}

func TestCharger_JumpOnCooldownDashes(t *testing.T) {
	e := createTestEnemy(entity.KindCharger, 500, nil)
	e.Charger.JumpCooldown.Trigger(at(0), e.Params.Charger.JumpCooldown)

	a := Decide(at(10), e, targetAt(520, 500))

	assert.False(t, a.HasCue(CueJump))
	assert.True(t, a.HasCue(CueDash))
	assert.True(t, e.Grounded)
}
