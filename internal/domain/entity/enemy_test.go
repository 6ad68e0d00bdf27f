package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnemy(kind Kind, x float64) *Enemy {
	p := DefaultEnemyParams(kind)
	e := NewEnemy(1, kind, x, 668-p.Body.Height, p, DefaultWorld(), nil)
	e.Grounded = true
	return e
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{KindDummy, "dummy"},
		{KindCharger, "charger"},
		{KindElite, "elite"},
		{KindCaster, "caster"},
		{KindBoss, "boss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())

			k, ok := ParseKind(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, k)
		})
	}

	_, ok := ParseKind("dragon")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestDefaultEnemyParams(t *testing.T) {
	tests := []struct {
		kind   Kind
		w, h   float64
		health int
	}{
		{KindDummy, 40, 70, 5},
		{KindCharger, 45, 50, 3},
		{KindElite, 50, 70, 6},
		{KindCaster, 40, 60, 4},
		{KindBoss, 80, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := createTestEnemy(tt.kind, 500)

			assert.Equal(t, tt.w, e.Width)
			assert.Equal(t, tt.h, e.Height)
			assert.Equal(t, tt.health, e.Health)
			assert.Equal(t, tt.health, e.MaxHealth)
			assert.True(t, e.Alive)
		})
	}
}

func TestEnemy_Update_Drag(t *testing.T) {
	t.Run("airborne velocity decays", func(t *testing.T) {
		e := createTestEnemy(KindCharger, 500)
		e.Grounded = false
		e.Y = 300
		e.VX = 10

		e.Update(at(0))

		assert.Equal(t, 510.0, e.X)
		assert.InDelta(t, 9.5, e.VX, 1e-9)
	})

	t.Run("boss drifts with more drag", func(t *testing.T) {
		e := createTestEnemy(KindBoss, 500)
		e.Grounded = false
		e.Y = 300
		e.VX = 10

		e.Update(at(0))

		assert.InDelta(t, 9.0, e.VX, 1e-9)
	})

	t.Run("grounded velocity stops", func(t *testing.T) {
		e := createTestEnemy(KindElite, 500)
		e.VX = 4

		e.Update(at(0))

		assert.Equal(t, 0.0, e.VX)
	})
}

func TestEnemy_TakeDamage_Modifiers(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		shielded bool
		amount   int
		want     int
	}{
		{"dummy takes full damage", KindDummy, false, 3, 2},
		{"elite without shield", KindElite, false, 3, 3},
		{"elite shield halves", KindElite, true, 3, 5},
		{"elite shield keeps at least 1", KindElite, true, 1, 5},
		{"boss halves light hits", KindBoss, false, 1, 9},
		{"boss takes heavy hits in full", KindBoss, false, 2, 8},
		{"boss takes bigger hits in full", KindBoss, false, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEnemy(tt.kind, 500)
			if tt.shielded {
				e.Elite.Shield.Start(at(0))
			}

			require.True(t, e.TakeDamage(at(0), Hit{Amount: tt.amount}))

			assert.Equal(t, tt.want, e.Health)
		})
	}
}

func TestEnemy_ShieldExpires(t *testing.T) {
	e := createTestEnemy(KindElite, 500)
	e.Elite.Shield.Start(at(0))
	require.True(t, e.Shielded())

	e.Update(at(2001))

	assert.False(t, e.Shielded())
}

func TestEnemy_BossKnockbackIsHalved(t *testing.T) {
	e := createTestEnemy(KindBoss, 500)

	e.TakeDamage(at(0), HitFrom(2, 400, true, true))

	assert.Equal(t, 15.0, e.KnockbackVX)
}

func TestEnemy_KnockbackCancelsChargerDash(t *testing.T) {
	t.Run("knockback hit", func(t *testing.T) {
		e := createTestEnemy(KindCharger, 500)
		e.Charger.Dashing = true

		e.TakeDamage(at(0), HitFrom(2, 400, true, true))

		assert.False(t, e.Charger.Dashing)
		assert.False(t, e.Charger.DashCooldown.Ready(at(1500)))
		assert.True(t, e.Charger.DashCooldown.Ready(at(1501)))
	})

	t.Run("light hit keeps dashing", func(t *testing.T) {
		e := createTestEnemy(KindCharger, 500)
		e.Charger.Dashing = true

		e.TakeDamage(at(0), HitFrom(1, 400, false, false))

		assert.True(t, e.Charger.Dashing)
	})

	t.Run("launch", func(t *testing.T) {
		e := createTestEnemy(KindCharger, 500)
		e.Charger.Dashing = true
		e.TakeDamage(at(0), Hit{Amount: 1})

		e.Launch(at(10), 15, -8)

		assert.False(t, e.Charger.Dashing)
		assert.True(t, e.IsKnockedBack())
		assert.Equal(t, 2, e.Health)
	})
}

func TestEnemy_MoveSpeed(t *testing.T) {
	e := createTestEnemy(KindBoss, 500)
	assert.Equal(t, 2.0, e.MoveSpeed())

	e.Boss.Raging = true
	assert.Equal(t, 3.0, e.MoveSpeed())

	c := createTestEnemy(KindCharger, 500)
	assert.Equal(t, 3.0, c.MoveSpeed())
}

func TestEnemy_Projectiles(t *testing.T) {
	e := createTestEnemy(KindBoss, 500)
	w := DefaultWorld()
	a := NewBullet(at(0), 100, 100, 200, 100, DefaultBulletParams(), w)
	b := NewBullet(at(0), 100, 100, 200, 100, DefaultBulletParams(), w)
	c := NewBullet(at(0), 100, 100, 200, 100, DefaultBulletParams(), w)
	e.Projectiles = append(e.Projectiles, a, b, c)

	b.Kill()
	assert.Equal(t, 2, e.LiveProjectiles())

	e.CompactProjectiles()
	assert.Equal(t, []*Projectile{a, c}, e.Projectiles)

	e.ClearProjectiles()
	assert.Empty(t, e.Projectiles)
	assert.False(t, a.Alive)
	assert.False(t, c.Alive)
}
