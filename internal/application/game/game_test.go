package game

import (
	"sync"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/robobrawl/internal/application/scene"
)

type mockScene struct {
	name      string
	updates   int
	draws     int
	enters    int
	exits     int
	next      scene.Scene
	updateErr error
	lastDT    float64
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updates++
	m.lastDT = dt
	return m.next, m.updateErr
}

func (m *mockScene) Draw(*ebiten.Image) { m.draws++ }
func (m *mockScene) OnEnter()           { m.enters++ }
func (m *mockScene) OnExit()            { m.exits++ }

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 1024, 768)

	assert.Same(t, initial, g.Current())
	assert.Equal(t, 1, initial.enters, "initial scene is entered immediately")

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestGame_Delegates(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 1024, 768)

	for range 5 {
		require.NoError(t, g.Update())
	}
	g.Draw(nil)

	assert.Equal(t, 5, initial.updates)
	assert.Equal(t, 1, initial.draws)
	assert.Zero(t, initial.exits, "no transition when Update returns nil")
	assert.InDelta(t, 1.0/60.0, initial.lastDT, 1e-12)

	g.SetDT(1.0 / 30.0)
	require.NoError(t, g.Update())
	assert.InDelta(t, 1.0/30.0, initial.lastDT, 1e-12)
}

func TestGame_SceneTransition(t *testing.T) {
	second := &mockScene{name: "second"}
	first := &mockScene{name: "first", next: second}
	g := New(first, 1024, 768)

	require.NoError(t, g.Update())

	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 1, second.enters)
	assert.Same(t, second, g.Current())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestGame_UpdateError(t *testing.T) {
	g := New(&mockScene{updateErr: assert.AnError}, 1024, 768)

	assert.ErrorIs(t, g.Update(), assert.AnError)
}

func sceneBuilder(s scene.Scene, err error) Rebuild {
	return func(scene.Scene) (scene.Scene, error) { return s, err }
}

func TestGame_Replace(t *testing.T) {
	first := &mockScene{name: "first"}
	stale := &mockScene{name: "stale"}
	fresh := &mockScene{name: "fresh"}
	g := New(first, 1024, 768)

	g.Replace(sceneBuilder(stale, nil))
	g.Replace(sceneBuilder(fresh, nil))
	assert.Same(t, first, g.Current(), "applied on the next Update")

	require.NoError(t, g.Update())

	assert.Same(t, fresh, g.Current(), "latest request wins")
	assert.Equal(t, 1, first.exits)
	assert.Zero(t, stale.enters)
	assert.Equal(t, 1, fresh.enters)
	assert.Equal(t, 1, fresh.updates, "replacement runs in the same frame")
}

func TestGame_ReplaceSeesCurrent(t *testing.T) {
	first := &mockScene{name: "first"}
	g := New(first, 1024, 768)

	var seen scene.Scene
	g.Replace(func(current scene.Scene) (scene.Scene, error) {
		seen = current
		return nil, nil
	})
	require.NoError(t, g.Update())

	assert.Same(t, first, seen)
	assert.Same(t, first, g.Current(), "nil keeps the current scene")
	assert.Zero(t, first.exits)
}

func TestGame_ReplaceErrorKeepsScene(t *testing.T) {
	first := &mockScene{name: "first"}
	g := New(first, 1024, 768)

	g.Replace(sceneBuilder(&mockScene{}, assert.AnError))

	assert.NoError(t, g.Update(), "a failed rebuild does not stop the game")
	assert.Same(t, first, g.Current())
	assert.Equal(t, 1, first.updates)
}

func TestGame_ReplaceConcurrent(t *testing.T) {
	g := New(&mockScene{}, 1024, 768)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Replace(sceneBuilder(&mockScene{}, nil))
		}()
	}
	wg.Wait()

	require.NoError(t, g.Update())
	assert.Equal(t, 1, g.Current().(*mockScene).enters)
}
