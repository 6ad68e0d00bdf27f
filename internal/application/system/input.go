package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/robobrawl/internal/domain/entity"
)

// InputSystem turns the keyboard and mouse into a per-tick input snapshot
type InputSystem struct {
	keyPressed     func(ebiten.Key) bool
	keyJustPressed func(ebiten.Key) bool
	mousePressed   func(ebiten.MouseButton) bool
	cursor         func() (int, int)
}

// NewInputSystem creates an input system reading ebiten's input state
func NewInputSystem() *InputSystem {
	return &InputSystem{
		keyPressed:     ebiten.IsKeyPressed,
		keyJustPressed: inpututil.IsKeyJustPressed,
		mousePressed:   ebiten.IsMouseButtonPressed,
		cursor:         ebiten.CursorPosition,
	}
}

// GetInput reads the current input state.
// Held buttons map to levels; jump, counter and skill map to edges.
func (s *InputSystem) GetInput() entity.Input {
	mx, my := s.cursor()
	return entity.Input{
		Left:        s.anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:       s.anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Down:        s.anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		JumpPressed: s.keyJustPressed(ebiten.KeyW) || s.keyJustPressed(ebiten.KeyArrowUp),
		Defend:      s.keyPressed(ebiten.KeySpace),
		Crouch:      s.anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		AttackLeft:  s.mousePressed(ebiten.MouseButtonLeft),
		AttackRight: s.mousePressed(ebiten.MouseButtonRight),
		TargetX:     float64(mx),
		TargetY:     float64(my),
		Counter:     s.keyJustPressed(ebiten.KeyQ),
		Skill:       s.keyJustPressed(ebiten.KeyE),
	}
}

func (s *InputSystem) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.keyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed reports whether k went down this tick
func (s *InputSystem) JustPressed(k ebiten.Key) bool {
	return s.keyJustPressed(k)
}
