package entity

// Input is the per-tick control snapshot fed to the player.
// Held buttons are levels; JumpPressed, Counter and Skill are edges.
type Input struct {
	Left, Right bool
	Down        bool // drop through the current platform
	JumpPressed bool
	Defend      bool
	Crouch      bool // crouch when standing, slide when moving

	AttackLeft  bool
	AttackRight bool

	// TargetX, TargetY is the pointer in world coordinates
	TargetX, TargetY float64

	Counter bool
	Skill   bool
}

// Moving reports whether a horizontal direction is held
func (in Input) Moving() bool {
	return in.Left || in.Right
}

// Direction returns -1, 0 or 1. Left wins when both are held.
func (in Input) Direction() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	default:
		return 0
	}
}
