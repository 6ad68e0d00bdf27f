// Package geom provides axis-aligned rectangle math shared by physics and combat.
package geom

import "math"

// Rect is an axis-aligned rectangle in pixel coordinates (top-left origin, y grows down).
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect creates a square rect of the given size centered on (cx, cy)
func CenteredRect(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rects overlap with positive area.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Inset returns the rect grown (positive d) or shrunk (negative d) on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// SegmentBounds returns the bounding box of the segment (x0,y0)-(x1,y1)
// padded by half the given thickness on every side.
func SegmentBounds(x0, y0, x1, y1, thickness float64) Rect {
	half := thickness / 2
	minX := math.Min(x0, x1) - half
	maxX := math.Max(x0, x1) + half
	minY := math.Min(y0, y1) - half
	maxY := math.Max(y0, y1) + half
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Landing reports whether a body moving with vertical velocity vy lands on top of platform.
//
// The body must be falling or resting (vy >= 0), overlap the platform, and its bottom edge
// before this step's movement must have been at or above the platform top within tolerance.
// The last condition rejects side and underside contacts.
func Landing(body Rect, vy float64, platform Rect, tolerance float64) bool {
	if vy < 0 {
		return false
	}
	if !body.Intersects(platform) {
		return false
	}
	return body.Bottom()-vy <= platform.Top()+tolerance
}

// Distance returns the euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction returns the unit vector from (ax, ay) toward (bx, by) and the distance.
// ok is false when both points coincide.
func Direction(ax, ay, bx, by float64) (dx, dy, dist float64, ok bool) {
	dx = bx - ax
	dy = by - ay
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0, false
	}
	return dx / dist, dy / dist, dist, true
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
