// Package platform stores the static platform layout of an arena and answers
// landing and support queries for moving bodies.
package platform

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/robobrawl/internal/domain/geom"
)

const (
	tagPlatform = "platform"
	tagProbe    = "probe"

	// CellSize is the broad-phase grid cell size in pixels
	CellSize = 32

	// DefaultLandingTolerance is how far (pixels) a body's previous bottom may sit
	// below a platform top and still count as landing on it.
	DefaultLandingTolerance = 5.0

	// DefaultSupportProbe is the height of the strip probed below a body
	// to decide whether it is still standing on a platform.
	DefaultSupportProbe = 5.0
)

// Registry holds immutable platform rectangles in insertion order.
// Queries use a resolv space as broad-phase and geom tests for the exact answer,
// so results are identical to a linear scan in registry order.
type Registry struct {
	platforms []geom.Rect
	space     *resolv.Space
	probe     *resolv.Object

	LandingTolerance float64
	SupportProbe     float64
}

// New creates a registry covering a width x height world with the given platforms.
// Platforms with no area are ignored.
func New(width, height float64, platforms ...geom.Rect) *Registry {
	for _, p := range platforms {
		width = math.Max(width, p.Right())
		height = math.Max(height, p.Bottom())
	}
	spaceW := int(math.Ceil(width/CellSize)) + 1
	spaceH := int(math.Ceil(height/CellSize)) + 1
	if spaceW < 1 {
		spaceW = 1
	}
	if spaceH < 1 {
		spaceH = 1
	}

	r := &Registry{
		platforms:        make([]geom.Rect, 0, len(platforms)),
		space:            resolv.NewSpace(spaceW*CellSize, spaceH*CellSize, CellSize, CellSize),
		LandingTolerance: DefaultLandingTolerance,
		SupportProbe:     DefaultSupportProbe,
	}

	for _, p := range platforms {
		if p.Empty() {
			continue
		}
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tagPlatform)
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		obj.Data = len(r.platforms)
		r.platforms = append(r.platforms, p)
		r.space.Add(obj)
	}

	r.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	r.space.Add(r.probe)

	return r
}

// Len returns the number of platforms
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.platforms)
}

// Platforms returns a copy of the platform rectangles in registry order
func (r *Registry) Platforms() []geom.Rect {
	if r == nil {
		return nil
	}
	out := make([]geom.Rect, len(r.platforms))
	copy(out, r.platforms)
	return out
}

// candidates returns indices of platforms near area, sorted in registry order
func (r *Registry) candidates(area geom.Rect) []int {
	if r == nil || len(r.platforms) == 0 {
		return nil
	}

	// Pad by one pixel so edge-touching neighbours share a cell with the probe.
	padded := area.Inset(1)
	r.probe.X = padded.X
	r.probe.Y = padded.Y
	r.probe.W = math.Max(padded.W, 1)
	r.probe.H = math.Max(padded.H, 1)
	r.probe.Update()

	check := r.probe.Check(0, 0, tagPlatform)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool, len(check.Objects))
	indices := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// CheckCollision finds the first platform (in registry order) the body is landing on
// and returns the y coordinate that places the body exactly on top of it.
func (r *Registry) CheckCollision(body geom.Rect, vy float64) (index int, newY float64, ok bool) {
	if vy < 0 {
		return -1, 0, false
	}
	for _, i := range r.candidates(body) {
		p := r.platforms[i]
		if geom.Landing(body, vy, p, r.LandingTolerance) {
			return i, p.Top() - body.H, true
		}
	}
	return -1, 0, false
}

// IsOnPlatform reports whether a thin strip just below the body touches any platform
func (r *Registry) IsOnPlatform(body geom.Rect) bool {
	strip := geom.NewRect(body.X, body.Bottom(), body.W, r.supportProbe())
	for _, i := range r.candidates(strip) {
		if strip.Intersects(r.platforms[i]) {
			return true
		}
	}
	return false
}

func (r *Registry) supportProbe() float64 {
	if r == nil || r.SupportProbe <= 0 {
		return DefaultSupportProbe
	}
	return r.SupportProbe
}

// NearestAbove returns the platform closest to (x, y) whose bottom lies above y and whose
// center is within maxDist horizontally and vertically.
func (r *Registry) NearestAbove(x, y, maxDist float64) (geom.Rect, bool) {
	if r == nil {
		return geom.Rect{}, false
	}

	best := -1
	bestDist := math.Inf(1)
	for i, p := range r.platforms {
		if p.Bottom() >= y {
			continue
		}
		if math.Abs(p.CenterX()-x) >= maxDist || y-p.Bottom() >= maxDist {
			continue
		}
		d := geom.Distance(x, y, p.CenterX(), p.CenterY())
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return geom.Rect{}, false
	}
	return r.platforms[best], true
}
