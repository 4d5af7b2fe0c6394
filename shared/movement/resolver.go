// Package movement corrects proposed hero moves against a walkability query.
// Resolution is a pure function of the mask, the previous position and the
// requested one, so one Resolver can serve any number of entities.
package movement

import (
	"math"

	"github.com/automoto/walkabout/shared/gamemath"
)

// Walkability answers whether a world point can be stood on.
// *walkmask.Mask satisfies it.
type Walkability interface {
	Walkable(p gamemath.Vec) bool
}

// Request is a single proposed move. Forced moves (spawn, teleport, restored
// saves) skip collision entirely.
type Request struct {
	Previous  gamemath.Vec
	Requested gamemath.Vec
	Forced    bool
}

// Result is the corrected position. WasBlocked is set whenever Position
// differs from the requested point.
type Result struct {
	Position   gamemath.Vec
	WasBlocked bool
}

// DefaultProbeAngles deflect a blocked move by +30° and then -30°.
var DefaultProbeAngles = []float64{math.Pi / 6, -math.Pi / 6}

// Resolver walks the straight path of a move and, when that path makes no
// progress, tries deflected paths in ProbeAngles order.
type Resolver struct {
	ProbeAngles []float64 // radians, relative to the requested direction
}

// NewResolver returns a resolver probing the given angles (radians).
// With no angles the direct path is the only one tried.
func NewResolver(angles ...float64) *Resolver {
	return &Resolver{ProbeAngles: append([]float64(nil), angles...)}
}

// DefaultResolver probes ±30°.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultProbeAngles...)
}

// NewResolverDegrees is NewResolver with angles given in degrees.
func NewResolverDegrees(degrees ...float64) *Resolver {
	angles := make([]float64, len(degrees))
	for i, d := range degrees {
		angles[i] = d * math.Pi / 180
	}
	return &Resolver{ProbeAngles: angles}
}

// Resolve returns where a move from req.Previous toward req.Requested ends.
func (r *Resolver) Resolve(mask Walkability, req Request) Result {
	if req.Forced {
		return Result{Position: req.Requested}
	}
	// A still hero on a wall falls through and reports blocked.
	if req.Previous == req.Requested && mask.Walkable(req.Previous) {
		return Result{Position: req.Previous}
	}

	if pos, ok := furthestWalkable(mask, req.Previous, req.Requested); ok {
		return Result{Position: pos, WasBlocked: pos != req.Requested}
	}

	d := req.Requested.Sub(req.Previous)
	theta, dist := d.Angle(), d.Len()
	for _, a := range r.ProbeAngles {
		target := req.Previous.Add(gamemath.FromPolar(dist, theta+a))
		if pos, ok := furthestWalkable(mask, req.Previous, target); ok {
			return Result{Position: pos, WasBlocked: true}
		}
	}
	return Result{Position: req.Previous, WasBlocked: true}
}

// furthestWalkable walks the traced path from start and returns the last
// walkable point before the first wall. ok is false when that point is start
// itself. A fully walkable path returns end unrounded so sub-pixel positions
// survive open ground.
func furthestWalkable(mask Walkability, start, end gamemath.Vec) (gamemath.Vec, bool) {
	var buf [32]gamemath.Vec
	path := gamemath.AppendTracePath(buf[:0], start, end)
	last := start
	for _, p := range path {
		if !mask.Walkable(p) {
			return last, last != start
		}
		last = p
	}
	if mask.Walkable(end) {
		last = end
	}
	return last, last != start
}
